package approx

import (
	"math"

	"github.com/cwbudde/algo-analog/dsp/filter/prototype"
	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
)

// DelaySpec is a group-delay template.
type DelaySpec struct {
	GainDB float64 `yaml:"gain"`

	// Ft is the frequency in Hz up to which the group delay must hold.
	Ft float64 `yaml:"ft"`

	// GroupDelayMs is the DC group delay in milliseconds.
	GroupDelayMs float64 `yaml:"group_delay"`

	// TolerancePercent is the allowed group-delay drop at Ft.
	TolerancePercent float64 `yaml:"tolerance"`

	// Fa and Aa optionally add a minimum attenuation Aa (dB) at Fa (Hz).
	Fa float64 `yaml:"fa"`
	Aa float64 `yaml:"aa"`

	Order          int     `yaml:"order"`
	MaxSelectivity float64 `yaml:"q"`
}

// Mode returns the design mode, with the same precedence as FilterSpec.
func (s DelaySpec) Mode() Mode {
	return FilterSpec{Order: s.Order, MaxSelectivity: s.MaxSelectivity}.Mode()
}

// DelayTemplate is a group-delay template normalized to a one-second delay.
type DelayTemplate struct {
	Wt               float64
	Wa               float64
	Aa               float64
	TolerancePercent float64
}

// ValidateDelay checks spec and returns the first violated rule, or OK.
func ValidateDelay(spec DelaySpec) ErrorKind {
	switch {
	case !nonNegative(spec.GainDB):
		return InvalidGain
	case spec.Order < 0 || spec.Order > MaximumOrder:
		return InvalidOrder
	case !nonNegative(spec.MaxSelectivity):
		return InvalidQ
	case !(positive(spec.GroupDelayMs) && finite(spec.GroupDelayMs)):
		return InvalidGroupDelay
	}

	if spec.Mode() != ModeTemplate {
		return OK
	}

	switch {
	case !(spec.TolerancePercent > 0 && spec.TolerancePercent < 100):
		return InvalidTolerance
	case !(positive(spec.Ft) && finite(spec.Ft)):
		return InvalidFrequency
	case !nonNegative(spec.Aa):
		return InvalidAttenuation
	case spec.Aa > 0 && !(spec.Fa > spec.Ft && finite(spec.Fa)):
		return InvalidFrequency
	}

	return OK
}

// NormalizeDelay scales the template frequencies by the target delay.
func NormalizeDelay(spec DelaySpec) DelayTemplate {
	tau := spec.GroupDelayMs * 1e-3
	t := DelayTemplate{TolerancePercent: spec.TolerancePercent}
	if spec.Mode() != ModeTemplate {
		return t
	}

	t.Wt = 2 * math.Pi * spec.Ft * tau
	if spec.Aa > 0 {
		t.Wa = 2 * math.Pi * spec.Fa * tau
		t.Aa = spec.Aa + spec.GainDB
	}
	return t
}

// DelayResult is the outcome of one group-delay computation.
type DelayResult struct {
	Err      ErrorKind
	Order    int
	Mode     Mode
	Template DelayTemplate

	// Normalized has unity DC group delay and the requested gain.
	Normalized zpk.ZPK

	// Final has the requested DC group delay.
	Final zpk.ZPK
}

// DelayEngine computes group-delay approximations. Only families that
// implement prototype.DelayGenerator produce results; others report
// UndefinedApproximation. A DelayEngine is not safe for concurrent use.
type DelayEngine struct {
	family prototype.Family
	gen    prototype.DelayGenerator
	cfg    config

	spec DelaySpec

	last    DelayResult
	hasLast bool
}

// NewDelayEngine returns a group-delay engine for family.
func NewDelayEngine(family prototype.Family, opts ...Option) (*DelayEngine, error) {
	g, err := prototype.New(family)
	if err != nil {
		return nil, err
	}

	dg, _ := g.(prototype.DelayGenerator)
	return &DelayEngine{family: family, gen: dg, cfg: applyOptions(opts)}, nil
}

// Spec returns the current filter spec.
func (e *DelayEngine) Spec() DelaySpec { return e.spec }

// SetSpec replaces the filter spec.
func (e *DelayEngine) SetSpec(spec DelaySpec) { e.spec = spec }

// Reset restores the zero spec and forgets the last result.
func (e *DelayEngine) Reset() {
	e.spec = DelaySpec{}
	e.last = DelayResult{}
	e.hasLast = false
}

// Compute runs the approximation and returns its outcome.
func (e *DelayEngine) Compute() ErrorKind {
	return e.Run().Err
}

// Run runs the approximation and memoizes the result.
func (e *DelayEngine) Run() DelayResult {
	res := e.run(e.spec)
	e.last = res
	e.hasLast = true

	res.Normalized = res.Normalized.Clone()
	res.Final = res.Final.Clone()
	return res
}

//nolint:cyclop
func (e *DelayEngine) run(spec DelaySpec) DelayResult {
	log := e.cfg.logger
	res := DelayResult{Mode: spec.Mode()}

	if res.Err = ValidateDelay(spec); res.Err != OK {
		return res
	}
	res.Template = NormalizeDelay(spec)

	if e.gen == nil {
		log.Warn("family has no group-delay prototype", "family", e.family.String())
		res.Err = UndefinedApproximation
		return res
	}

	lo, hi := 1, MaximumOrder
	if res.Mode == ModeFixedOrder {
		lo, hi = spec.Order, spec.Order
	}

	found := false
	for n := lo; n <= hi && !found; n++ {
		proto, err := e.gen.DelayPrototype(n)
		if err != nil {
			log.Warn("prototype generation failed", "family", e.family.String(), "order", n, "err", err)
			res.Err = UndefinedApproximation
			return res
		}

		normalized, final, err := e.denormalize(proto, spec)
		if err != nil {
			log.Error("denormalization failed", "family", e.family.String(), "order", n, "err", err)
			res.Err = UndefinedApproximation
			return res
		}

		switch res.Mode {
		case ModeFixedOrder:
			found = true
		case ModeTemplate:
			found = DelayTemplateOK(proto, res.Template, e.cfg.matchTol)
		case ModeMaxSelectivity:
			found = SelectivityOK(final, spec.MaxSelectivity)
		}

		log.Debug("order candidate", "family", e.family.String(), "order", n,
			"mode", res.Mode.String(), "match", found)

		if found {
			res.Order, res.Normalized, res.Final = n, normalized, final
		}
	}

	if !found {
		res.Err = MaximumOrderReached
		return res
	}

	log.Info("approximation found", "family", e.family.String(), "order", res.Order,
		"group_delay_ms", spec.GroupDelayMs)
	return res
}

// denormalize applies the gain and moves the unity-delay prototype to the
// requested delay by dividing every pole by tau.
func (e *DelayEngine) denormalize(proto zpk.ZPK, spec DelaySpec) (zpk.ZPK, zpk.ZPK, error) {
	gain := zpk.DBToLinear(spec.GainDB)

	normalized := proto.Clone()
	if err := normalized.SetDCGain(gain); err != nil {
		return zpk.ZPK{}, zpk.ZPK{}, err
	}

	final := proto.Clone()
	final.ScaleFrequency(1 / (spec.GroupDelayMs * 1e-3))
	if err := final.SetDCGain(gain); err != nil {
		return zpk.ZPK{}, zpk.ZPK{}, err
	}

	return normalized, final, nil
}

// NormTemplate returns the normalized template (wt, wa, Aa, tolerance) of
// the last computation.
func (e *DelayEngine) NormTemplate() (wt, wa, aa, tol float64) {
	t := e.last.Template
	return t.Wt, t.Wa, t.Aa, t.TolerancePercent
}

// NormalizedZPK returns the unity-delay transfer function of the last
// successful computation.
func (e *DelayEngine) NormalizedZPK() (zpk.ZPK, bool) {
	if !e.hasLast || e.last.Err != OK {
		return zpk.ZPK{}, false
	}
	return e.last.Normalized.Clone(), true
}

// ZPK returns the final transfer function of the last successful
// computation.
func (e *DelayEngine) ZPK() (zpk.ZPK, bool) {
	if !e.hasLast || e.last.Err != OK {
		return zpk.ZPK{}, false
	}
	return e.last.Final.Clone(), true
}

// Order returns the order accepted by the last successful computation, or 0.
func (e *DelayEngine) Order() int {
	if e.last.Err != OK {
		return 0
	}
	return e.last.Order
}
