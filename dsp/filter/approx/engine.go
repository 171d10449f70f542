package approx

import (
	"github.com/cwbudde/algo-analog/dsp/filter/prototype"
	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
)

// Result is the outcome of one computation.
type Result struct {
	Err ErrorKind

	// Order is the accepted filter order of the prototype; band kinds double
	// it in Final.
	Order int

	// EstimatedOrder is the closed-form order estimate of the family, or 0
	// when the family has none or the spec is not in template mode.
	EstimatedOrder int

	Mode     Mode
	Template NormalizedTemplate

	// Spec is the input after the band symmetry adjustment.
	Spec FilterSpec

	// Normalized is the prototype after DC normalization, transition-band
	// adjustment and gain scaling.
	Normalized zpk.ZPK

	// Final is Normalized moved to the requested band edges (rad/s).
	Final zpk.ZPK
}

// Engine computes attenuation-template approximations for one family. An
// Engine is not safe for concurrent use.
type Engine struct {
	family prototype.Family
	gen    prototype.Generator
	cfg    config

	spec FilterSpec

	last    Result
	hasLast bool
}

// NewEngine returns an engine for family.
func NewEngine(family prototype.Family, opts ...Option) (*Engine, error) {
	gen, err := prototype.New(family)
	if err != nil {
		return nil, err
	}

	return &Engine{family: family, gen: gen, cfg: applyOptions(opts)}, nil
}

// Design is a one-shot helper that runs a new engine on spec.
func Design(family prototype.Family, spec FilterSpec, opts ...Option) (Result, error) {
	e, err := NewEngine(family, opts...)
	if err != nil {
		return Result{}, err
	}
	e.SetSpec(spec)

	res := e.Run()
	return res, res.Err.Err()
}

// Family returns the engine's approximation family.
func (e *Engine) Family() prototype.Family { return e.family }

// Spec returns the current filter spec.
func (e *Engine) Spec() FilterSpec { return e.spec }

// SetSpec replaces the filter spec. Results of the previous computation
// stay available until the next Compute, Run or Reset.
func (e *Engine) SetSpec(spec FilterSpec) { e.spec = spec }

// Reset restores the zero spec and forgets the last result.
func (e *Engine) Reset() {
	e.spec = FilterSpec{}
	e.last = Result{}
	e.hasLast = false
}

// Compute runs the approximation and returns its outcome.
func (e *Engine) Compute() ErrorKind {
	return e.Run().Err
}

// Run runs the approximation on the current filter spec and memoizes the
// result for the accessors.
func (e *Engine) Run() Result {
	res := e.run(e.spec)
	e.last = res
	e.hasLast = true

	return cloneResult(res)
}

func (e *Engine) run(spec FilterSpec) Result {
	log := e.cfg.logger
	res := Result{Mode: spec.Mode(), Spec: spec}

	if res.Err = Validate(spec); res.Err != OK {
		log.Debug("invalid filter spec", "family", e.family.String(), "err", res.Err.String())
		return res
	}
	if res.Err = validateFamily(spec, e.gen); res.Err != OK {
		log.Debug("invalid filter spec", "family", e.family.String(), "err", res.Err.String())
		return res
	}

	res.Template, res.Spec = Normalize(spec)
	if est, ok := e.gen.(prototype.OrderEstimator); ok && res.Mode == ModeTemplate {
		res.EstimatedOrder = est.EstimateOrder(res.Template.prototype())
	}

	c, found, kind := e.search(res.Spec, res.Template)
	switch {
	case kind != OK:
		res.Err = kind
		return res
	case !found:
		log.Info("no order satisfies the design",
			"family", e.family.String(), "mode", res.Mode.String(), "max_order", MaximumOrder)
		res.Err = MaximumOrderReached
		return res
	}

	if !c.denormalized {
		c.normalized, c.final, kind = e.denormalize(c.proto, c.order, res.Template, res.Spec)
		if kind != OK {
			res.Err = kind
			return res
		}
	}

	res.Order = c.order
	res.Normalized = c.normalized
	res.Final = c.final

	log.Info("approximation found",
		"family", e.family.String(), "kind", spec.Kind.String(), "mode", res.Mode.String(),
		"order", c.order, "estimate", res.EstimatedOrder)

	return res
}

// Last returns the result of the most recent computation.
func (e *Engine) Last() (Result, bool) {
	return cloneResult(e.last), e.hasLast
}

// NormTemplate returns the normalized template (wa, Aa, wp, Ap) of the last
// computation.
func (e *Engine) NormTemplate() (wa, aa, wp, ap float64) {
	t := e.last.Template
	return t.Wa, t.Aa, t.Wp, t.Ap
}

// NormalizedZPK returns the normalized prototype of the last successful
// computation.
func (e *Engine) NormalizedZPK() (zpk.ZPK, bool) {
	if !e.hasLast || e.last.Err != OK {
		return zpk.ZPK{}, false
	}
	return e.last.Normalized.Clone(), true
}

// ZPK returns the final transfer function of the last successful
// computation.
func (e *Engine) ZPK() (zpk.ZPK, bool) {
	if !e.hasLast || e.last.Err != OK {
		return zpk.ZPK{}, false
	}
	return e.last.Final.Clone(), true
}

// Order returns the order accepted by the last successful computation, or 0.
func (e *Engine) Order() int {
	if e.last.Err != OK {
		return 0
	}
	return e.last.Order
}

func cloneResult(r Result) Result {
	r.Normalized = r.Normalized.Clone()
	r.Final = r.Final.Clone()
	return r
}
