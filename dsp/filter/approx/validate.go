package approx

import (
	"math"

	"github.com/cwbudde/algo-analog/dsp/filter/prototype"
)

// Validate checks spec and returns the first violated rule, or OK. The
// checks run in a fixed order: type, gain, order, selectivity, denorm, then
// the frequencies and attenuations of the kind in the spec's mode.
func Validate(spec FilterSpec) ErrorKind {
	switch {
	case !spec.Kind.Valid():
		return InvalidType
	case !nonNegative(spec.GainDB):
		return InvalidGain
	case spec.Order < 0 || spec.Order > MaximumOrder:
		return InvalidOrder
	case !nonNegative(spec.MaxSelectivity):
		return InvalidQ
	case !(spec.DenormPercent >= 0 && spec.DenormPercent <= 100):
		return InvalidDenorm
	}

	if spec.Mode() != ModeTemplate {
		return validateEdgeOnly(spec)
	}

	switch spec.Kind {
	case LowPass:
		if !(positive(spec.Fpl) && spec.Fpl < spec.Fal && finite(spec.Fal)) {
			return InvalidFrequency
		}
		if !(positive(spec.Apl) && spec.Apl < spec.Aal && finite(spec.Aal)) {
			return InvalidAttenuation
		}
	case HighPass:
		if !(positive(spec.Fal) && spec.Fal < spec.Fpl && finite(spec.Fpl)) {
			return InvalidFrequency
		}
		if !(positive(spec.Apl) && spec.Apl < spec.Aal && finite(spec.Aal)) {
			return InvalidAttenuation
		}
	case BandPass:
		if !increasing(spec.Fal, spec.Fpl, spec.Fpr, spec.Far) {
			return InvalidFrequency
		}
		return validateBandAttenuation(spec)
	case BandStop:
		if !increasing(spec.Fpl, spec.Fal, spec.Far, spec.Fpr) {
			return InvalidFrequency
		}
		return validateBandAttenuation(spec)
	}

	return OK
}

// validateEdgeOnly covers fixed-order and max-selectivity modes, where only
// the passband drives the design.
func validateEdgeOnly(spec FilterSpec) ErrorKind {
	if !(positive(spec.Fpl) && finite(spec.Fpl)) {
		return InvalidFrequency
	}
	if spec.Kind.Band() && !(spec.Fpl < spec.Fpr && finite(spec.Fpr)) {
		return InvalidFrequency
	}
	if !(positive(spec.Apl) && finite(spec.Apl)) {
		return InvalidAttenuation
	}
	if spec.Kind.Band() && !nonNegative(spec.Apr) {
		return InvalidAttenuation
	}
	return OK
}

// validateBandAttenuation requires every defined passband attenuation to lie
// below every defined stopband attenuation. Apl and Aal are mandatory; Apr
// and Aar may be left at zero.
func validateBandAttenuation(spec FilterSpec) ErrorKind {
	if !(positive(spec.Apl) && positive(spec.Aal) && finite(spec.Aal)) {
		return InvalidAttenuation
	}
	if !nonNegative(spec.Apr) || !nonNegative(spec.Aar) {
		return InvalidAttenuation
	}

	maxPass := math.Max(spec.Apl, spec.Apr)
	minStop := spec.Aal
	if spec.Aar > 0 {
		minStop = math.Min(minStop, spec.Aar)
	}
	if !(maxPass < minStop) {
		return InvalidAttenuation
	}
	return OK
}

// validateFamily applies the rules a specific generator adds on top of
// Validate: stopband-parameterized families need Aa above Ap in every mode.
func validateFamily(spec FilterSpec, gen prototype.Generator) ErrorKind {
	sd, ok := gen.(prototype.StopbandDependent)
	if !ok || !sd.UsesStopband() {
		return OK
	}

	if !(positive(spec.Aal) && spec.Aal > spec.Apl && finite(spec.Aal)) {
		return InvalidAttenuation
	}
	if spec.Kind.Band() && spec.Aar != 0 {
		if !(spec.Aar > math.Max(spec.Apl, spec.Apr) && finite(spec.Aar)) {
			return InvalidAttenuation
		}
	}
	return OK
}

func positive(v float64) bool {
	return v > 0
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// increasing reports 0 < v[0] < v[1] < ... with every value finite.
func increasing(v ...float64) bool {
	if !positive(v[0]) {
		return false
	}
	for i := 1; i < len(v); i++ {
		if !(v[i-1] < v[i]) || !finite(v[i]) {
			return false
		}
	}
	return true
}
