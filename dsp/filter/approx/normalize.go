package approx

import "math"

// Normalize maps spec onto the low-pass prototype template. The returned
// spec carries the band edges after the symmetry adjustment, which the
// denormalization uses. spec must have passed Validate.
func Normalize(spec FilterSpec) (NormalizedTemplate, FilterSpec) {
	mode := spec.Mode()
	if mode == ModeTemplate {
		spec = adjustSymmetry(spec)
	}

	t := NormalizedTemplate{Wp: 1, Ap: spec.Apl, Aa: spec.Aal}
	if spec.Kind.Band() {
		if spec.Apr > 0 {
			t.Ap = math.Min(t.Ap, spec.Apr)
		}
		t.Aa = math.Max(t.Aa, spec.Aar)
	}
	t.Aa += spec.GainDB

	if mode != ModeTemplate {
		return t, spec
	}

	switch spec.Kind {
	case LowPass:
		t.Wa = spec.Fal / spec.Fpl
	case HighPass:
		t.Wa = spec.Fpl / spec.Fal
	case BandPass:
		t.Wa = (spec.Far - spec.Fal) / (spec.Fpr - spec.Fpl)
	case BandStop:
		t.Wa = (spec.Fpr - spec.Fpl) / (spec.Far - spec.Fal)
	}

	return t, spec
}

// adjustSymmetry makes the band edges geometrically symmetric around the
// passband centre by tightening one edge: a stopband edge for band-pass, a
// passband edge for band-stop.
func adjustSymmetry(spec FilterSpec) FilterSpec {
	switch spec.Kind {
	case BandPass:
		pass, stop := spec.Fpl*spec.Fpr, spec.Fal*spec.Far
		if pass <= stop {
			spec.Far = pass / spec.Fal
		} else {
			spec.Fal = pass / spec.Far
		}
	case BandStop:
		pass, stop := spec.Fpl*spec.Fpr, spec.Fal*spec.Far
		if stop <= pass {
			spec.Fpr = stop / spec.Fpl
		} else {
			spec.Fpl = stop / spec.Fpr
		}
	}
	return spec
}
