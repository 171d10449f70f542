package approx

import "github.com/cwbudde/algo-analog/dsp/filter/zpk"

// DefaultMatchTolerance is the slack in dB allowed when comparing a
// prototype against its template.
const DefaultMatchTolerance = 1e-4

// TemplateOK reports whether the prototype h attenuates at most Ap at w = 1
// and at least Aa at Wa, within tol dB.
func TemplateOK(h zpk.ZPK, t NormalizedTemplate, tol float64) bool {
	if h.AttenuationDB(t.Wp) > t.Ap+tol {
		return false
	}
	return h.AttenuationDB(t.Wa) >= t.Aa-tol
}

// SelectivityOK reports whether no pole of h has a quality factor above
// maxQ. Real poles count with Q = 0.5.
func SelectivityOK(h zpk.ZPK, maxQ float64) bool {
	for _, p := range h.Poles {
		if zpk.Selectivity(p) > maxQ {
			return false
		}
	}
	return len(h.Poles) > 0
}

// DelayTemplateOK reports whether the unity-delay prototype h keeps its
// group delay at Wt within tolerancePercent of one second and, when Aa is
// positive, attenuates at least Aa at Wa.
func DelayTemplateOK(h zpk.ZPK, t DelayTemplate, tol float64) bool {
	if h.GroupDelay(t.Wt) < 1-t.TolerancePercent/100 {
		return false
	}
	if t.Aa > 0 {
		return h.AttenuationDB(t.Wa) >= t.Aa-tol
	}
	return true
}
