package zpk

import (
	"math"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Response computes H(jw) at the angular frequency w (rad/s).
func (h ZPK) Response(w float64) complex128 {
	s := complex(0, w)
	out := complex(h.Gain, 0)
	for _, z := range h.Zeros {
		out *= s - z
	}
	for _, p := range h.Poles {
		out /= s - p
	}
	return out
}

// Magnitude returns |H(jw)|.
func (h ZPK) Magnitude(w float64) float64 {
	return cmplx.Abs(h.Response(w))
}

// MagnitudeDB returns 20*log10(|H(jw)|).
func (h ZPK) MagnitudeDB(w float64) float64 {
	return 20 * math.Log10(h.Magnitude(w))
}

// AttenuationDB returns the attenuation -20*log10(|H(jw)|) in dB.
func (h ZPK) AttenuationDB(w float64) float64 {
	return -h.MagnitudeDB(w)
}

// Phase returns the phase of H(jw) in radians, in [-pi, pi].
func (h ZPK) Phase(w float64) float64 {
	return cmplx.Phase(h.Response(w))
}

// GroupDelay returns -d(phase)/dw at w, in seconds when w is in rad/s.
// It is evaluated in closed form from the root positions; zeros exactly on
// the evaluation point contribute nothing.
func (h ZPK) GroupDelay(w float64) float64 {
	tau := 0.0
	for _, p := range h.Poles {
		tau += rootDelay(p, w)
	}
	for _, z := range h.Zeros {
		tau -= rootDelay(z, w)
	}
	return tau
}

func rootDelay(r complex128, w float64) float64 {
	sigma := -real(r)
	d := w - imag(r)
	den := sigma*sigma + d*d
	if den == 0 {
		return 0
	}
	return sigma / den
}

// Magnitudes returns |H(jw)| for every angular frequency in w. Each root
// factor is evaluated over the whole grid at once and accumulated into the
// running product, alternating zeros and poles to keep it in range.
func (h ZPK) Magnitudes(w []float64) []float64 {
	n := len(w)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	g := math.Abs(h.Gain)
	for i := range out {
		out[i] = g
	}

	re := make([]float64, n)
	im := make([]float64, n)
	mag := make([]float64, n)

	factor := func(r complex128, pole bool) {
		for i, wi := range w {
			re[i] = -real(r)
			im[i] = wi - imag(r)
		}
		vecmath.Magnitude(mag, re, im)
		if pole {
			for i, m := range mag {
				mag[i] = 1 / m
			}
		}
		vecmath.MulBlockInPlace(out, mag)
	}

	zi, pi := 0, 0
	for zi < len(h.Zeros) || pi < len(h.Poles) {
		if zi < len(h.Zeros) {
			factor(h.Zeros[zi], false)
			zi++
		}
		if pi < len(h.Poles) {
			factor(h.Poles[pi], true)
			pi++
		}
	}

	return out
}

// AttenuationsDB returns the attenuation in dB at every frequency in w.
func (h ZPK) AttenuationsDB(w []float64) []float64 {
	out := h.Magnitudes(w)
	for i, m := range out {
		out[i] = -20 * math.Log10(m)
	}
	return out
}

// LinearGrid returns n evenly spaced frequencies covering [lo, hi].
func LinearGrid(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// LogGrid returns n logarithmically spaced frequencies covering [lo, hi].
// Both bounds must be positive.
func LogGrid(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	return floats.LogSpan(make([]float64, n), lo, hi)
}
