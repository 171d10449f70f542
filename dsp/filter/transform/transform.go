// Package transform maps a low-pass prototype with its passband edge at
// 1 rad/s onto low-pass, high-pass, band-pass and band-stop filters at real
// frequencies.
package transform

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
)

// ErrInvalidEdges is returned when the band edges are not positive and
// increasing.
var ErrInvalidEdges = errors.New("transform: invalid band edges")

// LowPass moves the passband edge of the prototype from 1 rad/s to wp.
func LowPass(h zpk.ZPK, wp float64) (zpk.ZPK, error) {
	if !(wp > 0) {
		return zpk.ZPK{}, ErrInvalidEdges
	}

	out := h.Clone()
	out.ScaleFrequency(wp)

	return out, nil
}

// HighPass substitutes s -> wp/s. Zeros at infinity move to the origin.
func HighPass(h zpk.ZPK, wp float64) (zpk.ZPK, error) {
	if !(wp > 0) {
		return zpk.ZPK{}, ErrInvalidEdges
	}

	degree := h.RelativeDegree()
	if degree < 0 {
		return zpk.ZPK{}, ErrInvalidEdges
	}

	w := complex(wp, 0)
	zh := make([]complex128, 0, len(h.Zeros)+degree)
	for _, z := range h.Zeros {
		if z == 0 {
			return zpk.ZPK{}, ErrInvalidEdges
		}
		zh = append(zh, w/z)
	}
	for range degree {
		zh = append(zh, 0)
	}

	ph := make([]complex128, 0, len(h.Poles))
	for _, p := range h.Poles {
		if p == 0 {
			return zpk.ZPK{}, ErrInvalidEdges
		}
		ph = append(ph, w/p)
	}

	k := h.Gain * real(productNeg(h.Zeros)/productNeg(h.Poles))

	return zpk.ZPK{Zeros: zh, Poles: ph, Gain: k}, nil
}

// BandPass substitutes s -> (s^2 + w0^2) / (s*bw) with w0 = sqrt(wl*wh) and
// bw = wh - wl. The order doubles.
func BandPass(h zpk.ZPK, wl, wh float64) (zpk.ZPK, error) {
	w0, bw, err := centre(wl, wh)
	if err != nil {
		return zpk.ZPK{}, err
	}

	degree := h.RelativeDegree()
	if degree < 0 {
		return zpk.ZPK{}, ErrInvalidEdges
	}

	zb := splitRoots(h.Zeros, w0, bw/2, false)
	for range degree {
		zb = append(zb, 0)
	}
	pb := splitRoots(h.Poles, w0, bw/2, false)

	return zpk.ZPK{Zeros: zb, Poles: pb, Gain: h.Gain * math.Pow(bw, float64(degree))}, nil
}

// BandStop substitutes s -> (s*bw) / (s^2 + w0^2) with w0 = sqrt(wl*wh) and
// bw = wh - wl. Zeros at infinity move to +-j*w0.
func BandStop(h zpk.ZPK, wl, wh float64) (zpk.ZPK, error) {
	w0, bw, err := centre(wl, wh)
	if err != nil {
		return zpk.ZPK{}, err
	}

	degree := h.RelativeDegree()
	if degree < 0 {
		return zpk.ZPK{}, ErrInvalidEdges
	}

	for _, r := range h.Poles {
		if r == 0 {
			return zpk.ZPK{}, ErrInvalidEdges
		}
	}
	for _, r := range h.Zeros {
		if r == 0 {
			return zpk.ZPK{}, ErrInvalidEdges
		}
	}

	zb := splitRoots(h.Zeros, w0, bw/2, true)
	for range degree {
		zb = append(zb, complex(0, w0), complex(0, -w0))
	}
	pb := splitRoots(h.Poles, w0, bw/2, true)

	k := h.Gain * real(productNeg(h.Zeros)/productNeg(h.Poles))

	return zpk.ZPK{Zeros: zb, Poles: pb, Gain: k}, nil
}

func centre(wl, wh float64) (float64, float64, error) {
	if !(wl > 0) || !(wh > wl) || math.IsInf(wh, 0) {
		return 0, 0, ErrInvalidEdges
	}
	return math.Sqrt(wl * wh), wh - wl, nil
}

// splitRoots maps every root r to the two roots of s^2 - 2*a*s + w0^2 with
// a = r*halfBW, or a = halfBW/r when inverted.
func splitRoots(roots []complex128, w0, halfBW float64, inverted bool) []complex128 {
	out := make([]complex128, 0, 2*len(roots))
	w02 := complex(w0*w0, 0)
	hb := complex(halfBW, 0)
	for _, r := range roots {
		a := r * hb
		if inverted {
			a = hb / r
		}
		d := cmplx.Sqrt(a*a - w02)
		out = append(out, a+d, a-d)
	}
	return out
}

func productNeg(v []complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= -x
	}
	return out
}
