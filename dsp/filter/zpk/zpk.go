package zpk

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrZeroDCGain is returned when a transfer function has no finite, non-zero
// DC gain to normalize against.
var ErrZeroDCGain = errors.New("zpk: DC gain is zero or not finite")

// ZPK is an analog transfer function in zero/pole/gain form:
//
//	H(s) = Gain * prod(s - Zeros[i]) / prod(s - Poles[i])
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// New returns a ZPK holding copies of zeros and poles.
func New(zeros, poles []complex128, gain float64) ZPK {
	return ZPK{
		Zeros: append([]complex128(nil), zeros...),
		Poles: append([]complex128(nil), poles...),
		Gain:  gain,
	}
}

// Clone returns a deep copy of h.
func (h ZPK) Clone() ZPK {
	return New(h.Zeros, h.Poles, h.Gain)
}

// Order returns the number of poles.
func (h ZPK) Order() int {
	return len(h.Poles)
}

// RelativeDegree returns the pole count minus the zero count.
func (h ZPK) RelativeDegree() int {
	return len(h.Poles) - len(h.Zeros)
}

// DCGain returns H(0).
func (h ZPK) DCGain() float64 {
	num := prodNeg(h.Zeros)
	den := prodNeg(h.Poles)
	if den == 0 {
		return math.Inf(1)
	}
	return h.Gain * real(num/den)
}

// SetDCGain rescales the gain so that |H(0)| equals level.
func (h *ZPK) SetDCGain(level float64) error {
	dc := math.Abs(h.DCGain())
	if dc == 0 || math.IsNaN(dc) || math.IsInf(dc, 0) {
		return ErrZeroDCGain
	}

	h.Gain *= level / dc
	return nil
}

// ScaleGain multiplies the gain by a linear factor.
func (h *ZPK) ScaleGain(factor float64) {
	h.Gain *= factor
}

// ScaleFrequency replaces H(s) with H(s/factor): every zero and pole is
// multiplied by factor and the gain compensated so the response shape is
// preserved.
func (h *ZPK) ScaleFrequency(factor float64) {
	for i := range h.Zeros {
		h.Zeros[i] *= complex(factor, 0)
	}
	for i := range h.Poles {
		h.Poles[i] *= complex(factor, 0)
	}
	h.Gain *= math.Pow(factor, float64(h.RelativeDegree()))
}

// Stable reports whether every pole lies strictly in the left half plane.
func (h ZPK) Stable() bool {
	for _, p := range h.Poles {
		if !(real(p) < 0) {
			return false
		}
	}
	return true
}

// Finite reports whether the gain and every root are finite.
func (h ZPK) Finite() bool {
	if math.IsNaN(h.Gain) || math.IsInf(h.Gain, 0) {
		return false
	}
	for _, r := range h.Zeros {
		if cmplx.IsNaN(r) || cmplx.IsInf(r) {
			return false
		}
	}
	for _, r := range h.Poles {
		if cmplx.IsNaN(r) || cmplx.IsInf(r) {
			return false
		}
	}
	return true
}

func prodNeg(v []complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= -x
	}
	return out
}

// DBToLinear converts a gain in dB to a linear amplitude factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
