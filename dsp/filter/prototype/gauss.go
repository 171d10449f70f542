package prototype

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
	"github.com/cwbudde/algo-analog/internal/polyroot"
)

type gauss struct{}

func (gauss) Family() Family { return Gauss }

func (gauss) DCGain(float64, int) float64 { return 1 }

// Prototype always fails: Gauss filters are specified by group delay.
func (gauss) Prototype(Template, int) (zpk.ZPK, error) {
	return zpk.ZPK{}, fmt.Errorf("%w: %v has no attenuation prototype", ErrUnsupportedMode, Gauss)
}

// DelayPrototype returns the stable half of the roots of the truncated series
// sum (-s^2)^k / k!, k = 0..n, rescaled to a DC group delay of one second.
func (gauss) DelayPrototype(n int) (zpk.ZPK, error) {
	if err := checkOrder(n); err != nil {
		return zpk.ZPK{}, err
	}

	// Solve in x = s^2; every root x yields one stable pole.
	series := make(polyroot.Poly, n+1)
	term := 1.0
	for k := 0; k <= n; k++ {
		series[k] = term
		term *= -1 / float64(k+1)
	}

	xs, err := polyroot.Roots(series.Descending())
	if err != nil {
		return zpk.ZPK{}, fmt.Errorf("gauss order %d: %w", n, err)
	}

	poles := make([]complex128, 0, n)
	for _, x := range xs {
		s := cmplx.Sqrt(x)
		if real(s) > 0 {
			s = -s
		}
		poles = append(poles, s)
	}
	poles = polyroot.SnapSmall(poles, 1e-10)
	poles = polyroot.LeftHalfPlane(poles, 0)
	if len(poles) != n {
		return zpk.ZPK{}, fmt.Errorf("gauss order %d: %w", n, polyroot.ErrDegeneratePolynomial)
	}

	h, err := assemble(nil, poles, 1)
	if err != nil {
		return zpk.ZPK{}, err
	}

	delay := h.GroupDelay(0)
	if !(delay > 0) || math.IsInf(delay, 0) {
		return zpk.ZPK{}, fmt.Errorf("gauss order %d: %w", n, polyroot.ErrDegeneratePolynomial)
	}
	h.ScaleFrequency(delay)

	return h, nil
}
