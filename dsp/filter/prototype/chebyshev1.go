package prototype

import (
	"math"

	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
)

type chebyshev1 struct{}

func (chebyshev1) Family() Family { return ChebyshevI }

func (chebyshev1) DCGain(ap float64, n int) float64 { return rippleDCGain(ap, n) }

// Prototype places the poles on the ellipse sinh(mu)*cos + j*cosh(mu)*sin with
// mu = asinh(1/eps)/n. The passband ripples between 0 and Ap dB.
func (c chebyshev1) Prototype(t Template, n int) (zpk.ZPK, error) {
	if err := checkOrder(n); err != nil {
		return zpk.ZPK{}, err
	}
	if err := checkPassband(t); err != nil {
		return zpk.ZPK{}, err
	}

	mu := math.Asinh(1/epsilon(t.Ap)) / float64(n)
	sh, ch := math.Sinh(mu), math.Cosh(mu)

	poles := make([]complex128, 0, n)
	for k := range n / 2 {
		theta := math.Pi * float64(2*k+1) / float64(2*n)
		p, q := conjugatePair(-sh*math.Sin(theta), ch*math.Cos(theta))
		poles = append(poles, p, q)
	}
	if n%2 == 1 {
		poles = append(poles, complex(-sh, 0))
	}

	return assemble(nil, poles, c.DCGain(t.Ap, n))
}

// EstimateOrder returns ceil(acosh(eps_a/eps_p) / acosh(wa)).
func (chebyshev1) EstimateOrder(t Template) int {
	return chebyshevOrder(t)
}

func chebyshevOrder(t Template) int {
	if checkStopband(t) != nil || !(t.Wa > 1) {
		return MaxOrder + 1
	}
	return CeilOrder(math.Acosh(epsilon(t.Aa)/epsilon(t.Ap)) / math.Acosh(t.Wa))
}
