package prototype

import (
	"math"

	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
)

type chebyshev2 struct{}

func (chebyshev2) Family() Family { return ChebyshevII }

func (chebyshev2) DCGain(float64, int) float64 { return 1 }

func (chebyshev2) UsesStopband() bool { return true }

// Prototype builds the inverse Chebyshev filter with equiripple stopband
// attenuation Aa, then rescales it so the maximally flat passband reaches Ap
// at w = 1. The stopband then starts at cosh(acosh(eps_a/eps_p)/n).
func (c chebyshev2) Prototype(t Template, n int) (zpk.ZPK, error) {
	if err := checkOrder(n); err != nil {
		return zpk.ZPK{}, err
	}
	if err := checkStopband(t); err != nil {
		return zpk.ZPK{}, err
	}

	epsA := epsilon(t.Aa)
	mu := math.Asinh(epsA) / float64(n)
	sh, ch := math.Sinh(mu), math.Cosh(mu)

	zeros := make([]complex128, 0, n)
	poles := make([]complex128, 0, n)
	for k := range n / 2 {
		theta := math.Pi * float64(2*k+1) / float64(2*n)

		// Invert the Chebyshev I pole into the Type II pole.
		p := 1 / complex(-sh*math.Sin(theta), ch*math.Cos(theta))
		pa, pb := conjugatePair(real(p), imag(p))
		poles = append(poles, pa, pb)

		za, zb := conjugatePair(0, 1/math.Cos(theta))
		zeros = append(zeros, za, zb)
	}
	if n%2 == 1 {
		poles = append(poles, complex(-1/sh, 0))
	}

	stop := math.Cosh(math.Acosh(epsA/epsilon(t.Ap)) / float64(n))
	for i := range zeros {
		zeros[i] *= complex(stop, 0)
	}
	for i := range poles {
		poles[i] *= complex(stop, 0)
	}

	return assemble(zeros, poles, c.DCGain(t.Ap, n))
}

// EstimateOrder matches Chebyshev I: the inverse filter needs the same order.
func (chebyshev2) EstimateOrder(t Template) int {
	return chebyshevOrder(t)
}
