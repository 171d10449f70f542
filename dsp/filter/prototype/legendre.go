package prototype

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
	"github.com/cwbudde/algo-analog/internal/polyroot"
)

// legendreSnap is the magnitude below which root parts are treated as zero.
const legendreSnap = 1e-10

type legendre struct{}

func (legendre) Family() Family { return Legendre }

func (legendre) DCGain(float64, int) float64 { return 1 }

// Prototype returns the optimum-L filter |H(jw)|^2 = 1/(1 + eps^2 L_n(w^2)):
// the steepest roll-off at w = 1 among filters with a monotonic response.
func (l legendre) Prototype(t Template, n int) (zpk.ZPK, error) {
	if err := checkOrder(n); err != nil {
		return zpk.ZPK{}, err
	}
	if err := checkPassband(t); err != nil {
		return zpk.ZPK{}, err
	}

	e := epsilon(t.Ap)
	den := optimumL(n).Scale(e * e).Add(polyroot.Poly{1})

	xs, err := polyroot.Roots(den.Descending())
	if err != nil {
		return zpk.ZPK{}, fmt.Errorf("legendre order %d: %w", n, err)
	}

	// s = j*w with w^2 = x; keep the stable root of each pair.
	poles := make([]complex128, 0, n)
	for _, x := range xs {
		s := complex(0, 1) * cmplx.Sqrt(x)
		if real(s) > 0 {
			s = -s
		}
		poles = append(poles, s)
	}
	poles = polyroot.SnapSmall(poles, legendreSnap)
	poles = polyroot.LeftHalfPlane(poles, 0)
	if len(poles) != n {
		return zpk.ZPK{}, fmt.Errorf("legendre order %d: %w", n, polyroot.ErrDegeneratePolynomial)
	}

	return assemble(nil, poles, l.DCGain(t.Ap, n))
}

// optimumL returns L_n as a polynomial in x = w^2. It integrates the squared
// weighted Legendre sum v(y) from -1 to 2x-1, with an extra (y+1) weight for
// even orders, so that L_n(0) = 0 and L_n(1) = 1.
func optimumL(n int) polyroot.Poly {
	var integrand polyroot.Poly

	if n%2 == 1 {
		k := (n - 1) / 2
		a0 := 1 / (math.Sqrt2 * float64(k+1))
		v := polyroot.Poly{}
		for i := 0; i <= k; i++ {
			v = v.Add(polyroot.Legendre(i).Scale(a0 * float64(2*i+1)))
		}
		integrand = v.Mul(v)
	} else {
		k := n/2 - 1
		b0 := 1 / math.Sqrt(float64((k+1)*(k+2)))
		v := polyroot.Poly{}
		for i := k % 2; i <= k; i += 2 {
			v = v.Add(polyroot.Legendre(i).Scale(b0 * float64(2*i+1)))
		}
		integrand = v.Mul(v).Mul(polyroot.Poly{1, 1})
	}

	antiderivative := integrand.Integrate()
	upper := antiderivative.Compose(polyroot.Poly{-1, 2})
	return upper.Sub(polyroot.Poly{antiderivative.Eval(-1)})
}
