package prototype

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
	"github.com/cwbudde/algo-analog/internal/ellipticmath"
)

const ellipticEpsilon = 2.220446049250313e-16

type cauer struct{}

func (cauer) Family() Family { return Cauer }

func (cauer) DCGain(ap float64, n int) float64 { return rippleDCGain(ap, n) }

func (cauer) UsesStopband() bool { return true }

// Prototype returns the elliptic filter with passband ripple Ap and
// stopband attenuation Aa. Its poles and jw-axis zeros are placed with the
// Jacobi elliptic functions of the modulus that solves the degree equation
// for (n, Ap, Aa).
//
//nolint:funlen,cyclop
func (c cauer) Prototype(t Template, n int) (zpk.ZPK, error) {
	if err := checkOrder(n); err != nil {
		return zpk.ZPK{}, err
	}
	if err := checkStopband(t); err != nil {
		return zpk.ZPK{}, err
	}

	epsSq := math.Expm1(math.Ln10 * t.Ap / 10)
	ck1Sq := epsSq / math.Expm1(math.Ln10*t.Aa/10)
	if !(ck1Sq > 0 && ck1Sq < 1) {
		return zpk.ZPK{}, fmt.Errorf("%w: discrimination %v", ErrInvalidTemplate, ck1Sq)
	}

	if n == 1 {
		return assemble(nil, []complex128{complex(-1/math.Sqrt(epsSq), 0)}, 1)
	}

	m := ellipticmath.DegreeParam(n, ck1Sq, ellipticmath.Tol)
	if !(m > 0 && m < 1) {
		return zpk.ZPK{}, errEllipticDiverged("degree equation")
	}

	kmod := math.Sqrt(m)
	capK, _ := ellipticmath.EllipK(kmod, ellipticmath.Tol)
	k1K, _ := ellipticmath.EllipK(math.Sqrt(ck1Sq), ellipticmath.Tol)
	if !finitePositive(capK) || !finitePositive(k1K) {
		return zpk.ZPK{}, errEllipticDiverged("complete integral")
	}

	type jacobi struct{ sn, cn, dn float64 }

	half := make([]jacobi, 0, (n+1)/2)
	zeros := make([]complex128, 0, n)
	for j := 1 - n%2; j < n; j += 2 {
		sn, cn, dn, ok := ellipticmath.SnCnDn(float64(j)*capK/float64(n), kmod, ellipticmath.Tol)
		if !ok {
			return zpk.ZPK{}, errEllipticDiverged("sn/cn/dn")
		}
		half = append(half, jacobi{sn, cn, dn})

		if math.Abs(sn) > ellipticEpsilon {
			z := complex(0, 1/(kmod*sn))
			zeros = append(zeros, z, cmplx.Conj(z))
		}
	}

	r := ellipticmath.ArcSC1(1/math.Sqrt(epsSq), ck1Sq)
	if !finitePositive(r) {
		return zpk.ZPK{}, errEllipticDiverged("inverse sc")
	}

	sv, cv, dv, ok := ellipticmath.SnCnDn(capK*r/(float64(n)*k1K), math.Sqrt(1-m), ellipticmath.Tol)
	if !ok {
		return zpk.ZPK{}, errEllipticDiverged("sn/cn/dn")
	}

	poles := make([]complex128, 0, n)
	for _, v := range half {
		den := 1 - (v.dn*sv)*(v.dn*sv)
		if math.Abs(den) <= ellipticEpsilon {
			return zpk.ZPK{}, errEllipticDiverged("pole denominator")
		}

		p := -complex(v.cn*v.dn*sv*cv, v.sn*dv) / complex(den, 0)
		if v.sn == 0 {
			// The odd-order real pole.
			poles = append(poles, complex(real(p), 0))
			continue
		}
		poles = append(poles, p, cmplx.Conj(p))
	}

	return assemble(zeros, poles, c.DCGain(t.Ap, n))
}

// EstimateOrder solves n = K(k)K'(k1) / (K'(k)K(k1)) with selectivity
// k = 1/wa and discrimination k1 = eps_p/eps_a.
func (cauer) EstimateOrder(t Template) int {
	if checkStopband(t) != nil || !(t.Wa > 1) {
		return MaxOrder + 1
	}

	k1 := epsilon(t.Ap) / epsilon(t.Aa)
	return CeilOrder(ellipticmath.DegreeRatio(1/t.Wa, k1, ellipticmath.Tol))
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func errEllipticDiverged(stage string) error {
	return fmt.Errorf("%w: elliptic %s did not converge", ErrInvalidTemplate, stage)
}
