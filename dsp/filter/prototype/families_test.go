package prototype

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
	"github.com/cwbudde/algo-analog/internal/polyroot"
	"github.com/cwbudde/algo-analog/internal/testutil"
)

var attenuationFamilies = []Family{Butterworth, ChebyshevI, ChebyshevII, Cauer, Legendre}

func edgeTolerance(f Family) float64 {
	if f == Cauer {
		return 1e-4
	}
	return 1e-6
}

func mustPrototype(t *testing.T, f Family, tmpl Template, n int) zpk.ZPK {
	t.Helper()
	g, err := New(f)
	require.NoError(t, err)
	h, err := g.Prototype(tmpl, n)
	require.NoError(t, err, "%v order %d", f, n)
	return h
}

func TestPrototype_PassbandEdgeAtUnity(t *testing.T) {
	for _, f := range attenuationFamilies {
		for _, ap := range []float64{0.5, 1, 3} {
			for n := 1; n <= 10; n++ {
				t.Run(fmt.Sprintf("%v/ap=%v/n=%d", f, ap, n), func(t *testing.T) {
					h := mustPrototype(t, f, Template{Ap: ap, Aa: 40, Wa: 2}, n)

					assert.Equal(t, n, h.Order())
					assert.InDelta(t, ap, h.AttenuationDB(1), edgeTolerance(f))
					testutil.RequireLeftHalfPlane(t, h.Poles)
					testutil.RequireConjugateSymmetric(t, h.Poles, 1e-9)
					testutil.RequireConjugateSymmetric(t, h.Zeros, 1e-9)
				})
			}
		}
	}
}

func TestPrototype_PeakIsUnity(t *testing.T) {
	grid := zpk.LinearGrid(0, 1, 2001)
	for _, f := range attenuationFamilies {
		for _, n := range []int{2, 3, 6, 7} {
			h := mustPrototype(t, f, Template{Ap: 1, Aa: 50, Wa: 2}, n)

			g, _ := New(f)
			assert.InDelta(t, g.DCGain(1, n), math.Abs(h.DCGain()), 1e-12, "%v n=%d", f, n)

			peak := 0.0
			for _, m := range h.Magnitudes(grid) {
				peak = math.Max(peak, m)
			}
			assert.LessOrEqual(t, peak, 1+1e-6, "%v n=%d", f, n)
			assert.Greater(t, peak, 1-1e-3, "%v n=%d", f, n)
		}
	}
}

func TestButterworth_KnownPoles(t *testing.T) {
	h := mustPrototype(t, Butterworth, Template{Ap: 10 * math.Log10(2)}, 2)
	s := 1 / math.Sqrt2
	testutil.RequireRootsNearlyEqual(t, h.Poles, []complex128{complex(-s, s), complex(-s, -s)}, 1e-12)
	assert.InDelta(t, 1.0, h.Gain, 1e-12)
}

func TestChebyshev1_FirstOrderPole(t *testing.T) {
	const ap = 1.0
	h := mustPrototype(t, ChebyshevI, Template{Ap: ap}, 1)
	testutil.RequireRootsNearlyEqual(t, h.Poles, []complex128{complex(-1/epsilon(ap), 0)}, 1e-12)
}

func TestChebyshev1_EquirippleDepth(t *testing.T) {
	const ap = 0.5
	h := mustPrototype(t, ChebyshevI, Template{Ap: ap}, 5)

	worst := 0.0
	for _, a := range h.AttenuationsDB(zpk.LinearGrid(0, 1, 4001)) {
		worst = math.Max(worst, a)
	}
	assert.InDelta(t, ap, worst, 1e-6)
}

func TestStopbandFamilies_ReachAaAtEdge(t *testing.T) {
	tmpl := Template{Ap: 1, Aa: 45}
	for _, n := range []int{2, 3, 4, 5, 8} {
		stop := math.Cosh(math.Acosh(epsilon(tmpl.Aa)/epsilon(tmpl.Ap)) / float64(n))
		h := mustPrototype(t, ChebyshevII, tmpl, n)
		assert.InDelta(t, tmpl.Aa, h.AttenuationDB(stop), 1e-6, "n=%d", n)

		for _, w := range zpk.LinearGrid(stop, 10*stop, 500) {
			require.GreaterOrEqual(t, h.AttenuationDB(w), tmpl.Aa-1e-6, "n=%d w=%v", n, w)
		}
	}
}

func TestChebyshev2_ZerosOnImaginaryAxis(t *testing.T) {
	h := mustPrototype(t, ChebyshevII, Template{Ap: 1, Aa: 40}, 5)
	require.Len(t, h.Zeros, 4)
	for _, z := range h.Zeros {
		assert.Zero(t, real(z))
		assert.Greater(t, math.Abs(imag(z)), 1.0)
	}
}

func TestCauer_StopbandMinimum(t *testing.T) {
	tmpl := Template{Ap: 0.5, Aa: 60, Wa: 1.5}
	g, _ := New(Cauer)
	n := g.(OrderEstimator).EstimateOrder(tmpl)
	require.GreaterOrEqual(t, n, 2)
	h := mustPrototype(t, Cauer, tmpl, n)

	assert.Len(t, h.Zeros, n-n%2)
	for _, w := range zpk.LinearGrid(tmpl.Wa, 20*tmpl.Wa, 4000) {
		require.GreaterOrEqual(t, h.AttenuationDB(w), tmpl.Aa-1e-3, "w=%v", w)
	}
}

func TestEstimateOrder_MeetsTemplate(t *testing.T) {
	templates := []Template{
		{Ap: 1, Aa: 40, Wa: 2},
		{Ap: 0.5, Aa: 60, Wa: 1.5},
		{Ap: 3, Aa: 30, Wa: 4},
		{Ap: 0.1, Aa: 80, Wa: 3},
	}

	for _, f := range []Family{Butterworth, ChebyshevI, ChebyshevII, Cauer} {
		g, _ := New(f)
		est := g.(OrderEstimator)
		for _, tmpl := range templates {
			n := est.EstimateOrder(tmpl)
			if n > MaxOrder {
				continue
			}
			h := mustPrototype(t, f, tmpl, n)
			assert.GreaterOrEqual(t, h.AttenuationDB(tmpl.Wa), tmpl.Aa-1e-3, "%v %+v n=%d", f, tmpl, n)
		}
	}
}

func TestEstimateOrder_Butterworth(t *testing.T) {
	g, _ := New(Butterworth)
	n := g.(OrderEstimator).EstimateOrder(Template{Ap: 10 * math.Log10(2), Aa: 40, Wa: 10})
	assert.Equal(t, 2, n)

	assert.Equal(t, MaxOrder+1, g.(OrderEstimator).EstimateOrder(Template{Ap: 1, Aa: 40, Wa: 1}))
}

func TestEstimateOrder_EllipticBeatsChebyshev(t *testing.T) {
	tmpl := Template{Ap: 0.5, Aa: 60, Wa: 1.5}
	cheb, _ := New(ChebyshevI)
	ellip, _ := New(Cauer)
	assert.Less(t, ellip.(OrderEstimator).EstimateOrder(tmpl), cheb.(OrderEstimator).EstimateOrder(tmpl))
}

func TestOptimumL_KnownPolynomials(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, optimumL(1), []float64{0, 1}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, optimumL(2), []float64{0, 0, 1}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, optimumL(3), []float64{0, 1, -3, 3}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, optimumL(4), []float64{0, 0, 3, -8, 6}, 1e-12)
}

func TestOptimumL_Normalization(t *testing.T) {
	for n := 1; n <= 12; n++ {
		l := optimumL(n)
		assert.Equal(t, n, l.Degree(), "n=%d", n)
		assert.InDelta(t, 0.0, l.Eval(0), 1e-12, "n=%d", n)
		assert.InDelta(t, 1.0, l.Eval(1), 1e-9, "n=%d", n)
	}
}

func TestLegendre_Monotonic(t *testing.T) {
	h := mustPrototype(t, Legendre, Template{Ap: 3}, 6)
	mags := h.Magnitudes(zpk.LinearGrid(0, 3, 600))
	for i := 1; i < len(mags); i++ {
		require.LessOrEqual(t, mags[i], mags[i-1]+1e-9, "index %d", i)
	}
}

func TestLegendre_SteeperThanButterworth(t *testing.T) {
	tmpl := Template{Ap: 3}
	l := mustPrototype(t, Legendre, tmpl, 5)
	b := mustPrototype(t, Butterworth, tmpl, 5)
	assert.Greater(t, l.AttenuationDB(2), b.AttenuationDB(2))
}

func TestBessel_UnityDelay(t *testing.T) {
	g, _ := New(Bessel)
	for n := 1; n <= MaxOrder; n++ {
		h, err := g.(DelayGenerator).DelayPrototype(n)
		require.NoError(t, err, "n=%d", n)

		assert.Equal(t, n, h.Order())
		assert.InDelta(t, 1.0, h.GroupDelay(0), 1e-5, "n=%d", n)
		assert.InDelta(t, 1.0, h.DCGain(), 1e-9, "n=%d", n)
		testutil.RequireLeftHalfPlane(t, h.Poles)
	}
}

func TestBessel_PolynomialMatchesTable(t *testing.T) {
	g, _ := New(Bessel)
	for n := 2; n < len(besselDelayPoles); n++ {
		h, err := g.(DelayGenerator).DelayPrototype(n)
		require.NoError(t, err)

		roots, err := polyroot.Roots(reverseBessel(n))
		require.NoError(t, err)
		testutil.RequireRootsNearlyEqual(t, roots, h.Poles, 1e-8)
	}
}

func TestReverseBessel_Coefficients(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, reverseBessel(2), []float64{1, 3, 3}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, reverseBessel(3), []float64{1, 6, 15, 15}, 1e-12)
}

func TestGauss_UnityDelay(t *testing.T) {
	g, _ := New(Gauss)
	for n := 1; n <= 12; n++ {
		h, err := g.(DelayGenerator).DelayPrototype(n)
		require.NoError(t, err, "n=%d", n)

		assert.Equal(t, n, h.Order())
		assert.InDelta(t, 1.0, h.GroupDelay(0), 1e-9, "n=%d", n)
		assert.InDelta(t, 1.0, h.DCGain(), 1e-9, "n=%d", n)
		testutil.RequireLeftHalfPlane(t, h.Poles)
	}
}
