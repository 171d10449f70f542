package prototype

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
	"github.com/cwbudde/algo-analog/internal/polyroot"
)

type bessel struct{}

func (bessel) Family() Family { return Bessel }

func (bessel) DCGain(float64, int) float64 { return 1 }

// Prototype always fails: Bessel filters are specified by group delay.
func (bessel) Prototype(Template, int) (zpk.ZPK, error) {
	return zpk.ZPK{}, fmt.Errorf("%w: %v has no attenuation prototype", ErrUnsupportedMode, Bessel)
}

// DelayPrototype returns the order-n Bessel (Thomson) filter with a maximally
// flat group delay of one second at DC.
func (bessel) DelayPrototype(n int) (zpk.ZPK, error) {
	if err := checkOrder(n); err != nil {
		return zpk.ZPK{}, err
	}

	var poles []complex128
	if n < len(besselDelayPoles) {
		for _, p := range besselDelayPoles[n] {
			if imag(p) == 0 {
				poles = append(poles, p)
				continue
			}
			a, b := conjugatePair(real(p), imag(p))
			poles = append(poles, a, b)
		}
	} else {
		roots, err := polyroot.Roots(reverseBessel(n))
		if err != nil {
			return zpk.ZPK{}, fmt.Errorf("bessel order %d: %w", n, err)
		}
		poles = roots
	}

	return assemble(nil, poles, 1)
}

// reverseBessel returns the descending coefficients of the reverse Bessel
// polynomial theta_n(s) = sum (2n-k)! / (2^(n-k) k! (n-k)!) s^k.
func reverseBessel(n int) []float64 {
	coeff := make([]float64, n+1)

	// Factorials are combined in log space; a_0 exceeds 1e23 at n = 20.
	for k := 0; k <= n; k++ {
		lg, _ := math.Lgamma(float64(2*n - k + 1))
		lk, _ := math.Lgamma(float64(k + 1))
		lnk, _ := math.Lgamma(float64(n - k + 1))
		coeff[n-k] = math.Exp(lg - lk - lnk - float64(n-k)*math.Ln2)
	}

	return coeff
}

// besselDelayPoles contains delay-normalized Bessel filter poles for orders 1–10.
// Only the unique pole from each conjugate pair (positive imaginary part) is stored.
// For odd orders, the real pole (zero imaginary part) is listed last.
//
// Source: C.R. Bond, "Bessel Filter Constants", crbond.com/papers/bsf.pdf.
var besselDelayPoles = [...][]complex128{
	{},
	{complex(-1.0, 0)},
	{complex(-1.5, 0.8660254038)},
	{complex(-1.8389073227, 1.7543809598), complex(-2.3221853546, 0)},
	{complex(-2.1037893972, 2.6574180419), complex(-2.8962106028, 0.8672341289)},
	{
		complex(-2.3246743032, 3.5710229203),
		complex(-3.3519563992, 1.7426614162),
		complex(-3.6467385953, 0),
	},
	{
		complex(-2.5159322478, 4.4926729537),
		complex(-3.7357083563, 2.6262723114),
		complex(-4.2483593959, 0.8675096732),
	},
	{
		complex(-2.6856768789, 5.4206941307),
		complex(-4.0701391636, 3.5171740477),
		complex(-4.7582905282, 1.7392860613),
		complex(-4.9717868585, 0),
	},
	{
		complex(-2.8389839177, 6.3539112470),
		complex(-4.3682892668, 4.4144425006),
		complex(-5.2048407906, 2.6161751538),
		complex(-5.5878860022, 0.8676144454),
	},
	{
		complex(-2.9792607983, 7.2914651564),
		complex(-4.6384398714, 5.3172716754),
		complex(-5.6044218195, 3.4981415816),
		complex(-6.1293679040, 1.7378483835),
		complex(-6.2970079817, 0),
	},
	{
		complex(-3.1088931555, 8.2324678728),
		complex(-4.8862195924, 6.2249854825),
		complex(-5.9675283089, 4.3849471924),
		complex(-6.6152909655, 2.6115679208),
		complex(-6.9220449048, 0.8676594792),
	},
}
