package prototype

import (
	"math"

	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
)

type butterworth struct{}

func (butterworth) Family() Family { return Butterworth }

func (butterworth) DCGain(float64, int) float64 { return 1 }

// Prototype places n poles evenly on a circle of radius eps^(-1/n), so the
// attenuation at w = 1 is exactly Ap.
func (b butterworth) Prototype(t Template, n int) (zpk.ZPK, error) {
	if err := checkOrder(n); err != nil {
		return zpk.ZPK{}, err
	}
	if err := checkPassband(t); err != nil {
		return zpk.ZPK{}, err
	}

	r := math.Pow(epsilon(t.Ap), -1/float64(n))
	poles := make([]complex128, 0, n)
	for k := range n / 2 {
		theta := math.Pi * float64(2*k+1) / float64(2*n)
		p, q := conjugatePair(-r*math.Sin(theta), r*math.Cos(theta))
		poles = append(poles, p, q)
	}
	if n%2 == 1 {
		poles = append(poles, complex(-r, 0))
	}

	return assemble(nil, poles, b.DCGain(t.Ap, n))
}

// EstimateOrder returns ceil(log(eps_a/eps_p) / log(wa)).
func (butterworth) EstimateOrder(t Template) int {
	if checkStopband(t) != nil || !(t.Wa > 1) {
		return MaxOrder + 1
	}
	return CeilOrder(math.Log(epsilon(t.Aa)/epsilon(t.Ap)) / math.Log(t.Wa))
}
