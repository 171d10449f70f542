package approx

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/dsp/filter/transform"
	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
)

// errNoCrossing reports that the transition sweep never reached Aa.
var errNoCrossing = errors.New("approx: transition sweep found no stopband crossing")

// transitionFactor returns the frequency scale that moves the prototype's
// Aa crossing from w_cross towards wa by denorm percent of the distance.
func transitionFactor(h zpk.ZPK, t NormalizedTemplate, denorm float64, points int) (float64, float64, error) {
	grid := zpk.LinearGrid(t.Wp/10, 5*t.Wa, points)
	att := h.AttenuationsDB(grid)

	for i, a := range att {
		if a >= t.Aa {
			wc := grid[i]
			return (t.Wa-wc)/wc*(denorm/100) + 1, wc, nil
		}
	}

	return 0, 0, errNoCrossing
}

// denormalize turns an accepted order-n prototype into the normalized
// (gain-scaled) and final (frequency-transformed) transfer functions.
func (e *Engine) denormalize(proto zpk.ZPK, n int, t NormalizedTemplate, spec FilterSpec) (zpk.ZPK, zpk.ZPK, ErrorKind) {
	log := e.cfg.logger
	dc := e.gen.DCGain(t.Ap, n)

	h := proto.Clone()
	if err := h.SetDCGain(dc); err != nil {
		log.Error("prototype has no DC gain", "family", e.family.String(), "order", n, "err", err)
		return zpk.ZPK{}, zpk.ZPK{}, UndefinedApproximation
	}

	if spec.Mode() == ModeTemplate {
		factor, wc, err := transitionFactor(h, t, spec.DenormPercent, e.cfg.sweepPoints)
		if err != nil {
			log.Error("denormalization failed", "family", e.family.String(), "order", n,
				"wa", t.Wa, "aa", t.Aa, "err", err)
			return zpk.ZPK{}, zpk.ZPK{}, UndefinedApproximation
		}

		log.Debug("transition band", "crossing", wc, "factor", factor)
		h.ScaleFrequency(factor)
		if err := h.SetDCGain(dc); err != nil {
			return zpk.ZPK{}, zpk.ZPK{}, UndefinedApproximation
		}
	}

	h.ScaleGain(zpk.DBToLinear(spec.GainDB))

	final, err := frequencyTransform(h, spec)
	if err != nil {
		log.Error("frequency transform failed", "kind", spec.Kind.String(), "err", err)
		return zpk.ZPK{}, zpk.ZPK{}, UndefinedApproximation
	}

	return h, final, OK
}

// frequencyTransform maps the prototype onto the spec's band edges. Band
// kinds centre on sqrt(fpl*fpr) with bandwidth fpr - fpl.
func frequencyTransform(h zpk.ZPK, spec FilterSpec) (zpk.ZPK, error) {
	wpl := 2 * math.Pi * spec.Fpl
	wpr := 2 * math.Pi * spec.Fpr

	switch spec.Kind {
	case LowPass:
		return transform.LowPass(h, wpl)
	case HighPass:
		return transform.HighPass(h, wpl)
	case BandPass:
		return transform.BandPass(h, wpl, wpr)
	case BandStop:
		return transform.BandStop(h, wpl, wpr)
	}
	return zpk.ZPK{}, fmt.Errorf("approx: %v: %w", spec.Kind, transform.ErrInvalidEdges)
}
