package approx

import (
	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
)

// candidate is the outcome of one search iteration.
type candidate struct {
	order      int
	proto      zpk.ZPK
	normalized zpk.ZPK
	final      zpk.ZPK

	// denormalized is set when normalized and final are already computed.
	denormalized bool
}

// orderRange returns the orders the search visits for spec.
func orderRange(spec FilterSpec) (lo, hi int) {
	if spec.Mode() == ModeFixedOrder {
		return spec.Order, spec.Order
	}
	return 1, MaximumOrder
}

// search returns the first order accepted for spec's mode. found is false
// when every order was rejected; kind is not OK when the generator or the
// denormalization failed, which ends the search at once.
func (e *Engine) search(spec FilterSpec, t NormalizedTemplate) (c candidate, found bool, kind ErrorKind) {
	log := e.cfg.logger
	mode := spec.Mode()
	lo, hi := orderRange(spec)

	for n := lo; n <= hi; n++ {
		proto, err := e.gen.Prototype(t.prototype(), n)
		if err != nil {
			log.Warn("prototype generation failed",
				"family", e.family.String(), "order", n, "mode", mode.String(), "err", err)
			return candidate{}, false, UndefinedApproximation
		}

		c = candidate{order: n, proto: proto}

		switch mode {
		case ModeFixedOrder:
			found = true
		case ModeTemplate:
			found = TemplateOK(proto, t, e.cfg.matchTol)
		case ModeMaxSelectivity:
			normalized, final, k := e.denormalize(proto, n, t, spec)
			if k != OK {
				return candidate{}, false, k
			}
			c.normalized, c.final, c.denormalized = normalized, final, true
			found = SelectivityOK(final, spec.MaxSelectivity)
		}

		log.Debug("order candidate",
			"family", e.family.String(), "order", n, "mode", mode.String(), "match", found)

		if found {
			return c, true, OK
		}
	}

	return candidate{}, false, OK
}
