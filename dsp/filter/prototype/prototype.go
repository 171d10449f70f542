// Package prototype generates normalized analog low-pass prototypes.
//
// Every attenuation prototype has its passband edge at 1 rad/s: the
// attenuation there equals the template's passband attenuation Ap. The
// group-delay prototypes (Bessel, Gauss) are normalized to a DC group delay
// of one second instead.
package prototype

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
	"github.com/cwbudde/algo-analog/internal/polyroot"
)

// MaxOrder is the highest order any generator accepts.
const MaxOrder = 20

// orderTol is the slack allowed when rounding a real-valued order estimate.
const orderTol = 1e-9

var (
	// ErrUnsupportedMode is returned by a generator asked for a design mode it
	// does not implement, such as an attenuation template for Bessel.
	ErrUnsupportedMode = errors.New("prototype: mode not supported by family")

	// ErrInvalidOrder is returned for orders outside [1, MaxOrder].
	ErrInvalidOrder = errors.New("prototype: invalid order")

	// ErrInvalidTemplate is returned when the attenuations cannot parameterize
	// the family (non-positive Ap, Aa not above Ap, ...).
	ErrInvalidTemplate = errors.New("prototype: invalid template")

	// ErrUnknownFamily is returned by New and ParseFamily.
	ErrUnknownFamily = errors.New("prototype: unknown family")
)

// Family names an approximation family.
type Family int

const (
	Butterworth Family = iota
	ChebyshevI
	ChebyshevII
	Cauer
	Bessel
	Gauss
	Legendre
)

var familyNames = [...]string{
	Butterworth: "butterworth",
	ChebyshevI:  "chebyshev1",
	ChebyshevII: "chebyshev2",
	Cauer:       "cauer",
	Bessel:      "bessel",
	Gauss:       "gauss",
	Legendre:    "legendre",
}

// Families lists every family in declaration order.
func Families() []Family {
	return []Family{Butterworth, ChebyshevI, ChebyshevII, Cauer, Bessel, Gauss, Legendre}
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// ParseFamily maps a family name to its Family. Matching is case-insensitive
// and accepts the common aliases ("cheby1", "elliptic", "thomson", ...).
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "butterworth", "butter":
		return Butterworth, nil
	case "chebyshev1", "chebyshev-i", "cheby1", "chebyshevi":
		return ChebyshevI, nil
	case "chebyshev2", "chebyshev-ii", "cheby2", "chebyshevii", "inverse-chebyshev":
		return ChebyshevII, nil
	case "cauer", "elliptic", "ellip":
		return Cauer, nil
	case "bessel", "thomson":
		return Bessel, nil
	case "gauss", "gaussian":
		return Gauss, nil
	case "legendre", "optimum-l":
		return Legendre, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Template is a normalized low-pass attenuation template with the passband
// edge at 1 rad/s.
type Template struct {
	// Ap is the maximum passband attenuation in dB at w = 1.
	Ap float64

	// Aa is the minimum stopband attenuation in dB, reached at Wa.
	Aa float64

	// Wa is the normalized stopband edge (> 1). Zero when no stopband is
	// defined.
	Wa float64
}

// Generator produces normalized prototypes for one family.
type Generator interface {
	Family() Family

	// Prototype returns the order-n prototype for t, with its DC level
	// already set to DCGain(t.Ap, n).
	Prototype(t Template, n int) (zpk.ZPK, error)

	// DCGain is the linear DC level that puts the passband peak at unity.
	DCGain(ap float64, n int) float64
}

// DelayGenerator is implemented by families designed for a flat group delay.
type DelayGenerator interface {
	// DelayPrototype returns the order-n prototype with unity DC gain and a
	// DC group delay of one second.
	DelayPrototype(n int) (zpk.ZPK, error)
}

// OrderEstimator is implemented by families with a closed-form minimum
// order for a template.
type OrderEstimator interface {
	EstimateOrder(t Template) int
}

// StopbandDependent is implemented by families whose pole placement depends
// on the stopband attenuation, not only on Ap.
type StopbandDependent interface {
	UsesStopband() bool
}

// New returns the generator for f.
func New(f Family) (Generator, error) {
	switch f {
	case Butterworth:
		return butterworth{}, nil
	case ChebyshevI:
		return chebyshev1{}, nil
	case ChebyshevII:
		return chebyshev2{}, nil
	case Cauer:
		return cauer{}, nil
	case Bessel:
		return bessel{}, nil
	case Gauss:
		return gauss{}, nil
	case Legendre:
		return legendre{}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFamily, f)
}

// CeilOrder rounds a real-valued order estimate up to an integer, treating
// values within 1e-9 of an integer as that integer. The result is at least 1.
func CeilOrder(x float64) int {
	if math.IsNaN(x) {
		return 1
	}
	if math.IsInf(x, 1) || x > MaxOrder+1 {
		return MaxOrder + 1
	}

	n := math.Ceil(x)
	if r := math.Round(x); math.Abs(x-r) <= orderTol {
		n = r
	}
	return max(int(n), 1)
}

// epsilon returns sqrt(10^(db/10) - 1), the ripple factor of an attenuation.
func epsilon(db float64) float64 {
	return math.Sqrt(math.Expm1(math.Ln10 * db / 10))
}

// rippleDCGain is the DC level of equiripple families: 10^(-ap/20) for even
// orders, unity for odd ones.
func rippleDCGain(ap float64, n int) float64 {
	if n%2 == 0 {
		return zpk.DBToLinear(-ap)
	}
	return 1
}

func checkOrder(n int) error {
	if n < 1 || n > MaxOrder {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, n)
	}
	return nil
}

func checkPassband(t Template) error {
	if !(t.Ap > 0) || math.IsInf(t.Ap, 0) {
		return fmt.Errorf("%w: Ap=%v", ErrInvalidTemplate, t.Ap)
	}
	return nil
}

func checkStopband(t Template) error {
	if err := checkPassband(t); err != nil {
		return err
	}
	if !(t.Aa > t.Ap) || math.IsInf(t.Aa, 0) {
		return fmt.Errorf("%w: Aa=%v must exceed Ap=%v", ErrInvalidTemplate, t.Aa, t.Ap)
	}
	return nil
}

// assemble builds a prototype from its roots, pairs conjugates exactly and
// sets the DC level.
func assemble(zeros, poles []complex128, dc float64) (zpk.ZPK, error) {
	h := zpk.New(polyroot.Symmetrize(zeros), polyroot.Symmetrize(poles), 1)
	if !h.Finite() || !h.Stable() {
		return zpk.ZPK{}, fmt.Errorf("%w: non-finite or unstable roots", polyroot.ErrDegeneratePolynomial)
	}
	if err := h.SetDCGain(dc); err != nil {
		return zpk.ZPK{}, err
	}
	return h, nil
}

// conjugatePair returns p and its conjugate.
func conjugatePair(re, im float64) (complex128, complex128) {
	return complex(re, im), complex(re, -im)
}
