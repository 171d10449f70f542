package approx

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-analog/dsp/filter/prototype"
)

// MaximumOrder is the highest order the search considers.
const MaximumOrder = prototype.MaxOrder

// Kind is the response type of the designed filter.
type Kind int

const (
	LowPass Kind = iota
	HighPass
	BandPass
	BandStop
)

func (k Kind) String() string {
	switch k {
	case LowPass:
		return "low-pass"
	case HighPass:
		return "high-pass"
	case BandPass:
		return "band-pass"
	case BandStop:
		return "band-stop"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the four response types.
func (k Kind) Valid() bool {
	return k >= LowPass && k <= BandStop
}

// Band reports whether k is band-pass or band-stop.
func (k Kind) Band() bool {
	return k == BandPass || k == BandStop
}

// ParseKind maps a response type name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low-pass", "lowpass", "lp":
		return LowPass, nil
	case "high-pass", "highpass", "hp":
		return HighPass, nil
	case "band-pass", "bandpass", "bp":
		return BandPass, nil
	case "band-stop", "bandstop", "band-reject", "bandreject", "notch", "bs":
		return BandStop, nil
	}
	return 0, fmt.Errorf("approx: unknown filter type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("approx: invalid filter type %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// FilterSpec is an attenuation template. Frequencies are in Hz and
// attenuations in dB. Which edges are used depends on Kind: low-pass and
// high-pass only use Fpl, Fal, Apl and Aal.
type FilterSpec struct {
	Kind   Kind    `yaml:"type"`
	GainDB float64 `yaml:"gain"`

	Fpl float64 `yaml:"fpl"`
	Fpr float64 `yaml:"fpr"`
	Fal float64 `yaml:"fal"`
	Far float64 `yaml:"far"`

	Apl float64 `yaml:"apl"`
	Apr float64 `yaml:"apr"`
	Aal float64 `yaml:"aal"`
	Aar float64 `yaml:"aar"`

	// Order fixes the filter order when positive.
	Order int `yaml:"order"`

	// MaxSelectivity bounds the Q of every final pole when positive.
	MaxSelectivity float64 `yaml:"q"`

	// DenormPercent moves the design from just meeting the stopband edge (0)
	// to just meeting the passband edge (100).
	DenormPercent float64 `yaml:"denorm"`
}

// Mode is the design mode selected by a FilterSpec.
type Mode int

const (
	ModeTemplate Mode = iota
	ModeFixedOrder
	ModeMaxSelectivity
)

func (m Mode) String() string {
	switch m {
	case ModeTemplate:
		return "template"
	case ModeFixedOrder:
		return "fixed-order"
	case ModeMaxSelectivity:
		return "max-selectivity"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Mode returns the design mode. A fixed order takes precedence over a
// selectivity bound.
func (s FilterSpec) Mode() Mode {
	switch {
	case s.Order > 0:
		return ModeFixedOrder
	case s.MaxSelectivity > 0:
		return ModeMaxSelectivity
	default:
		return ModeTemplate
	}
}

// NormalizedTemplate is the low-pass prototype template derived from a
// FilterSpec. Wp is always 1; Wa is 0 outside template mode.
type NormalizedTemplate struct {
	Wa float64
	Aa float64
	Wp float64
	Ap float64
}

func (t NormalizedTemplate) prototype() prototype.Template {
	return prototype.Template{Ap: t.Ap, Aa: t.Aa, Wa: t.Wa}
}
