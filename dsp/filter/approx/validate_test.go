package approx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lowPassSpec() FilterSpec {
	return FilterSpec{Kind: LowPass, Fpl: 1000, Fal: 2000, Apl: 3, Aal: 20}
}

func bandPassSpec() FilterSpec {
	return FilterSpec{
		Kind: BandPass,
		Fal:  500, Fpl: 1000, Fpr: 2000, Far: 4000,
		Apl: 1, Apr: 1, Aal: 40, Aar: 40,
	}
}

func bandStopSpec() FilterSpec {
	return FilterSpec{
		Kind: BandStop,
		Fpl:  500, Fal: 1000, Far: 2000, Fpr: 4000,
		Apl: 1, Apr: 1, Aal: 40, Aar: 40,
	}
}

func TestValidate_Precedence(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*FilterSpec)
		want ErrorKind
	}{
		{"valid", func(*FilterSpec) {}, OK},
		{"type", func(s *FilterSpec) { s.Kind = Kind(9); s.GainDB = -1 }, InvalidType},
		{"gain before order", func(s *FilterSpec) { s.GainDB = -1; s.Order = 25 }, InvalidGain},
		{"nan gain", func(s *FilterSpec) { s.GainDB = math.NaN() }, InvalidGain},
		{"order before q", func(s *FilterSpec) { s.Order = 25; s.MaxSelectivity = -1 }, InvalidOrder},
		{"negative order", func(s *FilterSpec) { s.Order = -1 }, InvalidOrder},
		{"q before denorm", func(s *FilterSpec) { s.MaxSelectivity = -1; s.DenormPercent = 200 }, InvalidQ},
		{"inf q", func(s *FilterSpec) { s.MaxSelectivity = math.Inf(1) }, InvalidQ},
		{"denorm before edges", func(s *FilterSpec) { s.DenormPercent = 101; s.Fpl = -1 }, InvalidDenorm},
		{"frequency before attenuation", func(s *FilterSpec) { s.Fal = 500; s.Aal = 1 }, InvalidFrequency},
		{"attenuation", func(s *FilterSpec) { s.Apl = 0 }, InvalidAttenuation},
		{"nan frequency", func(s *FilterSpec) { s.Fal = math.NaN() }, InvalidFrequency},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := lowPassSpec()
			tc.mut(&spec)
			assert.Equal(t, tc.want, Validate(spec))
		})
	}
}

func TestValidate_FrequencyOrdering(t *testing.T) {
	lp := lowPassSpec()
	lp.Fal = lp.Fpl
	assert.Equal(t, InvalidFrequency, Validate(lp))

	lp = lowPassSpec()
	lp.Fpl, lp.Fal = 3000, 2000
	assert.Equal(t, InvalidFrequency, Validate(lp))

	hp := FilterSpec{Kind: HighPass, Fpl: 1000, Fal: 1000, Apl: 1, Aal: 40}
	assert.Equal(t, InvalidFrequency, Validate(hp))

	hp.Fal = 2000
	assert.Equal(t, InvalidFrequency, Validate(hp))

	hp.Fal = 500
	assert.Equal(t, OK, Validate(hp))
}

func TestValidate_BandEdges(t *testing.T) {
	assert.Equal(t, OK, Validate(bandPassSpec()))
	assert.Equal(t, OK, Validate(bandStopSpec()))

	bp := bandPassSpec()
	bp.Fpr = bp.Fpl
	assert.Equal(t, InvalidFrequency, Validate(bp))

	bp = bandPassSpec()
	bp.Fal = 1500
	assert.Equal(t, InvalidFrequency, Validate(bp))

	bs := bandStopSpec()
	bs.Far = 5000
	assert.Equal(t, InvalidFrequency, Validate(bs))

	bs = bandStopSpec()
	bs.Fpl = 0
	assert.Equal(t, InvalidFrequency, Validate(bs))
}

func TestValidate_InvertedAttenuationEveryKind(t *testing.T) {
	specs := []FilterSpec{
		lowPassSpec(),
		{Kind: HighPass, Fpl: 1000, Fal: 500, Apl: 3, Aal: 20},
		bandPassSpec(),
		bandStopSpec(),
	}

	for _, base := range specs {
		spec := base
		spec.Apl, spec.Aal = 10, 5
		if spec.Kind.Band() {
			spec.Apr, spec.Aar = 0, 0
		}
		assert.Equal(t, InvalidAttenuation, Validate(spec), spec.Kind.String())

		spec = base
		spec.Aal = spec.Apl
		assert.Equal(t, InvalidAttenuation, Validate(spec), spec.Kind.String())

		if base.Kind.Band() {
			spec = base
			spec.Apl, spec.Aal, spec.Aar = 30, 40, 20
			assert.Equal(t, InvalidAttenuation, Validate(spec), "%v Apl >= Aar", spec.Kind)

			spec = base
			spec.Apr = 45
			assert.Equal(t, InvalidAttenuation, Validate(spec), "%v Apr >= Aal", spec.Kind)
		}
	}
}

func TestValidate_OptionalRightSide(t *testing.T) {
	bp := bandPassSpec()
	bp.Apr, bp.Aar = 0, 0
	assert.Equal(t, OK, Validate(bp))

	bp.Aar = -1
	assert.Equal(t, InvalidAttenuation, Validate(bp))
}

func TestValidate_FixedOrderOnlyNeedsPassband(t *testing.T) {
	spec := FilterSpec{Kind: LowPass, Fpl: 1000, Apl: 1, Order: 4}
	assert.Equal(t, OK, Validate(spec))

	spec.Fpl = 0
	assert.Equal(t, InvalidFrequency, Validate(spec))

	spec = FilterSpec{Kind: HighPass, Fpl: 1000, MaxSelectivity: 2}
	assert.Equal(t, InvalidAttenuation, Validate(spec))

	spec = FilterSpec{Kind: BandPass, Fpl: 1000, Fpr: 900, Apl: 1, Order: 2}
	assert.Equal(t, InvalidFrequency, Validate(spec))

	spec.Fpr = 1200
	assert.Equal(t, OK, Validate(spec))
}

func TestMode_FixedOrderWins(t *testing.T) {
	assert.Equal(t, ModeTemplate, FilterSpec{}.Mode())
	assert.Equal(t, ModeMaxSelectivity, FilterSpec{MaxSelectivity: 1}.Mode())
	assert.Equal(t, ModeFixedOrder, FilterSpec{Order: 3, MaxSelectivity: 1}.Mode())
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"lowpass":     LowPass,
		"High-Pass":   HighPass,
		"bp":          BandPass,
		"band-reject": BandStop,
		"notch":       BandStop,
	} {
		got, err := ParseKind(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKind("allpass")
	assert.Error(t, err)

	for _, k := range []Kind{LowPass, HighPass, BandPass, BandStop} {
		got, err := ParseKind(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}
}
