package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-analog/dsp/filter/approx"
)

// designFile is the YAML layout accepted by -spec:
//
//	family: cauer
//	filter:
//	  type: band-pass
//	  fal: 500
//	  fpl: 1000
//	  fpr: 2000
//	  far: 4000
//	  apl: 1
//	  aal: 40
//
// A delay section replaces the filter section for group-delay designs.
type designFile struct {
	Family string             `yaml:"family"`
	Filter *approx.FilterSpec `yaml:"filter"`
	Delay  *approx.DelaySpec  `yaml:"delay"`
}

func loadDesignFile(path string) (designFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return designFile{}, err
	}
	defer f.Close()

	var df designFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&df); err != nil {
		return designFile{}, fmt.Errorf("%s: %w", path, err)
	}
	if df.Filter != nil && df.Delay != nil {
		return designFile{}, fmt.Errorf("%s: filter and delay sections are mutually exclusive", path)
	}
	return df, nil
}

// overlayFilter returns base with the fields of flags whose flag was set
// explicitly.
func overlayFilter(base, flags approx.FilterSpec, set map[string]bool) approx.FilterSpec {
	fields := map[string]func(){
		"type":   func() { base.Kind = flags.Kind },
		"gain":   func() { base.GainDB = flags.GainDB },
		"fpl":    func() { base.Fpl = flags.Fpl },
		"fpr":    func() { base.Fpr = flags.Fpr },
		"fal":    func() { base.Fal = flags.Fal },
		"far":    func() { base.Far = flags.Far },
		"apl":    func() { base.Apl = flags.Apl },
		"apr":    func() { base.Apr = flags.Apr },
		"aal":    func() { base.Aal = flags.Aal },
		"aar":    func() { base.Aar = flags.Aar },
		"order":  func() { base.Order = flags.Order },
		"q":      func() { base.MaxSelectivity = flags.MaxSelectivity },
		"denorm": func() { base.DenormPercent = flags.DenormPercent },
	}
	for name, apply := range fields {
		if set[name] {
			apply()
		}
	}
	return base
}

// overlayDelay is overlayFilter for group-delay designs.
func overlayDelay(base, flags approx.DelaySpec, set map[string]bool) approx.DelaySpec {
	fields := map[string]func(){
		"gain":  func() { base.GainDB = flags.GainDB },
		"delay": func() { base.GroupDelayMs = flags.GroupDelayMs },
		"ft":    func() { base.Ft = flags.Ft },
		"tol":   func() { base.TolerancePercent = flags.TolerancePercent },
		"fa":    func() { base.Fa = flags.Fa },
		"aa":    func() { base.Aa = flags.Aa },
		"order": func() { base.Order = flags.Order },
		"q":     func() { base.MaxSelectivity = flags.MaxSelectivity },
	}
	for name, apply := range fields {
		if set[name] {
			apply()
		}
	}
	return base
}
