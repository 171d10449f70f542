// Command filterdesign computes analog filter approximations and prints
// the resulting transfer function.
//
// Usage:
//
//	filterdesign [flags]
//
// A design is either an attenuation template (the default) or, when
// -delay is set, a group-delay template for the Bessel and Gauss families.
//
// Examples:
//
//	filterdesign -family butterworth -type lp -fpl 1000 -apl 3 -fal 2000 -aal 20
//	filterdesign -family cauer -type bp -fal 500 -fpl 1000 -fpr 2000 -far 4000 -apl 1 -aal 40
//	filterdesign -family chebyshev1 -type hp -fpl 1000 -apl 1 -order 5
//	filterdesign -family bessel -delay 1 -ft 300 -tol 10
//	filterdesign -spec design.yaml -v
//	filterdesign -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-analog/dsp/filter/approx"
	"github.com/cwbudde/algo-analog/dsp/filter/prototype"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	family   string
	kind     string
	specPath string
	list     bool
	verbose  bool

	filter approx.FilterSpec
	delay  approx.DelaySpec
}

func newFlagSet(stderr io.Writer, o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("filterdesign", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.family, "family", "butterworth", "approximation family (see -list)")
	fs.StringVar(&o.kind, "type", "lp", "response type: lp, hp, bp or bs")
	fs.StringVar(&o.specPath, "spec", "", "YAML design file; explicit flags override its values")
	fs.BoolVar(&o.list, "list", false, "list the approximation families")
	fs.BoolVar(&o.verbose, "v", false, "log the order search to stderr")

	f := &o.filter
	fs.Float64Var(&f.Fpl, "fpl", 0, "left passband edge in Hz")
	fs.Float64Var(&f.Fpr, "fpr", 0, "right passband edge in Hz (band types)")
	fs.Float64Var(&f.Fal, "fal", 0, "left stopband edge in Hz")
	fs.Float64Var(&f.Far, "far", 0, "right stopband edge in Hz (band types)")
	fs.Float64Var(&f.Apl, "apl", 0, "left passband attenuation in dB")
	fs.Float64Var(&f.Apr, "apr", 0, "right passband attenuation in dB (band types)")
	fs.Float64Var(&f.Aal, "aal", 0, "left stopband attenuation in dB")
	fs.Float64Var(&f.Aar, "aar", 0, "right stopband attenuation in dB (band types)")
	fs.Float64Var(&f.DenormPercent, "denorm", 0, "transition-band placement in percent (0..100)")
	fs.IntVar(&f.Order, "order", 0, "fixed filter order (0 searches the minimum order)")
	fs.Float64Var(&f.MaxSelectivity, "q", 0, "maximum pole Q (0 disables)")
	fs.Float64Var(&f.GainDB, "gain", 0, "passband gain in dB")

	d := &o.delay
	fs.Float64Var(&d.GroupDelayMs, "delay", 0, "DC group delay in ms; selects a group-delay design")
	fs.Float64Var(&d.Ft, "ft", 0, "frequency in Hz up to which the group delay must hold")
	fs.Float64Var(&d.TolerancePercent, "tol", 10, "allowed group-delay drop at -ft in percent")
	fs.Float64Var(&d.Fa, "fa", 0, "optional stopband frequency in Hz for a delay design")
	fs.Float64Var(&d.Aa, "aa", 0, "optional attenuation in dB at -fa")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: filterdesign [flags]\n\n")
		fmt.Fprintf(stderr, "Computes an analog filter approximation and prints its poles, zeros and sections.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  filterdesign -family butterworth -type lp -fpl 1000 -apl 3 -fal 2000 -aal 20\n")
		fmt.Fprintf(stderr, "  filterdesign -family bessel -delay 1 -ft 300 -tol 10\n")
		fmt.Fprintf(stderr, "  filterdesign -spec design.yaml\n")
	}

	return fs
}

func run(args []string, stdout, stderr io.Writer) error {
	var o options
	fs := newFlagSet(stderr, &o)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if o.list {
		return printFamilies(stdout)
	}

	if err := o.resolve(fs); err != nil {
		return err
	}

	family, err := prototype.ParseFamily(o.family)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if o.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if o.delay.GroupDelayMs > 0 {
		return designDelay(stdout, family, o.delay, logger)
	}
	return designFilter(stdout, family, o.filter, logger)
}

// resolve merges the design file, if any, with the explicitly set flags.
func (o *options) resolve(fs *flag.FlagSet) error {
	kind, err := approx.ParseKind(o.kind)
	if err != nil {
		return err
	}
	o.filter.Kind = kind
	o.delay.GainDB = o.filter.GainDB
	o.delay.Order = o.filter.Order
	o.delay.MaxSelectivity = o.filter.MaxSelectivity

	if o.specPath == "" {
		return nil
	}

	file, err := loadDesignFile(o.specPath)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if file.Family != "" && !set["family"] {
		o.family = file.Family
	}
	if file.Filter != nil {
		o.filter = overlayFilter(*file.Filter, o.filter, set)
	}
	if file.Delay != nil {
		o.delay = overlayDelay(*file.Delay, o.delay, set)
	}
	return nil
}

func designFilter(w io.Writer, family prototype.Family, spec approx.FilterSpec, logger *slog.Logger) error {
	e, err := approx.NewEngine(family, approx.WithLogger(logger))
	if err != nil {
		return err
	}
	e.SetSpec(spec)

	res := e.Run()
	if err := printFilterResult(w, family, res); err != nil {
		return err
	}
	return res.Err.Err()
}

func designDelay(w io.Writer, family prototype.Family, spec approx.DelaySpec, logger *slog.Logger) error {
	e, err := approx.NewDelayEngine(family, approx.WithLogger(logger))
	if err != nil {
		return err
	}
	e.SetSpec(spec)

	res := e.Run()
	if err := printDelayResult(w, family, spec, res); err != nil {
		return err
	}
	return res.Err.Err()
}
