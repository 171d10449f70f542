package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-analog/dsp/filter/approx"
	"github.com/cwbudde/algo-analog/dsp/filter/prototype"
	"github.com/cwbudde/algo-analog/dsp/filter/zpk"
)

func printFamilies(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Family\tTemplate\tGroup delay\tOrder estimate\n")
	fmt.Fprintf(tw, "------\t--------\t-----------\t--------------\n")

	for _, f := range prototype.Families() {
		g, err := prototype.New(f)
		if err != nil {
			return err
		}
		_, delay := g.(prototype.DelayGenerator)
		_, est := g.(prototype.OrderEstimator)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f, yesNo(!delay), yesNo(delay), yesNo(est))
	}
	return tw.Flush()
}

func printFilterResult(w io.Writer, family prototype.Family, res approx.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Family\t%s\n", family)
	fmt.Fprintf(tw, "Type\t%s\n", res.Spec.Kind)
	fmt.Fprintf(tw, "Mode\t%s\n", res.Mode)
	fmt.Fprintf(tw, "Result\t%s\n", res.Err.String())
	if res.Template.Wp != 0 {
		t := res.Template
		fmt.Fprintf(tw, "Template\twp=%.6g  Ap=%.4g dB  wa=%.6g  Aa=%.4g dB\n", t.Wp, t.Ap, t.Wa, t.Aa)
	}
	if res.EstimatedOrder > 0 {
		fmt.Fprintf(tw, "Estimated order\t%d\n", res.EstimatedOrder)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if res.Err != approx.OK {
		return nil
	}

	fmt.Fprintf(w, "Order %d\n\n", res.Order)
	return printZPK(w, res.Final)
}

func printDelayResult(w io.Writer, family prototype.Family, spec approx.DelaySpec, res approx.DelayResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Family\t%s\n", family)
	fmt.Fprintf(tw, "Group delay\t%.6g ms\n", spec.GroupDelayMs)
	fmt.Fprintf(tw, "Mode\t%s\n", res.Mode)
	fmt.Fprintf(tw, "Result\t%s\n", res.Err.String())
	if res.Mode == approx.ModeTemplate {
		t := res.Template
		fmt.Fprintf(tw, "Template\twt=%.6g  tol=%.4g %%  wa=%.6g  Aa=%.4g dB\n", t.Wt, t.TolerancePercent, t.Wa, t.Aa)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if res.Err != approx.OK {
		return nil
	}

	fmt.Fprintf(w, "Order %d\n\n", res.Order)
	return printZPK(w, res.Final)
}

// printZPK lists the roots of h as second-order sections, poles first.
func printZPK(w io.Writer, h zpk.ZPK) error {
	fmt.Fprintf(w, "Gain %.10g\n\n", h.Gain)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Root\tRe\tIm\tf0 [Hz]\tQ\ts^1\ts^0\n")
	fmt.Fprintf(tw, "----\t--\t--\t-------\t-\t---\t---\n")

	write := func(label string, sections []zpk.Section) {
		for _, s := range sections {
			c1, c0 := s.Coefficients()
			r := s.Roots[0]
			fmt.Fprintf(tw, "%s\t%.6g\t%s\t%.6g\t%s\t%.6g\t%.6g\n",
				label, real(r), formatIm(s), s.W0/(2*math.Pi), formatQ(s.Q), c1, c0)
		}
	}
	write("pole", h.PoleSections())
	write("zero", h.ZeroSections())

	return tw.Flush()
}

func formatIm(s zpk.Section) string {
	if s.Order() == 1 {
		return "0"
	}
	return fmt.Sprintf("±%.6g", math.Abs(imag(s.Roots[0])))
}

func formatQ(q float64) string {
	if math.IsInf(q, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.4f", q)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
