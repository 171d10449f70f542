package approx_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/dsp/filter/approx"
	"github.com/cwbudde/algo-analog/dsp/filter/prototype"
)

func ExampleEngine() {
	e, err := approx.NewEngine(prototype.Butterworth)
	if err != nil {
		panic(err)
	}

	e.SetSpec(approx.FilterSpec{Kind: approx.LowPass, Fpl: 1000, Apl: 3, Fal: 2000, Aal: 20})
	kind := e.Compute()

	res, _ := e.Last()
	fmt.Printf("err=%s order=%d estimate=%d\n", kind.String(), e.Order(), res.EstimatedOrder)

	h, _ := e.ZPK()
	fmt.Printf("fpl: %.2f dB\n", h.AttenuationDB(2*math.Pi*1000))
	fmt.Printf("fal: %.2f dB\n", h.AttenuationDB(2*math.Pi*2000))

	// Output:
	// err=ok order=4 estimate=4
	// fpl: 3.00 dB
	// fal: 24.08 dB
}

func ExampleDelayEngine() {
	e, err := approx.NewDelayEngine(prototype.Bessel)
	if err != nil {
		panic(err)
	}

	e.SetSpec(approx.DelaySpec{GroupDelayMs: 1, Order: 3})
	fmt.Println(e.Compute().String())

	h, _ := e.ZPK()
	fmt.Printf("delay: %.3f ms\n", 1e3*h.GroupDelay(0))

	// Output:
	// ok
	// delay: 1.000 ms
}
