package wincorr_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/optics/transmission"
	"github.com/cwbudde/algo-spectro/optics/wincorr"
)

func ExampleCorrectArrays() {
	refl, sigma, err := wincorr.CorrectArrays(
		[]float64{1.0}, []float64{0.10}, []float64{0.005},
		[]float64{0.3, 5.0}, []float64{0.95, 0.95},
		1, wincorr.ParasiticReflections,
	)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.6f %.6f\n", refl[0], sigma[0])
	// Output:
	// 0.110193 0.005510
}

func ExampleCorrect() {
	tab, _ := transmission.Constant(0.3, 5.0, 0.95)
	spec := wincorr.Spectrum{
		Wavelength:  []float64{0.8, 1.6},
		Reflectance: []float64{0.10, 0.20},
		Uncertainty: []float64{0.005, 0.010},
	}
	cfg := wincorr.Config{WindowCount: 1, Mode: wincorr.ExtendedCorrection}

	res, err := wincorr.Correct(spec, tab, cfg)
	if err != nil {
		panic(err)
	}
	for i := range res.Reflectance {
		fmt.Printf("%.4f %.5f\n", res.Reflectance[i], res.Uncertainty[i])
	}
	fmt.Println(cfg.Describe("sapphire window"))
	// Output:
	// 0.1088 0.00544
	// 0.2189 0.01095
	// Window reflection correction: material: sapphire window, quantity: 1, type: extended correction.
}
