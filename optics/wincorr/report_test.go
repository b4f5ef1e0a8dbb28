package wincorr

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestSummarize(t *testing.T) {
	in := Spectrum{
		Wavelength:  []float64{1, 2, 3, 4},
		Reflectance: []float64{0.1, 0.2, 0, 0.4},
		Uncertainty: []float64{0.01, 0.01, 0.01, 0.02},
	}
	out := Result{
		Reflectance: []float64{0.11, math.NaN(), 0, 0.48},
		Uncertainty: []float64{0.011, math.NaN(), math.NaN(), -0.024},
	}

	rep := Summarize(in, out)

	if rep.Samples != 4 {
		t.Errorf("Samples = %d, want 4", rep.Samples)
	}
	if rep.NoRoot != 1 {
		t.Errorf("NoRoot = %d, want 1", rep.NoRoot)
	}
	if rep.NonFinite != 2 {
		t.Errorf("NonFinite = %d, want 2", rep.NonFinite)
	}

	testutil.RequireNearlyEqual(t, "MeanRatio", rep.MeanRatio, 1.15, 1e-12)
	testutil.RequireNearlyEqual(t, "MinRatio", rep.MinRatio, 1.1, 1e-12)
	testutil.RequireNearlyEqual(t, "MaxRatio", rep.MaxRatio, 1.2, 1e-12)
	testutil.RequireNearlyEqual(t, "MaxUncertainty", rep.MaxUncertainty, 0.024, 1e-15)
}

func TestSummarizeNoFiniteSamples(t *testing.T) {
	rep := Summarize(
		Spectrum{Reflectance: []float64{0.1}},
		Result{Reflectance: []float64{math.NaN()}, Uncertainty: []float64{math.NaN()}},
	)

	if !math.IsNaN(rep.MeanRatio) || !math.IsNaN(rep.MinRatio) || !math.IsNaN(rep.MaxRatio) {
		t.Fatalf("ratios = %v/%v/%v, want NaN", rep.MeanRatio, rep.MinRatio, rep.MaxRatio)
	}
	if rep.MaxUncertainty != 0 {
		t.Fatalf("MaxUncertainty = %v, want 0", rep.MaxUncertainty)
	}
}
