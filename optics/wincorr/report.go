package wincorr

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes a correction run.
type Report struct {
	Samples int
	// NoRoot counts samples whose polynomial had no selectable real root.
	NoRoot int
	// NonFinite counts samples with a NaN or Inf reflectance or uncertainty.
	NonFinite int
	// MeanRatio, MinRatio and MaxRatio describe corrected/measured
	// reflectance over finite samples. They are NaN when none is finite.
	MeanRatio float64
	MinRatio  float64
	MaxRatio  float64
	// MaxUncertainty is the largest finite corrected uncertainty magnitude.
	MaxUncertainty float64
}

// Summarize compares a measured spectrum with its correction.
func Summarize(in Spectrum, out Result) Report {
	rep := Report{
		Samples:   len(out.Reflectance),
		MeanRatio: math.NaN(),
		MinRatio:  math.NaN(),
		MaxRatio:  math.NaN(),
	}

	ratios := make([]float64, 0, len(out.Reflectance))
	sigma := make([]float64, 0, len(out.Uncertainty))

	for i, x := range out.Reflectance {
		if math.IsNaN(x) {
			rep.NoRoot++
		}

		s := math.NaN()
		if i < len(out.Uncertainty) {
			s = out.Uncertainty[i]
		}

		if !finite(x) || !finite(s) {
			rep.NonFinite++
		}
		if finite(s) {
			sigma = append(sigma, s)
		}

		if i < len(in.Reflectance) {
			if r := x / in.Reflectance[i]; finite(r) {
				ratios = append(ratios, r)
			}
		}
	}

	if len(ratios) > 0 {
		rep.MeanRatio = stat.Mean(ratios, nil)
		rep.MinRatio = floats.Min(ratios)
		rep.MaxRatio = floats.Max(ratios)
	}

	rep.MaxUncertainty = floats.Norm(sigma, math.Inf(1))

	return rep
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
