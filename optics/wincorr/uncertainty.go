package wincorr

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Uncertainty rescales sigma by the ratio of corrected to measured
// reflectance: corrected · (sigma / measured). A zero measured reflectance
// yields NaN or Inf.
func Uncertainty(corrected, sigma, measured float64) float64 {
	return corrected * (sigma / measured)
}

// PropagateUncertainty computes [Uncertainty] element-wise into dst.
// All slices must have the same length.
func PropagateUncertainty(dst, corrected, sigma, measured []float64) error {
	n := len(dst)
	if len(corrected) != n || len(sigma) != n || len(measured) != n {
		return fmt.Errorf("%w: dst=%d corrected=%d sigma=%d measured=%d",
			ErrLengthMismatch, n, len(corrected), len(sigma), len(measured))
	}

	if n == 0 {
		return nil
	}

	for i := range dst {
		dst[i] = sigma[i] / measured[i]
	}

	vecmath.MulBlockInPlace(dst, corrected)

	return nil
}
