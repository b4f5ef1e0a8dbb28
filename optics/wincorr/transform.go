package wincorr

import "fmt"

// Extended-geometry calibration constants: x / (ExtendedOffset - ExtendedSlope·x).
const (
	ExtendedOffset = 1.0245
	ExtendedSlope  = 0.10612
)

// Transform applies the mode-dependent post-correction to a root. NaN input
// and a zero denominator propagate as NaN/Inf.
func Transform(x float64, mode Mode) (float64, error) {
	switch mode {
	case ParasiticReflections:
		return x, nil
	case ExtendedCorrection:
		return x / (ExtendedOffset - x*ExtendedSlope), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}
