package wincorr

import "math"

// Terms is the number of internal-reflection terms kept in the model. It
// fixes the polynomial degree and is part of the model, not a tuning knob.
const Terms = 9

// Polynomial returns the ascending coefficients of
// -r0 + Σ_{i=1..Terms} t^(2q)·(1-t)^(i-1)·x^i.
func Polynomial(r0, t float64, windows int) []float64 {
	c := make([]float64, Terms+1)
	c[0] = -r0

	gain := math.Pow(t, float64(2*windows))
	for i := 1; i <= Terms; i++ {
		c[i] = gain * math.Pow(1-t, float64(i-1))
	}

	return c
}
