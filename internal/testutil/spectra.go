package testutil

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Grid returns n evenly spaced values from lo to hi inclusive.
func Grid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	switch n {
	case 0:
		return out
	case 1:
		out[0] = lo
		return out
	}
	return floats.Span(out, lo, hi)
}

// DC returns a slice of length n filled with value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// DeterministicUniform returns n values drawn uniformly from [lo, hi) with a
// fixed seed.
func DeterministicUniform(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}
