package transmission

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

var (
	// ErrTooFewPoints is returned when a table has fewer than two points.
	ErrTooFewPoints = errors.New("transmission: table needs at least 2 points")
	// ErrNotIncreasing is returned when table wavelengths are not strictly increasing.
	ErrNotIncreasing = errors.New("transmission: wavelengths must be strictly increasing")
	// ErrLengthMismatch is returned when wavelength and value slices differ in length.
	ErrLengthMismatch = errors.New("transmission: wavelength and value lengths differ")
)

// Table is an immutable transmission calibration table.
type Table struct {
	wavelengths []float64
	values      []float64
	fit         interp.PiecewiseLinear
}

// New builds a table from paired wavelengths and transmission values.
// The slices are copied. Wavelengths must be strictly increasing, so a
// repeated wavelength is rejected with ErrNotIncreasing.
func New(wavelengths, values []float64) (*Table, error) {
	if len(wavelengths) != len(values) {
		return nil, fmt.Errorf("%w: %d wavelengths, %d values", ErrLengthMismatch, len(wavelengths), len(values))
	}

	if len(wavelengths) < 2 {
		return nil, ErrTooFewPoints
	}

	for i := 1; i < len(wavelengths); i++ {
		if !(wavelengths[i] > wavelengths[i-1]) {
			return nil, fmt.Errorf("%w: index %d (%g after %g)", ErrNotIncreasing, i, wavelengths[i], wavelengths[i-1])
		}
	}

	t := &Table{
		wavelengths: append([]float64(nil), wavelengths...),
		values:      append([]float64(nil), values...),
	}

	if err := t.fit.Fit(t.wavelengths, t.values); err != nil {
		return nil, fmt.Errorf("transmission: fit table: %w", err)
	}

	return t, nil
}

// Constant returns a flat two-point table with transmission t over [lo, hi].
func Constant(lo, hi, t float64) (*Table, error) {
	return New([]float64{lo, hi}, []float64{t, t})
}

// At returns the transmission at wavelength. Queries below [Table.Min] or
// above [Table.Max] return the boundary value. A NaN query returns NaN.
func (t *Table) At(wavelength float64) float64 {
	if math.IsNaN(wavelength) {
		return math.NaN()
	}

	return t.fit.Predict(wavelength)
}

// Len returns the number of table points.
func (t *Table) Len() int { return len(t.wavelengths) }

// Min returns the smallest table wavelength.
func (t *Table) Min() float64 { return t.wavelengths[0] }

// Max returns the largest table wavelength.
func (t *Table) Max() float64 { return t.wavelengths[len(t.wavelengths)-1] }

// Wavelengths returns a copy of the table wavelengths.
func (t *Table) Wavelengths() []float64 { return append([]float64(nil), t.wavelengths...) }

// Values returns a copy of the table transmission values.
func (t *Table) Values() []float64 { return append([]float64(nil), t.values...) }

// Covers reports whether every wavelength lies inside [Min, Max].
// An empty slice is covered.
func (t *Table) Covers(wavelengths []float64) bool {
	if len(wavelengths) == 0 {
		return true
	}

	return floats.Min(wavelengths) >= t.Min() && floats.Max(wavelengths) <= t.Max()
}
