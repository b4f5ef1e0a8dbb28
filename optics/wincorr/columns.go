package wincorr

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectro/optics/transmission"
)

// ErrColumn is returned for an unusable reflectance column selection.
var ErrColumn = errors.New("wincorr: invalid reflectance column")

// ReflectanceColumns returns the reflectance column indices of a spectrum
// matrix with cols columns, column 0 being the wavelength. Plain files with
// 2 or 3 columns hold reflectance in column 1. Raw instrument files (raw set,
// 11 to 13 columns) hold it in column 3. Compilations interleave reflectance
// and uncertainty, so every odd column except the last is a reflectance.
func ReflectanceColumns(cols int, raw bool) []int {
	switch {
	case cols < 2:
		return nil
	case cols == 2 || cols == 3:
		return []int{1}
	case raw && cols >= 11 && cols <= 13:
		return []int{3}
	}

	out := make([]int, 0, cols/2)
	for c := 1; c < cols-1; c += 2 {
		out = append(out, c)
	}
	return out
}

// CorrectColumns corrects several reflectance columns of a spectrum matrix
// whose column 0 holds the wavelengths. The column after each reflectance
// column, when present, is taken as its uncertainty and replaced by the
// propagated uncertainty; a reflectance column in last position is corrected
// with zero uncertainty. The input is not modified. Columns are processed
// concurrently; the first failing column, in selection order, is reported
// and no result is returned.
func CorrectColumns(ctx context.Context, data mat.Matrix, columns []int, table *transmission.Table, cfg Config, opts ...Option) (*mat.Dense, error) {
	rows, cols := data.Dims()
	if err := checkColumns(columns, cols); err != nil {
		return nil, stageError(StageInput, -1, err)
	}

	out := mat.DenseCopyOf(data)
	wavelength := mat.Col(nil, 0, data)

	errs := make([]error, len(columns))

	var wg sync.WaitGroup
	for k, c := range columns {
		wg.Add(1)
		go func() {
			defer wg.Done()

			hasSigma := c+1 < cols
			sigma := make([]float64, rows)
			if hasSigma {
				mat.Col(sigma, c+1, data)
			}

			res, err := CorrectContext(ctx, Spectrum{
				Wavelength:  wavelength,
				Reflectance: mat.Col(nil, c, data),
				Uncertainty: sigma,
			}, table, cfg, opts...)
			if err != nil {
				errs[k] = fmt.Errorf("column %d: %w", c, err)
				return
			}

			out.SetCol(c, res.Reflectance)
			if hasSigma {
				out.SetCol(c+1, res.Uncertainty)
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func checkColumns(columns []int, cols int) error {
	used := make(map[int]bool, 2*len(columns))
	for _, c := range columns {
		if c < 1 || c >= cols {
			return fmt.Errorf("%w: %d not in [1, %d)", ErrColumn, c, cols)
		}
		if used[c] {
			return fmt.Errorf("%w: %d overlaps another column's data", ErrColumn, c)
		}
		used[c] = true
	}

	for _, c := range columns {
		if c+1 < cols && used[c+1] {
			return fmt.Errorf("%w: %d is both reflectance and uncertainty of %d", ErrColumn, c+1, c)
		}
	}

	return nil
}
