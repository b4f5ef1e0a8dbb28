package wincorr

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-spectro/optics/transmission"
)

// Spectrum is a measured reflectance spectrum. The three slices are indexed
// 1:1 by sample and must have equal length. No ordering is required.
type Spectrum struct {
	Wavelength  []float64
	Reflectance []float64
	Uncertainty []float64
}

// Len returns the number of samples.
func (s Spectrum) Len() int { return len(s.Wavelength) }

func (s Spectrum) validate() error {
	n := len(s.Wavelength)
	if len(s.Reflectance) != n || len(s.Uncertainty) != n {
		return fmt.Errorf("%w: wavelength=%d reflectance=%d uncertainty=%d",
			ErrLengthMismatch, n, len(s.Reflectance), len(s.Uncertainty))
	}
	return nil
}

// Result holds the corrected reflectance and uncertainty, one entry per
// input sample.
type Result struct {
	Reflectance []float64
	Uncertainty []float64
}

// Correct runs the window correction over every sample of spec.
// See [CorrectContext].
func Correct(spec Spectrum, table *transmission.Table, cfg Config, opts ...Option) (Result, error) {
	return CorrectContext(context.Background(), spec, table, cfg, opts...)
}

// CorrectContext runs the window correction over every sample of spec. For
// each sample it interpolates the transmission, builds the reflection
// polynomial, selects its real root, applies the mode transform and rescales
// the uncertainty.
//
// Any failure, including cancellation of ctx, aborts the batch: the error is
// an [*Error] naming the stage and the result is empty. NaN and Inf values
// from degenerate samples are not failures.
func CorrectContext(ctx context.Context, spec Spectrum, table *transmission.Table, cfg Config, opts ...Option) (Result, error) {
	if err := spec.validate(); err != nil {
		return Result{}, stageError(StageInput, -1, err)
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, stageError(StageInput, -1, err)
	}
	if table == nil {
		return Result{}, stageError(StageInput, -1, ErrNilTable)
	}

	o := applyOptions(opts)
	n := spec.Len()

	corrected := make([]float64, n)
	if err := o.run(ctx, spec, table, cfg, corrected); err != nil {
		return Result{}, err
	}

	sigma := make([]float64, n)
	if err := propagate(sigma, corrected, spec.Uncertainty, spec.Reflectance); err != nil {
		return Result{}, err
	}

	o.logger.Debug("window correction finished",
		"samples", n,
		"no_root", countNaN(corrected),
		"windows", cfg.WindowCount,
		"mode", cfg.Mode.String(),
		"workers", o.workers,
	)

	return Result{Reflectance: corrected, Uncertainty: sigma}, nil
}

// CorrectArrays is the slice-level entry point: it builds the transmission
// table from tWavelengths/tValues and returns the corrected reflectance and
// uncertainty, each as long as reflectances.
func CorrectArrays(wavelengths, reflectances, uncertainties, tWavelengths, tValues []float64,
	windowCount int, mode Mode,
) ([]float64, []float64, error) {
	table, err := transmission.New(tWavelengths, tValues)
	if err != nil {
		return nil, nil, stageError(StageInterpolation, -1, err)
	}

	res, err := Correct(Spectrum{
		Wavelength:  wavelengths,
		Reflectance: reflectances,
		Uncertainty: uncertainties,
	}, table, Config{WindowCount: windowCount, Mode: mode})
	if err != nil {
		return nil, nil, err
	}

	return res.Reflectance, res.Uncertainty, nil
}

// CorrectSample returns the corrected reflectance of a single measurement
// r0 taken at wavelength.
func CorrectSample(wavelength, r0 float64, table *transmission.Table, cfg Config, opts ...Option) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, stageError(StageInput, -1, err)
	}
	if table == nil {
		return 0, stageError(StageInput, -1, ErrNilTable)
	}

	o := applyOptions(opts)
	return o.sample(0, wavelength, r0, table, cfg)
}

func (o *options) sample(index int, wavelength, r0 float64, table *transmission.Table, cfg Config) (x float64, err error) {
	stage := StageInterpolation
	defer func() {
		if r := recover(); r != nil {
			x = 0
			err = stageError(stage, index, fmt.Errorf("panic: %v", r))
		}
	}()

	t := table.At(wavelength)

	stage = StagePolynomial
	coeff := Polynomial(r0, t, cfg.WindowCount)

	stage = StageRoots
	roots, err := o.solver.Roots(coeff)
	if err != nil {
		return 0, stageError(stage, index, err)
	}
	root := SelectRealRoot(roots, o.realTol)

	stage = StageTransform
	x, err = Transform(root, cfg.Mode)
	if err != nil {
		return 0, stageError(stage, index, err)
	}

	return x, nil
}

func (o *options) run(ctx context.Context, spec Spectrum, table *transmission.Table, cfg Config, dst []float64) error {
	n := len(dst)
	workers := min(o.workers, n)
	if workers < 2 {
		return o.span(ctx, spec, table, cfg, dst, 0, n)
	}

	chunk := (n + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[w] = o.span(ctx, spec, table, cfg, dst, lo, hi)
		}()
	}
	wg.Wait()

	// Chunks are ordered, so the first failing chunk holds the lowest index.
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func (o *options) span(ctx context.Context, spec Spectrum, table *transmission.Table, cfg Config, dst []float64, lo, hi int) error {
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return stageError(StageCanceled, i, err)
		}

		x, err := o.sample(i, spec.Wavelength[i], spec.Reflectance[i], table, cfg)
		if err != nil {
			return err
		}
		dst[i] = x
	}

	return nil
}

func propagate(dst, corrected, sigma, measured []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = stageError(StageUncertainty, -1, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := PropagateUncertainty(dst, corrected, sigma, measured); err != nil {
		return stageError(StageUncertainty, -1, err)
	}

	return nil
}

func countNaN(x []float64) int {
	n := 0
	for _, v := range x {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}
