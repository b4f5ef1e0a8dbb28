package wincorr

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when spectrum slices differ in length.
	ErrLengthMismatch = errors.New("wincorr: spectrum lengths differ")
	// ErrWindowCount is returned for a window count below 1.
	ErrWindowCount = errors.New("wincorr: window count must be >= 1")
	// ErrUnknownMode is returned for a mode outside the defined set.
	ErrUnknownMode = errors.New("wincorr: unknown correction mode")
	// ErrNilTable is returned when no transmission table is supplied.
	ErrNilTable = errors.New("wincorr: nil transmission table")
)

// Stage identifies the step of the correction pipeline that failed.
type Stage int

const (
	// StageInput covers spectrum, config and table validation.
	StageInput Stage = iota
	// StageInterpolation looks up the transmission at a sample wavelength.
	StageInterpolation
	// StagePolynomial builds the reflection polynomial.
	StagePolynomial
	// StageRoots solves the polynomial and selects the real root.
	StageRoots
	// StageTransform applies the correction mode.
	StageTransform
	// StageUncertainty rescales the measurement uncertainty.
	StageUncertainty
	// StageCanceled reports a context cancellation between samples.
	StageCanceled
)

func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageInterpolation:
		return "interpolation"
	case StagePolynomial:
		return "polynomial"
	case StageRoots:
		return "roots"
	case StageTransform:
		return "transform"
	case StageUncertainty:
		return "uncertainty"
	case StageCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Error is the single error type returned by the batch operations. Index is
// the failing sample, or -1 when the failure is not tied to one sample.
type Error struct {
	Stage Stage
	Index int
	Err   error
}

func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("wincorr: %s stage failed at sample %d: %v", e.Stage, e.Index, e.Err)
	}
	return fmt.Sprintf("wincorr: %s stage failed: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func stageError(stage Stage, index int, err error) *Error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	return &Error{Stage: stage, Index: index, Err: err}
}
