package wincorr

import "log/slog"

type options struct {
	workers int
	solver  Solver
	realTol float64
	logger  *slog.Logger
}

// Option configures a correction run.
type Option func(*options)

func defaultOptions() options {
	return options{
		workers: 1,
		solver:  CompanionSolver,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers spreads samples over n goroutines. Values below 2 run
// sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithSolver replaces the root solver.
func WithSolver(s Solver) Option {
	return func(o *options) {
		if s != nil {
			o.solver = s
		}
	}
}

// WithRealTolerance accepts roots whose imaginary part magnitude is at most
// tol as real. The default of 0 requires an exactly zero imaginary part.
func WithRealTolerance(tol float64) Option {
	return func(o *options) {
		if tol >= 0 {
			o.realTol = tol
		}
	}
}

// WithLogger reports run summaries at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
