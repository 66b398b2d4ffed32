package cv

import (
	"github.com/YuminosukeSato/glmnetcv/pkg/log"
)

// Evaluator holds cross-validation configuration. It keeps no state
// between calls and is safe for concurrent use once built.
type Evaluator struct {
	measure  Measure
	grouped  bool
	keep     bool
	nJobs    int
	nFolds   int
	foldID   []int
	seed     uint64
	seeded   bool
	logger   log.Logger
	warnings []error // configuration warnings reported on every call
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// NewEvaluator creates an Evaluator with the given options.
// Defaults: deviance, grouped, no prediction matrix, sequential folds, 10 folds.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		measure: DefaultMeasure,
		grouped: true,
		nJobs:   1,
		nFolds:  10,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.GetLoggerWithName("cv")
	}
	return e
}

// WithMeasure sets the loss measure. An invalid value falls back to
// deviance with a warning at evaluation time.
func WithMeasure(m Measure) Option {
	return func(e *Evaluator) {
		e.measure = m
	}
}

// WithMeasureName sets the loss measure by name (see ParseMeasure).
func WithMeasureName(name string) Option {
	return func(e *Evaluator) {
		m, warn := ParseMeasure(name)
		e.measure = m
		if warn != nil {
			e.warnings = append(e.warnings, warn)
		}
	}
}

// WithGrouped sets grouped mode. Only grouped=true is supported.
func WithGrouped(grouped bool) Option {
	return func(e *Evaluator) {
		e.grouped = grouped
	}
}

// WithKeep keeps the held-out prediction matrix in Result.FitPreval.
func WithKeep(keep bool) Option {
	return func(e *Evaluator) {
		e.keep = keep
	}
}

// WithNJobs sets how many folds are processed concurrently.
// 1 is sequential, values < 1 use all CPU cores.
func WithNJobs(nJobs int) Option {
	return func(e *Evaluator) {
		e.nJobs = nJobs
	}
}

// WithNFolds sets the number of folds CrossValidate assigns at random.
func WithNFolds(k int) Option {
	return func(e *Evaluator) {
		e.nFolds = k
	}
}

// WithFoldID makes CrossValidate use a fixed fold assignment.
func WithFoldID(foldID []int) Option {
	return func(e *Evaluator) {
		e.foldID = foldID
	}
}

// WithRandomState seeds the fold assignment of CrossValidate.
func WithRandomState(seed uint64) Option {
	return func(e *Evaluator) {
		e.seed = seed
		e.seeded = true
	}
}

// WithLogger sets the logger. The default is log.GetLoggerWithName("cv").
func WithLogger(logger log.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}
