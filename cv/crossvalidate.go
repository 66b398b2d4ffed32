package cv

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/YuminosukeSato/glmnetcv/core/model"
	"github.com/YuminosukeSato/glmnetcv/core/parallel"
	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"github.com/YuminosukeSato/glmnetcv/pkg/log"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

// CVFit is the outcome of CrossValidate.
type CVFit struct {
	Full   model.PathModel   // fitted on all rows; defines the lambda path
	Fits   []model.PathModel // Fits[i] was fitted without fold i
	FoldID []int
	Result *Result
}

// CrossValidate is a convenience wrapper around NewEvaluator(opts...).CrossValidate.
func CrossValidate(fitter model.PathFitter, X, Y mat.Matrix, weights, offset []float64, opts ...Option) (*CVFit, error) {
	return NewEvaluator(opts...).CrossValidate(fitter, X, Y, weights, offset)
}

// CrossValidate fits the full path, refits it once per fold on the rows
// outside that fold, and evaluates the fold models.
func (e *Evaluator) CrossValidate(fitter model.PathFitter, X, Y mat.Matrix, weights, offset []float64) (*CVFit, error) {
	if X == nil || Y == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "CrossValidate")
	}
	start := time.Now()
	logger := e.logger.With(
		log.EstimatorIDKey, uuid.NewString(),
		log.OperationKey, log.OperationCrossValidate,
	)
	n, _ := X.Dims()

	foldID := e.foldID
	if foldID == nil {
		var rng *rand.Rand
		if e.seeded {
			rng = rand.New(rand.NewPCG(e.seed, e.seed))
		}
		var err error
		if foldID, err = RandomFoldID(n, e.nFolds, rng); err != nil {
			return nil, err
		}
	} else if len(foldID) != n {
		return nil, errors.NewDimensionError("CrossValidate", n, len(foldID), 0)
	}
	nFolds := 0
	for _, f := range foldID {
		if f < 0 {
			return nil, errors.NewValidationError("foldid", "fold index must be non-negative", f)
		}
		nFolds = max(nFolds, f+1)
	}

	full, err := fitter.FitPath(X, Y, weights, offset, nil)
	if err != nil {
		return nil, errors.NewModelError("CrossValidate", "full path fit failed", err)
	}
	lambda := full.Lambda()
	logger.Debug("Full path fitted",
		log.SamplesKey, n,
		log.FoldsKey, nFolds,
		log.PathLengthKey, len(lambda),
		log.RandomSeedKey, e.seed,
	)

	fits := make([]model.PathModel, nFolds)
	err = parallel.ForEach(nFolds, e.nJobs, func(i int) error {
		rows := make([]int, 0, n)
		for r, f := range foldID {
			if f != i {
				rows = append(rows, r)
			}
		}
		fit, err := fitter.FitPath(subsetRows(X, rows), subsetRows(Y, rows),
			subsetVec(weights, rows), subsetVec(offset, rows), lambda)
		if err != nil {
			return errors.NewModelError("CrossValidate", fmt.Sprintf("path fit failed for fold %d", i), err)
		}
		fits[i] = fit
		return nil
	})
	if err != nil {
		return nil, err
	}

	res, err := e.Evaluate(fits, lambda, X, Y, weights, offset, foldID)
	if err != nil {
		return nil, err
	}
	logger.Info("Cross-validation finished",
		log.FoldsKey, nFolds,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return &CVFit{Full: full, Fits: fits, FoldID: foldID, Result: res}, nil
}
