package cv

import (
	"fmt"
	"math"
	"time"

	"github.com/YuminosukeSato/glmnetcv/core/model"
	"github.com/YuminosukeSato/glmnetcv/core/parallel"
	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"github.com/YuminosukeSato/glmnetcv/pkg/log"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	minPerFold    = 3
	minPerFoldAUC = 10
)

type pass int

const (
	trainingPass pass = iota
	validationPass
)

func (p pass) String() string {
	if p == trainingPass {
		return log.PhaseTraining
	}
	return log.PhaseValidation
}

// evalInput is the validated, read-only input of one evaluation.
type evalInput struct {
	fits    []model.PathModel
	nlam    []int
	lambda  []float64
	x       mat.Matrix
	y       *mat.Dense
	weights []float64
	offset  []float64
	foldID  []int
	folds   [][]int // held-out rows per fold
	n       int
}

func (in *evalInput) nFolds() int { return len(in.folds) }

func (in *evalInput) perFold() float64 { return float64(in.n) / float64(in.nFolds()) }

// rows returns the rows fold i predicts in the given pass.
func (in *evalInput) rows(i int, p pass) []int {
	if p == validationPass {
		return in.folds[i]
	}
	rows := make([]int, 0, in.n-len(in.folds[i]))
	for r, f := range in.foldID {
		if f != i {
			rows = append(rows, r)
		}
	}
	return rows
}

// foldScores are the raw per-path-point scores of one fold in one pass.
type foldScores struct {
	weight float64
	raw    map[Measure][]float64
}

// Evaluate is a convenience wrapper around NewEvaluator(opts...).Evaluate.
func Evaluate(fits []model.PathModel, lambda []float64, X, Y mat.Matrix, weights, offset []float64, foldID []int, opts ...Option) (*Result, error) {
	return NewEvaluator(opts...).Evaluate(fits, lambda, X, Y, weights, offset, foldID)
}

// Evaluate scores the fold models fits[i] (fitted without fold i) on their
// training and held-out rows and reduces the scores over folds.
//
// Y is N×1 with two distinct values or N×2 with non-negative rows.
// weights defaults to all ones and offset may be nil. foldID assigns every
// row to a fold in [0, nfolds) where nfolds = len(fits).
func (e *Evaluator) Evaluate(fits []model.PathModel, lambda []float64, X, Y mat.Matrix, weights, offset []float64, foldID []int) (*Result, error) {
	start := time.Now()
	logger := e.logger.With(
		log.EstimatorIDKey, uuid.NewString(),
		log.OperationKey, log.OperationEvaluate,
	)

	in, err := newEvalInput(fits, lambda, X, Y, weights, offset, foldID)
	if err != nil {
		return nil, err
	}

	measure, grouped, warnings := e.adjust(in)
	for _, w := range warnings {
		logger.Warn("Cross-validation setting adjusted", "warning", w)
	}
	if !grouped {
		return nil, errors.NewValidationError("grouped",
			"per-fold recomputation supports grouped cross-validation only", false)
	}
	if in.perFold() < minPerFold {
		return nil, errors.NewValidationError("foldid",
			fmt.Sprintf("at least %d observations per fold are required", minPerFold), in.perFold())
	}

	measures := scoredMeasures(measure)
	logger.Debug("Evaluation started",
		log.SamplesKey, in.n,
		log.FeaturesKey, featureCount(X),
		log.FoldsKey, in.nFolds(),
		log.PathLengthKey, len(lambda),
		log.MeasureKey, measure.String(),
		log.NJobsKey, e.nJobs,
	)

	var preval *mat.Dense
	if e.keep {
		preval = mat.NewDense(in.n, len(lambda), nil)
		preval.Apply(func(_, _ int, _ float64) float64 { return math.NaN() }, preval)
	}

	trn, err := e.runPass(in, trainingPass, measures, nil)
	if err != nil {
		return nil, err
	}
	val, err := e.runPass(in, validationPass, measures, preval)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Name:      measure.Label(),
		Measure:   measure,
		Lambda:    append([]float64(nil), lambda...),
		Curves:    make(map[Measure]*Curves, len(measures)),
		FitPreval: preval,
		Warnings:  warnings,
		IndexMin:  -1,
		Index1SE:  -1,
		LambdaMin: math.NaN(),
		Lambda1SE: math.NaN(),
	}
	for _, m := range measures {
		c := &Curves{}
		c.Training.Mean, c.Training.SD = reducePass(trn, m, len(lambda))
		c.Validation.Mean, c.Validation.SD = reducePass(val, m, len(lambda))
		res.Curves[m] = c
	}
	primary := res.Curves[measure]
	res.CVM, res.CVSD = primary.Validation.Mean, primary.Validation.SD
	res.TrnCVM, res.TrnCVSD = primary.Training.Mean, primary.Training.SD

	if sel, err := SelectLambda(lambda, res.CVM, res.CVSD, measure.Maximize()); err == nil {
		res.LambdaMin, res.Lambda1SE = sel.LambdaMin, sel.Lambda1SE
		res.IndexMin, res.Index1SE = sel.IndexMin, sel.Index1SE
	} else {
		logger.Debug("No lambda selected", "error", err)
	}

	logger.Info("Evaluation finished",
		log.MeasureKey, measure.String(),
		log.LambdaMinKey, res.LambdaMin,
		log.Lambda1SEKey, res.Lambda1SE,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return res, nil
}

// adjust applies the configuration fallbacks and returns the warnings they raise.
func (e *Evaluator) adjust(in *evalInput) (Measure, bool, []error) {
	warnings := append([]error(nil), e.warnings...)
	measure, grouped := e.measure, e.grouped

	if !measure.Valid() {
		warnings = append(warnings, errors.NewUnsupportedMeasureWarning(
			measure.String(), SupportedMeasures(), DefaultMeasure.String()))
		measure = DefaultMeasure
	}
	if measure == AUC && in.perFold() < minPerFoldAUC {
		warnings = append(warnings, errors.NewMeasureFallbackWarning(
			AUC.String(), DefaultMeasure.String(), in.perFold(), minPerFoldAUC))
		measure = DefaultMeasure
	}
	if in.perFold() < minPerFold && grouped {
		warnings = append(warnings, errors.NewGroupedDisabledWarning(in.perFold()))
		grouped = false
	}
	return measure, grouped, warnings
}

// runPass predicts every fold once and scores all measures on the predictions.
// In the validation pass the predictions are also written into preval when set.
func (e *Evaluator) runPass(in *evalInput, p pass, measures []Measure, preval *mat.Dense) ([]foldScores, error) {
	scores := make([]foldScores, in.nFolds())
	err := parallel.ForEach(in.nFolds(), e.nJobs, func(i int) error {
		rows := in.rows(i, p)
		w := subsetVec(in.weights, rows)
		total := floats.Sum(w)
		if !(total > 0) {
			return errors.NewValidationError("weights",
				fmt.Sprintf("fold %d has no positive weight in the %s pass", i, p), total)
		}

		preds, err := predictFold(in.fits[i], subsetRows(in.x, rows), subsetVec(in.offset, rows))
		if err != nil {
			return errors.NewModelError("Evaluate", fmt.Sprintf("%s pass: prediction failed for fold %d", p, i), err)
		}
		if r, c := preds.Dims(); r != len(rows) {
			return errors.NewDimensionError("Evaluate", len(rows), r, 0)
		} else if c != in.nlam[i] {
			return errors.NewDimensionError("Evaluate", in.nlam[i], c, 1)
		}

		y := subsetRows(in.y, rows)
		yn := normalizeRows(y)
		raw := make(map[Measure][]float64, len(measures))
		for _, m := range measures {
			s, err := scoreFold(m, y, yn, preds, w)
			if err != nil {
				return errors.Wrapf(err, "%s pass: fold %d: measure %s", p, i, m)
			}
			raw[m] = s
		}
		scores[i] = foldScores{weight: total, raw: raw}

		// Folds own disjoint rows, so no lock is needed.
		if preval != nil {
			for k, r := range rows {
				for j := 0; j < in.nlam[i]; j++ {
					preval.Set(r, j, preds.At(k, j))
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func predictFold(fit model.PathModel, x mat.Matrix, offset []float64) (*mat.Dense, error) {
	var preds *mat.Dense
	err := errors.SafeExecute("PathModel.Predict", func() error {
		var err error
		preds, err = fit.Predict(x, model.PredictOptions{Type: model.Response, Offset: offset})
		return err
	})
	return preds, err
}

func reducePass(scores []foldScores, m Measure, nLambda int) (cvm, cvsd []float64) {
	raw := make([][]float64, len(scores))
	weights := make([]float64, len(scores))
	for i, s := range scores {
		raw[i] = s.raw[m]
		weights[i] = s.weight
	}
	return reduceFolds(raw, weights, nLambda)
}

func featureCount(X mat.Matrix) int {
	_, c := X.Dims()
	return c
}

func newEvalInput(fits []model.PathModel, lambda []float64, X, Y mat.Matrix, weights, offset []float64, foldID []int) (*evalInput, error) {
	if X == nil || Y == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "Evaluate")
	}
	n, _ := X.Dims()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Evaluate")
	}
	if ny, _ := Y.Dims(); ny != n {
		return nil, errors.NewDimensionError("Evaluate", n, ny, 0)
	}
	y, err := encodeResponse(Y)
	if err != nil {
		return nil, err
	}

	if len(lambda) == 0 {
		return nil, errors.NewValidationError("lambda", "path must contain at least one point", 0)
	}
	if err := errors.CheckFinite("Evaluate", lambda); err != nil {
		return nil, err
	}
	for _, l := range lambda {
		if l <= 0 {
			return nil, errors.NewValidationError("lambda", "must be positive", l)
		}
	}

	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != n {
		return nil, errors.NewDimensionError("Evaluate", n, len(weights), 0)
	}
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, errors.NewValidationError("weights", "must be non-negative", w)
		}
	}
	if len(offset) > 0 {
		if len(offset) != n {
			return nil, errors.NewDimensionError("Evaluate", n, len(offset), 0)
		}
		if err := errors.CheckFinite("Evaluate", offset); err != nil {
			return nil, err
		}
	}

	if len(foldID) != n {
		return nil, errors.NewDimensionError("Evaluate", n, len(foldID), 0)
	}
	nFolds := len(fits)
	if nFolds == 0 {
		return nil, errors.NewValidationError("fits", "at least one fold model is required", 0)
	}
	folds := make([][]int, nFolds)
	maxID := -1
	for r, f := range foldID {
		if f < 0 || f >= nFolds {
			return nil, errors.NewValidationError("foldid",
				fmt.Sprintf("row %d: fold index must be in [0, %d)", r, nFolds), f)
		}
		folds[f] = append(folds[f], r)
		maxID = max(maxID, f)
	}
	if maxID+1 != nFolds {
		return nil, errors.NewDimensionError("Evaluate", maxID+1, nFolds, 0)
	}
	for i, rows := range folds {
		if len(rows) == 0 {
			return nil, errors.NewValidationError("foldid", fmt.Sprintf("fold %d has no observations", i), 0)
		}
	}

	nlam := make([]int, nFolds)
	for i, fit := range fits {
		if fit == nil {
			return nil, errors.NewValidationError("fits", fmt.Sprintf("fold %d model is nil", i), nil)
		}
		nlam[i] = len(fit.Lambda())
		if nlam[i] == 0 || nlam[i] > len(lambda) {
			return nil, errors.NewValidationError("fits",
				fmt.Sprintf("fold %d path length must be in [1, %d]", i, len(lambda)), nlam[i])
		}
	}

	return &evalInput{
		fits:    fits,
		nlam:    nlam,
		lambda:  lambda,
		x:       X,
		y:       y,
		weights: weights,
		offset:  offset,
		foldID:  foldID,
		folds:   folds,
		n:       n,
	}, nil
}
