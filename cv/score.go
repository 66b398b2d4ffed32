package cv

import (
	"math"

	"github.com/YuminosukeSato/glmnetcv/metrics"
	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// scoreFold returns one raw score per path point for a fold's predictions.
// y holds the raw label rows, yn the same rows normalized, preds is rows × nlami.
func scoreFold(m Measure, y, yn, preds *mat.Dense, w []float64) ([]float64, error) {
	switch m {
	case AUC:
		return aucScores(y, preds, w)
	case RSquared:
		return rsquaredScores(yn, preds, w)
	}

	loss, ok := observationLoss[m]
	if !ok {
		return nil, errors.NewValidationError("measure", "no per-observation loss", m.String())
	}
	var lm mat.Dense
	lm.Apply(func(i, _ int, p float64) float64 {
		return loss(yn.At(i, 0), yn.At(i, 1), p)
	}, preds)
	return metrics.WeightedColMeans(&lm, w)
}

// aucScores scores raw (unnormalized) label rows; no clamping is applied.
func aucScores(y, preds *mat.Dense, w []float64) ([]float64, error) {
	r, nlam := preds.Dims()
	out := make([]float64, nlam)
	col := make([]float64, r)
	for j := range out {
		mat.Col(col, j, preds)
		v, err := metrics.AUCMat(y, col, w)
		if err != nil {
			return nil, errors.Wrapf(err, "path point %d", j)
		}
		out[j] = v
	}
	return out, nil
}

// rsquaredScores computes 1 - SSerr/SStot. The label mean in SStot is
// unweighted. A fold without label variance scores NaN.
func rsquaredScores(yn, preds *mat.Dense, w []float64) ([]float64, error) {
	y2 := mat.Col(nil, 1, yn)
	mu := stat.Mean(y2, nil)
	dev := make([]float64, len(y2))
	for i, v := range y2 {
		dev[i] = (v - mu) * (v - mu)
	}
	sstot, err := metrics.WeightedMean(dev, w)
	if err != nil {
		return nil, err
	}

	var resid mat.Dense
	resid.Apply(func(i, _ int, p float64) float64 {
		d := y2[i] - p
		return d * d
	}, preds)
	out, err := metrics.WeightedColMeans(&resid, w)
	if err != nil {
		return nil, err
	}
	for j, sserr := range out {
		if sstot == 0 {
			out[j] = math.NaN()
			continue
		}
		out[j] = 1 - sserr/sstot
	}
	return out, nil
}

// reduceFolds combines per-fold raw scores into the mean and standard-error
// curves. raw[i] covers the first len(raw[i]) path points of fold i.
func reduceFolds(raw [][]float64, foldWeights []float64, nLambda int) (cvm, cvsd []float64) {
	cvm = make([]float64, nLambda)
	cvsd = make([]float64, nLambda)
	vals := make([]float64, 0, len(raw))
	ws := make([]float64, 0, len(raw))
	sq := make([]float64, 0, len(raw))

	for j := 0; j < nLambda; j++ {
		vals, ws, sq = vals[:0], ws[:0], sq[:0]
		for i, scores := range raw {
			if j < len(scores) {
				vals = append(vals, scores[j])
				ws = append(ws, foldWeights[i])
			}
		}
		nEff := len(vals)
		if nEff == 0 {
			cvm[j], cvsd[j] = math.NaN(), math.NaN()
			continue
		}

		cvm[j] = stat.Mean(vals, ws)
		if nEff == 1 {
			cvsd[j] = math.NaN()
			continue
		}
		for _, v := range vals {
			d := v - cvm[j]
			sq = append(sq, d*d)
		}
		cvsd[j] = math.Sqrt(stat.Mean(sq, ws) / float64(nEff-1))
	}
	return cvm, cvsd
}
