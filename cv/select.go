package cv

import (
	"math"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
)

// Selection is the regularization strength chosen from a CV curve.
type Selection struct {
	LambdaMin float64 // largest lambda at the best mean score
	Lambda1SE float64 // largest lambda within one standard error of the best
	IndexMin  int
	Index1SE  int
}

// SelectLambda picks LambdaMin and Lambda1SE from a CV curve. Scores are
// minimized unless maximize is set (auc, rsquared). NaN points are skipped;
// a NaN standard error at the best point makes Lambda1SE equal LambdaMin.
func SelectLambda(lambda, cvm, cvsd []float64, maximize bool) (Selection, error) {
	if len(cvm) != len(lambda) {
		return Selection{}, errors.NewDimensionError("SelectLambda", len(lambda), len(cvm), 0)
	}
	if len(cvsd) != len(lambda) {
		return Selection{}, errors.NewDimensionError("SelectLambda", len(lambda), len(cvsd), 0)
	}

	sign := 1.0
	if maximize {
		sign = -1
	}

	best := math.Inf(1)
	for _, v := range cvm {
		if !math.IsNaN(v) && sign*v < best {
			best = sign * v
		}
	}
	if math.IsInf(best, 1) {
		return Selection{}, errors.NewValueError("SelectLambda", "no path point has a finite score")
	}

	iMin := largestLambdaWithin(lambda, cvm, sign, best)
	sel := Selection{LambdaMin: lambda[iMin], IndexMin: iMin, Lambda1SE: lambda[iMin], Index1SE: iMin}

	bound := sign*cvm[iMin] + cvsd[iMin]
	if !math.IsNaN(bound) {
		i1se := largestLambdaWithin(lambda, cvm, sign, bound)
		sel.Lambda1SE, sel.Index1SE = lambda[i1se], i1se
	}
	return sel, nil
}

func largestLambdaWithin(lambda, cvm []float64, sign, bound float64) int {
	idx := -1
	for j, v := range cvm {
		if math.IsNaN(v) || sign*v > bound {
			continue
		}
		if idx < 0 || lambda[j] > lambda[idx] {
			idx = j
		}
	}
	return idx
}
