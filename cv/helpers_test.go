package cv

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/glmnetcv/core/model"
)

// columnPath predicts the first input column as the class-1 probability.
// With scale set, point j shrinks it towards 0.5 by scale[j].
type columnPath struct {
	lambda []float64
	scale  []float64
	err    error
	panics bool
}

func (c *columnPath) Lambda() []float64 { return c.lambda }

func (c *columnPath) Predict(X mat.Matrix, _ model.PredictOptions) (*mat.Dense, error) {
	if c.panics {
		panic("predictor crashed")
	}
	if c.err != nil {
		return nil, c.err
	}
	r, _ := X.Dims()
	out := mat.NewDense(r, len(c.lambda), nil)
	for i := 0; i < r; i++ {
		for j := range c.lambda {
			p := X.At(i, 0)
			if c.scale != nil {
				p = 0.5 + c.scale[j]*(p-0.5)
			}
			out.Set(i, j, p)
		}
	}
	return out, nil
}

var testLambda = []float64{0.3, 0.2, 0.1}

// separableData returns n rows with alternating 0/1 labels, X equal to the
// label and fold assignment i mod nfolds.
func separableData(n, nfolds int) (X, Y *mat.Dense, foldID []int) {
	X = mat.NewDense(n, 1, nil)
	Y = mat.NewDense(n, 1, nil)
	foldID = make([]int, n)
	for i := 0; i < n; i++ {
		y := float64(i % 2)
		X.Set(i, 0, y)
		Y.Set(i, 0, y)
		foldID[i] = i % nfolds
	}
	return X, Y, foldID
}

func perfectFits(nfolds int) []model.PathModel {
	fits := make([]model.PathModel, nfolds)
	for i := range fits {
		fits[i] = &columnPath{lambda: testLambda}
	}
	return fits
}

func shrinkingFits(nfolds int) []model.PathModel {
	fits := make([]model.PathModel, nfolds)
	for i := range fits {
		fits[i] = &columnPath{lambda: testLambda, scale: []float64{0.2, 0.6, 0.9}}
	}
	return fits
}

// oneHot expands a 0/1 label column into two-column rows.
func oneHot(m *mat.Dense) *mat.Dense {
	r, _ := m.Dims()
	out := mat.NewDense(r, 2, nil)
	for i := 0; i < r; i++ {
		out.Set(i, int(m.At(i, 0)), 1)
	}
	return out
}
