package cv

import (
	"fmt"
	"sort"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// encodeResponse returns the N×2 label matrix. A single column is one-hot
// encoded against its sorted distinct values, which must number exactly two.
func encodeResponse(Y mat.Matrix) (*mat.Dense, error) {
	n, c := Y.Dims()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "response")
	}

	var out *mat.Dense
	switch c {
	case 1:
		classes := distinct(mat.Col(nil, 0, Y))
		if len(classes) != 2 {
			return nil, errors.NewValidationError("y",
				"binomial response needs exactly two classes", fmt.Sprintf("%d classes", len(classes)))
		}
		out = mat.NewDense(n, 2, nil)
		for i := 0; i < n; i++ {
			if Y.At(i, 0) == classes[1] {
				out.Set(i, 1, 1)
			} else {
				out.Set(i, 0, 1)
			}
		}
	case 2:
		out = mat.DenseCopyOf(Y)
	default:
		return nil, errors.NewDimensionError("encodeResponse", 2, c, 1)
	}

	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		if row[0] < 0 || row[1] < 0 || !(floats.Sum(row) > 0) {
			return nil, errors.NewValidationError("y",
				fmt.Sprintf("row %d must be non-negative with a positive sum", i), row)
		}
	}
	return out, nil
}

// normalizeRows scales each label row to sum to one.
func normalizeRows(y *mat.Dense) *mat.Dense {
	r, c := y.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		copy(row, y.RawRowView(i))
		floats.Scale(1/floats.Sum(row), row)
	}
	return out
}

func distinct(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	var out []float64
	for _, v := range sorted {
		if len(out) == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// subsetRows copies the given rows of m into a new matrix.
func subsetRows(m mat.Matrix, rows []int) *mat.Dense {
	_, c := m.Dims()
	out := mat.NewDense(len(rows), c, nil)
	for k, i := range rows {
		mat.Row(out.RawRowView(k), i, m)
	}
	return out
}

// subsetVec returns v at the given rows, or nil for an empty v.
func subsetVec(v []float64, rows []int) []float64 {
	if len(v) == 0 {
		return nil
	}
	out := make([]float64, len(rows))
	for k, i := range rows {
		out[k] = v[i]
	}
	return out
}
