package cv

import (
	"testing"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEncodeResponse(t *testing.T) {
	t.Run("single column uses sorted classes", func(t *testing.T) {
		y, err := encodeResponse(mat.NewDense(4, 1, []float64{5, 2, 2, 5}))
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 1, 0, 1, 0, 0, 1}, y.RawMatrix().Data)
	})

	t.Run("two columns are copied", func(t *testing.T) {
		src := mat.NewDense(2, 2, []float64{3, 1, 0, 2})
		y, err := encodeResponse(src)
		require.NoError(t, err)
		assert.True(t, mat.Equal(src, y))
		y.Set(0, 0, 9)
		assert.Equal(t, 3.0, src.At(0, 0))

		yn := normalizeRows(y)
		assert.InDelta(t, 0.9, yn.At(0, 0), 1e-12)
		assert.InDelta(t, 1.0, yn.At(1, 1), 1e-12)
	})

	tests := []struct {
		name string
		y    mat.Matrix
	}{
		{"one class", mat.NewDense(3, 1, []float64{1, 1, 1})},
		{"three classes", mat.NewDense(3, 1, []float64{0, 1, 2})},
		{"three columns", mat.NewDense(2, 3, nil)},
		{"zero row", mat.NewDense(2, 2, []float64{1, 0, 0, 0})},
		{"negative entry", mat.NewDense(2, 2, []float64{1, 0, -1, 2})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encodeResponse(tt.y)
			assert.Error(t, err)
		})
	}

	_, err := encodeResponse(mat.NewDense(2, 3, nil))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestSubset(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	sub := subsetRows(m, []int{2, 0})
	assert.Equal(t, []float64{5, 6, 1, 2}, sub.RawMatrix().Data)

	assert.Equal(t, []float64{30, 10}, subsetVec([]float64{10, 20, 30}, []int{2, 0}))
	assert.Nil(t, subsetVec(nil, []int{0}))
}
