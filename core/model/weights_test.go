package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPathWeightsRoundTrip(t *testing.T) {
	p := newTestPath(t, WithClassLabels(-1, 1))

	data, err := p.ExportWeights().ToJSON()
	require.NoError(t, err)

	var pw PathWeights
	require.NoError(t, pw.FromJSON(data))
	assert.Equal(t, [][]float64{{0, 0}, {0.5, -0.5}, {1, -1}}, pw.Beta)

	loaded, err := NewLogisticPathFromWeights(&pw)
	require.NoError(t, err)
	assert.True(t, mat.Equal(p.Coef, loaded.Coef))
	assert.Equal(t, p.Intercepts, loaded.Intercepts)
	assert.Equal(t, p.Lambdas, loaded.Lambdas)
	assert.Equal(t, [2]float64{-1, 1}, loaded.Labels)
}

func TestPathWeightsFromSolverJSON(t *testing.T) {
	data := []byte(`{
  "model_type": "LogisticPath",
  "version": "1",
  "lambda": [0.2, 0.1],
  "a0": [0.0, -0.5],
  "beta": [[0.0], [1.0]],
  "metadata": {"alpha": 1.0}
}`)
	var pw PathWeights
	require.NoError(t, pw.FromJSON(data))
	p, err := NewLogisticPathFromWeights(&pw)
	require.NoError(t, err)

	eta, err := p.Predict(mat.NewDense(1, 1, []float64{2}), PredictOptions{Type: Link})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, eta.At(0, 0), 1e-12)
	assert.InDelta(t, 1.5, eta.At(0, 1), 1e-12)
}

func TestPathWeightsValidate(t *testing.T) {
	valid := func() *PathWeights {
		return &PathWeights{
			ModelType:  "LogisticPath",
			Version:    PathWeightsVersion,
			Lambda:     []float64{0.2, 0.1},
			Intercepts: []float64{0, 0},
			Beta:       [][]float64{{1, 2}, {3, 4}},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*PathWeights)
	}{
		{"model type", func(pw *PathWeights) { pw.ModelType = "LinearRegression" }},
		{"version", func(pw *PathWeights) { pw.Version = "0" }},
		{"beta count", func(pw *PathWeights) { pw.Beta = pw.Beta[:1] }},
		{"ragged beta", func(pw *PathWeights) { pw.Beta[1] = []float64{1} }},
		{"empty beta", func(pw *PathWeights) { pw.Beta = [][]float64{{}, {}} }},
		{"intercepts", func(pw *PathWeights) { pw.Intercepts = []float64{0} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw := valid()
			tt.mutate(pw)
			_, err := NewLogisticPathFromWeights(pw)
			assert.Error(t, err)
		})
	}

	var pw PathWeights
	assert.Error(t, pw.FromJSON([]byte("{")))
}

func TestPathWeightsClone(t *testing.T) {
	pw := newTestPath(t).ExportWeights()
	pw.Metadata = map[string]interface{}{"alpha": 1.0}
	clone := pw.Clone()
	clone.Beta[0][0] = 42
	clone.Metadata["alpha"] = 0.5
	clone.Lambda[0] = 9
	assert.Equal(t, 0.0, pw.Beta[0][0])
	assert.Equal(t, 1.0, pw.Metadata["alpha"])
	assert.Equal(t, 0.3, pw.Lambda[0])
}
