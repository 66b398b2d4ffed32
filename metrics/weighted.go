package metrics

import (
	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// WeightedMean は重み付き平均 Σw·x / Σw を計算する
//
// weights が空の場合は単純平均。重みの合計が正でない場合はエラー。
func WeightedMean(x, weights []float64) (float64, error) {
	// 入力検証
	n := len(x)
	if n == 0 {
		return 0, errors.NewValueError("WeightedMean", "empty vector")
	}
	if len(weights) == 0 {
		return stat.Mean(x, nil), nil
	}
	if len(weights) != n {
		return 0, errors.NewDimensionError("WeightedMean", n, len(weights), 0)
	}
	if floats.Sum(weights) <= 0 {
		return 0, errors.NewValueError("WeightedMean", "weights must have a positive sum")
	}
	return stat.Mean(x, weights), nil
}

// WeightedColMeans は行列の列ごとの重み付き平均を計算する（重みは行に対応）
func WeightedColMeans(m mat.Matrix, weights []float64) ([]float64, error) {
	r, c := m.Dims()
	if len(weights) > 0 && len(weights) != r {
		return nil, errors.NewDimensionError("WeightedColMeans", r, len(weights), 0)
	}

	means := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		mean, err := WeightedMean(col, weights)
		if err != nil {
			return nil, err
		}
		means[j] = mean
	}
	return means, nil
}
