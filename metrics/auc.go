package metrics

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AUC はROC曲線下面積（Area Under the ROC Curve）を計算する
//
// labels は0/1のラベル、scores は連続値のスコア。
// weights が空の場合はMann–Whitney U統計量による順位ベースの推定を行い、
// 同順位のスコアには最小間隔の1/3未満の一様乱数を加えて順位の衝突を避ける。
// この分岐は乱数を使うため、再現性が必要な場合は rng を指定する（nilなら時刻から生成）。
// weights がある場合は累積重みによる重み付きAUCを計算する（同スコアの正負の組は1/2と数える）。
//
// ラベルが一方のクラスしか含まない場合は errors.ErrSingleClass をラップしたエラーを返す。
func AUC(labels, scores, weights []float64, rng *rand.Rand) (float64, error) {
	// 入力検証
	n := len(labels)
	if n == 0 {
		return 0, errors.NewValueError("AUC", "empty labels")
	}
	if len(scores) != n {
		return 0, errors.NewDimensionError("AUC", n, len(scores), 0)
	}
	if len(weights) > 0 && len(weights) != n {
		return 0, errors.NewDimensionError("AUC", n, len(weights), 0)
	}
	for _, y := range labels {
		if y != 0 && y != 1 {
			return 0, errors.NewValueError("AUC", "labels must be binary (0 or 1)")
		}
	}

	if len(weights) == 0 {
		return rankAUC(labels, scores, rng)
	}
	for _, w := range weights {
		if w < 0 {
			return 0, errors.NewValueError("AUC", "weights must be non-negative")
		}
	}
	return weightedAUC(labels, scores, weights)
}

// rankAUC は U/(n1·n0) を計算する。U = 陽性の順位和 − n1(n1+1)/2（順位は1始まり）
func rankAUC(labels, scores []float64, rng *rand.Rand) (float64, error) {
	n := len(labels)
	n1 := floats.Sum(labels)
	n0 := float64(n) - n1
	if n1 == 0 || n0 == 0 {
		return 0, errors.Wrapf(errors.ErrSingleClass, "AUC: %g positives, %g negatives", n1, n0)
	}

	mindiff, ok := minGap(scores)
	if !ok {
		// 全てのスコアが同じなら全ての組が同順位
		return 0.5, nil
	}

	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	jittered := make([]float64, n)
	for i, s := range scores {
		jittered[i] = s + rng.Float64()*mindiff/3
	}

	ranks := midRanks(jittered)
	var rankSum float64
	for i, y := range labels {
		if y == 1 {
			rankSum += ranks[i]
		}
	}
	u := rankSum - n1*(n1+1)/2
	return u / (n1 * n0), nil
}

// weightedAUC はスコア昇順の累積重みから重み付きAUCを計算する
//
// 同じスコアの正負の組は半分の寄与とする:
// Σ w1·(より低いスコアの負の重み + ½·同スコアの負の重み) / (W1·W0)
func weightedAUC(labels, scores, weights []float64) (float64, error) {
	n := len(labels)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	var negBelow, pos, wauc float64
	for start := 0; start < n; {
		var groupPos, groupNeg float64
		end := start
		for ; end < n && scores[order[end]] == scores[order[start]]; end++ {
			i := order[end]
			if labels[i] == 1 {
				groupPos += weights[i]
			} else {
				groupNeg += weights[i]
			}
		}
		wauc += groupPos * (negBelow + 0.5*groupNeg)
		negBelow += groupNeg
		pos += groupPos
		start = end
	}

	denom := pos * negBelow
	if denom == 0 {
		return 0, errors.Wrapf(errors.ErrSingleClass, "weighted AUC: positive weight %g, negative weight %g", pos, negBelow)
	}
	return wauc / denom, nil
}

// AUCMat は割合ラベル（各行が2クラスの質量）の問題を二値AUCに変換して計算する
//
// 確率ベクトルを2回並べ、1回目をクラス0（重み w·y[:,0]）、
// 2回目をクラス1（重み w·y[:,1]）として重み付きAUCに渡す。weights が空なら全て1。
func AUCMat(y mat.Matrix, prob, weights []float64) (float64, error) {
	if y == nil {
		return 0, errors.NewValueError("AUCMat", "nil label matrix")
	}
	ny, nc := y.Dims()
	if nc != 2 {
		return 0, errors.NewDimensionError("AUCMat", 2, nc, 1)
	}
	if len(prob) != ny {
		return 0, errors.NewDimensionError("AUCMat", ny, len(prob), 0)
	}
	if len(weights) > 0 && len(weights) != ny {
		return 0, errors.NewDimensionError("AUCMat", ny, len(weights), 0)
	}

	labels := make([]float64, 2*ny)
	scores := make([]float64, 2*ny)
	stacked := make([]float64, 2*ny)
	for i := 0; i < ny; i++ {
		w := 1.0
		if len(weights) > 0 {
			w = weights[i]
		}
		labels[ny+i] = 1
		scores[i], scores[ny+i] = prob[i], prob[i]
		stacked[i] = w * y.At(i, 0)
		stacked[ny+i] = w * y.At(i, 1)
	}
	return AUC(labels, scores, stacked, nil)
}

// minGap は相異なる値の間の最小間隔を返す。相異なる値が2つ未満なら false
func minGap(values []float64) (float64, bool) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	gap, found := 0.0, false
	for i := 1; i < len(sorted); i++ {
		d := sorted[i] - sorted[i-1]
		if d > 0 && (!found || d < gap) {
			gap, found = d, true
		}
	}
	return gap, found
}

// midRanks は1始まりの順位を返す。同じ値には平均順位を割り当てる
func midRanks(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	ranks := make([]float64, n)
	for start := 0; start < n; {
		end := start + 1
		for end < n && values[order[end]] == values[order[start]] {
			end++
		}
		// 順位 start+1 .. end の平均
		avg := float64(start+end+1) / 2
		for k := start; k < end; k++ {
			ranks[order[k]] = avg
		}
		start = end
	}
	return ranks
}
