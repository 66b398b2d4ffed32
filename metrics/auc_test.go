package metrics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestAUC(t *testing.T) {
	tests := []struct {
		name    string
		labels  []float64
		scores  []float64
		weights []float64
		want    float64
		tol     float64
		wantErr bool
	}{
		{
			name:   "Perfect separation",
			labels: []float64{0, 0, 1, 1},
			scores: []float64{0.1, 0.2, 0.8, 0.9},
			want:   1.0,
		},
		{
			name:   "Worst classifier",
			labels: []float64{0, 0, 0, 1, 1, 1},
			scores: []float64{0.9, 0.8, 0.7, 0.3, 0.2, 0.1},
			want:   0.0,
		},
		{
			name:   "Typical case",
			labels: []float64{0, 0, 1, 1},
			scores: []float64{0.1, 0.4, 0.35, 0.8},
			want:   0.75,
		},
		{
			name:   "All tied",
			labels: []float64{0, 0, 1, 1},
			scores: []float64{0.5, 0.5, 0.5, 0.5},
			want:   0.5,
		},
		{
			name:   "Partially tied",
			labels: []float64{0, 1, 0, 1},
			scores: []float64{0.3, 0.3, 0.6, 0.6},
			want:   0.5,
			tol:    0.25, // 乱数による同順位の解消
		},
		{
			name:    "Weighted pair",
			labels:  []float64{0, 1},
			scores:  []float64{0.2, 0.8},
			weights: []float64{1, 1},
			want:    1.0,
		},
		{
			name:    "Weighted typical case",
			labels:  []float64{0, 0, 1, 1},
			scores:  []float64{0.1, 0.4, 0.35, 0.8},
			weights: []float64{1, 1, 1, 1},
			want:    0.75,
		},
		{
			name:    "Weights change the estimate",
			labels:  []float64{0, 0, 1, 1},
			scores:  []float64{0.1, 0.4, 0.35, 0.8},
			weights: []float64{1, 3, 1, 1},
			want:    (1*1 + 4*1) / (4.0 * 2.0), // 0.35は0.1にのみ勝つ, 0.8は両方に勝つ
		},
		{
			name:    "Weighted all tied",
			labels:  []float64{0, 1, 0, 1},
			scores:  []float64{0.5, 0.5, 0.5, 0.5},
			weights: []float64{1, 1, 1, 1},
			want:    0.5,
		},
		{
			name:    "Weighted all tied, labels reversed",
			labels:  []float64{1, 0, 1, 0},
			scores:  []float64{0.5, 0.5, 0.5, 0.5},
			weights: []float64{1, 1, 1, 1},
			want:    0.5,
		},
		{
			name:    "Weighted partial tie",
			labels:  []float64{0, 1, 0, 1},
			scores:  []float64{0.3, 0.3, 0.6, 0.6},
			weights: []float64{1, 1, 1, 1},
			// 正0.3: 同値の負1つで0.5, 正0.6: 下の負1つ + 同値0.5 = 1.5
			want: 2.0 / 4.0,
		},
		{
			name:    "Weighted ties with unequal weights",
			labels:  []float64{1, 0, 0},
			scores:  []float64{0.5, 0.5, 0.2},
			weights: []float64{2, 3, 1},
			want:    2 * (1 + 0.5*3) / (2.0 * 4.0),
		},
		{
			name:    "Single class",
			labels:  []float64{1, 1, 1},
			scores:  []float64{0.1, 0.2, 0.3},
			wantErr: true,
		},
		{
			name:    "Single class weighted",
			labels:  []float64{0, 0},
			scores:  []float64{0.1, 0.2},
			weights: []float64{1, 1},
			wantErr: true,
		},
		{
			name:    "Positive weight is zero",
			labels:  []float64{0, 1},
			scores:  []float64{0.1, 0.2},
			weights: []float64{1, 0},
			wantErr: true,
		},
		{
			name:    "Non-binary labels",
			labels:  []float64{0, 0.5, 1},
			scores:  []float64{0.1, 0.5, 0.9},
			wantErr: true,
		},
		{
			name:    "Dimension mismatch",
			labels:  []float64{0, 1},
			scores:  []float64{0.5},
			wantErr: true,
		},
		{
			name:    "Weight length mismatch",
			labels:  []float64{0, 1},
			scores:  []float64{0.1, 0.5},
			weights: []float64{1},
			wantErr: true,
		},
		{
			name:    "Negative weight",
			labels:  []float64{0, 1},
			scores:  []float64{0.1, 0.5},
			weights: []float64{1, -1},
			wantErr: true,
		},
		{
			name:    "Empty vectors",
			labels:  []float64{},
			scores:  []float64{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))
			got, err := AUC(tt.labels, tt.scores, tt.weights, rng)
			if (err != nil) != tt.wantErr {
				t.Errorf("AUC() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			tol := tt.tol
			if tol == 0 {
				tol = 1e-12
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tol {
				t.Errorf("AUC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAUCSingleClassSentinel(t *testing.T) {
	_, err := AUC([]float64{1, 1}, []float64{0.1, 0.2}, nil, nil)
	if !errors.Is(err, errors.ErrSingleClass) {
		t.Errorf("expected ErrSingleClass, got %v", err)
	}
	_, err = AUC([]float64{1, 1}, []float64{0.1, 0.2}, []float64{1, 1}, nil)
	if !errors.Is(err, errors.ErrSingleClass) {
		t.Errorf("expected ErrSingleClass, got %v", err)
	}
}

func TestAUCSeededJitterIsReproducible(t *testing.T) {
	labels := []float64{0, 1, 0, 1, 0, 1, 1, 0}
	scores := []float64{0.2, 0.2, 0.4, 0.4, 0.4, 0.6, 0.6, 0.9}

	first, err := AUC(labels, scores, nil, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatal(err)
	}
	second, err := AUC(labels, scores, nil, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same seed gave %v and %v", first, second)
	}

	// 乱数なしでも [0, 1] に収まる
	got, err := AUC(labels, scores, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got < 0 || got > 1 {
		t.Errorf("AUC() = %v, want value in [0, 1]", got)
	}
}

func TestAUCBranchesAgreeWithoutTies(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	n := 200
	labels := make([]float64, n)
	scores := make([]float64, n)
	ones := make([]float64, n)
	for i := 0; i < n; i++ {
		labels[i] = float64(i % 2)
		scores[i] = rng.Float64() + 0.3*labels[i]
		ones[i] = 1
	}

	unweighted, err := AUC(labels, scores, nil, rng)
	if err != nil {
		t.Fatal(err)
	}
	weighted, err := AUC(labels, scores, ones, nil)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(unweighted-weighted) > 1e-12 {
		t.Errorf("unweighted %v != weighted %v", unweighted, weighted)
	}
}

func TestAUCMat(t *testing.T) {
	tests := []struct {
		name    string
		y       mat.Matrix
		prob    []float64
		weights []float64
		want    float64
		wantErr bool
	}{
		{
			name: "One-hot perfect",
			y:    mat.NewDense(4, 2, []float64{1, 0, 1, 0, 0, 1, 0, 1}),
			prob: []float64{0.1, 0.2, 0.8, 0.9},
			want: 1.0,
		},
		{
			name:    "One-hot typical with weights",
			y:       mat.NewDense(4, 2, []float64{1, 0, 1, 0, 0, 1, 0, 1}),
			prob:    []float64{0.1, 0.4, 0.35, 0.8},
			weights: []float64{1, 1, 1, 1},
			want:    0.75,
		},
		{
			name:    "Uniform weights do not change the estimate",
			y:       mat.NewDense(4, 2, []float64{1, 0, 1, 0, 0, 1, 0, 1}),
			prob:    []float64{0.1, 0.4, 0.35, 0.8},
			weights: []float64{2, 2, 2, 2},
			want:    0.75,
		},
		{
			name: "Fractional labels",
			y:    mat.NewDense(3, 2, []float64{1, 0, 0.5, 0.5, 0, 1}),
			prob: []float64{0.1, 0.5, 0.9},
			// 負: 0.1(1), 0.5(0.5); 正: 0.5(0.5), 0.9(1)
			// 0.5の同値は半分 → 0.5·(1 + 0.5·0.5) + 1·1.5 = 2.125, 分母 1.5·1.5
			want: 2.125 / 2.25,
		},
		{
			name: "Constant prediction",
			y:    mat.NewDense(6, 2, []float64{1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1}),
			prob: []float64{0.4, 0.4, 0.4, 0.4, 0.4, 0.4},
			want: 0.5,
		},
		{
			name:    "Single class",
			y:       mat.NewDense(2, 2, []float64{1, 0, 1, 0}),
			prob:    []float64{0.1, 0.9},
			wantErr: true,
		},
		{
			name:    "Wrong column count",
			y:       mat.NewDense(2, 1, []float64{0, 1}),
			prob:    []float64{0.1, 0.9},
			wantErr: true,
		},
		{
			name:    "Prob length mismatch",
			y:       mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
			prob:    []float64{0.1},
			wantErr: true,
		},
		{
			name:    "Nil matrix",
			y:       nil,
			prob:    []float64{0.5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AUCMat(tt.y, tt.prob, tt.weights)
			if (err != nil) != tt.wantErr {
				t.Errorf("AUCMat() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AUCMat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMidRanks(t *testing.T) {
	got := midRanks([]float64{3, 1, 3, 2})
	want := []float64{3.5, 1, 3.5, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("midRanks()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if gap, ok := minGap([]float64{0.5, 0.1, 0.5, 0.4}); !ok || math.Abs(gap-0.1) > 1e-12 {
		t.Errorf("minGap() = %v, %v", gap, ok)
	}
	if _, ok := minGap([]float64{1, 1}); ok {
		t.Error("minGap() should report no gap for identical values")
	}
}

func BenchmarkAUC(b *testing.B) {
	n := 1000
	labels := make([]float64, n)
	scores := make([]float64, n)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		if i >= n/2 {
			labels[i] = 1
		}
		scores[i] = float64(i) / float64(n)
		weights[i] = 1
	}
	rng := rand.New(rand.NewPCG(1, 1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = AUC(labels, scores, nil, rng)
		_, _ = AUC(labels, scores, weights, nil)
	}
}
