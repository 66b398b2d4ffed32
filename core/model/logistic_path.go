package model

import (
	"math"
	"sort"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LogisticPath は二項（ロジスティック）回帰の係数パス
//
// 列 j はλ = Lambdas[j] における切片 Intercepts[j] と係数 Coef[:, j] を表す。
// フィールドはgobで保存できるように公開しているが、学習後は読み取り専用として扱う。
type LogisticPath struct {
	Intercepts []float64  // a0, 長さ L
	Coef       *mat.Dense // β, 特徴量数 × L
	Lambdas    []float64  // λのパス（降順）
	Labels     [2]float64 // Class予測で返すラベル（陰性, 陽性）
	HasOffset  bool       // オフセット付きで学習されたか
}

// LogisticPathOption はLogisticPathの関数オプション
type LogisticPathOption func(*LogisticPath)

// WithClassLabels はClass予測で返すラベルを設定する
func WithClassLabels(negative, positive float64) LogisticPathOption {
	return func(p *LogisticPath) {
		p.Labels = [2]float64{negative, positive}
	}
}

// WithOffset はオフセット付きで学習されたモデルであることを示す
func WithOffset(hasOffset bool) LogisticPathOption {
	return func(p *LogisticPath) {
		p.HasOffset = hasOffset
	}
}

// NewLogisticPath は外部ソルバーの出力からLogisticPathを作成する
func NewLogisticPath(a0 []float64, beta *mat.Dense, lambda []float64, opts ...LogisticPathOption) (*LogisticPath, error) {
	p := &LogisticPath{
		Intercepts: a0,
		Coef:       beta,
		Lambdas:    lambda,
		Labels:     [2]float64{0, 1},
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate はパスの形状を検証する
func (p *LogisticPath) Validate() error {
	if p.Coef == nil {
		return errors.NewValidationError("beta", "coefficient matrix is required", nil)
	}
	nLambda := len(p.Lambdas)
	if nLambda == 0 {
		return errors.NewValidationError("lambda", "path must contain at least one point", nLambda)
	}
	if len(p.Intercepts) != nLambda {
		return errors.NewDimensionError("NewLogisticPath", nLambda, len(p.Intercepts), 1)
	}
	if _, c := p.Coef.Dims(); c != nLambda {
		return errors.NewDimensionError("NewLogisticPath", nLambda, c, 1)
	}
	for _, l := range p.Lambdas {
		if !(l >= 0) {
			return errors.NewValidationError("lambda", "must be non-negative", l)
		}
	}
	return nil
}

// Lambda はλのパスのコピーを返す
func (p *LogisticPath) Lambda() []float64 {
	out := make([]float64, len(p.Lambdas))
	copy(out, p.Lambdas)
	return out
}

// NFeatures は特徴量数を返す
func (p *LogisticPath) NFeatures() int {
	r, _ := p.Coef.Dims()
	return r
}

// Predict は入力データに対するパス全体（または opt.S のλ）での予測を返す
func (p *LogisticPath) Predict(X mat.Matrix, opt PredictOptions) (*mat.Dense, error) {
	nSamples, nFeatures := X.Dims()
	if nSamples == 0 {
		return nil, errors.NewValueError("LogisticPath.Predict", "empty input")
	}
	if nFeatures != p.NFeatures() {
		return nil, errors.NewDimensionError("LogisticPath.Predict", p.NFeatures(), nFeatures, 1)
	}
	if p.HasOffset && len(opt.Offset) == 0 {
		return nil, errors.NewValidationError("offset", "model was fitted with an offset; supply one to predict", nil)
	}
	if len(opt.Offset) > 0 && len(opt.Offset) != nSamples {
		return nil, errors.NewDimensionError("LogisticPath.Predict", nSamples, len(opt.Offset), 0)
	}

	a0, beta := p.Intercepts, mat.Matrix(p.Coef)
	if len(opt.S) > 0 {
		a0, beta = p.interpolate(opt.S)
	}

	// η = Xβ + a0 (+ offset)
	var eta mat.Dense
	eta.Mul(X, beta)
	useOffset := p.HasOffset && len(opt.Offset) > 0
	eta.Apply(func(i, j int, v float64) float64 {
		v += a0[j]
		if useOffset {
			v += opt.Offset[i]
		}
		switch opt.Type {
		case Response:
			return sigmoid(v)
		case Class:
			if v > 0 {
				return p.Labels[1]
			}
			return p.Labels[0]
		default:
			return v
		}
	}, &eta)

	return &eta, nil
}

// interpolate は任意のλにおける係数をパス上の隣接点から線形補間する
func (p *LogisticPath) interpolate(s []float64) ([]float64, *mat.Dense) {
	nFeatures := p.NFeatures()
	a0 := make([]float64, len(s))
	beta := mat.NewDense(nFeatures, len(s), nil)

	k := len(p.Lambdas)
	first, last := p.Lambdas[0], p.Lambdas[k-1]
	span := first - last

	// パスを[0, 1]に正規化した座標（昇順）
	pos := make([]float64, k)
	for i, l := range p.Lambdas {
		if span != 0 {
			pos[i] = (first - l) / span
		}
	}

	for col, sv := range s {
		left, right, frac := 0, 0, 1.0
		if k > 1 && span != 0 {
			sf := errors.ClipValue((first-sv)/span, pos[0], pos[k-1])
			right = sort.SearchFloat64s(pos, sf)
			if right >= k {
				right = k - 1
			}
			left = right
			if pos[right] != sf && right > 0 {
				left = right - 1
				frac = (sf - pos[right]) / (pos[left] - pos[right])
			}
		}
		a0[col] = frac*p.Intercepts[left] + (1-frac)*p.Intercepts[right]
		for f := 0; f < nFeatures; f++ {
			beta.Set(f, col, frac*p.Coef.At(f, left)+(1-frac)*p.Coef.At(f, right))
		}
	}
	return a0, beta
}

// sigmoid computes the sigmoid function
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
