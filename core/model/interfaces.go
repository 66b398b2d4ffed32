// Package model は正則化パス上のモデルと、交差検証が利用する外部インターフェースを定義します。
package model

import (
	"gonum.org/v1/gonum/mat"
)

// PredictType は予測の出力形式を表す
type PredictType int

const (
	// Link は線形予測子 η = a0 + Xβ (+ offset) を返す
	Link PredictType = iota
	// Response は二項モデルの確率 1/(1+exp(-η)) を返す
	Response
	// Class は η > 0 なら陽性クラスのラベル、そうでなければ陰性クラスのラベルを返す
	Class
)

// String は予測形式の名前を返す
func (t PredictType) String() string {
	switch t {
	case Link:
		return "link"
	case Response:
		return "response"
	case Class:
		return "class"
	default:
		return "unknown"
	}
}

// PredictOptions はパスモデルの予測オプション
type PredictOptions struct {
	// Type は出力形式
	Type PredictType
	// Offset は行ごとのオフセット（空ならオフセットなし）
	Offset []float64
	// S は予測するλの値（空ならパス上の全点）
	S []float64
}

// PathModel は正則化パス全体にわたって学習済みのモデルのインターフェース
//
// Predict は S が空のとき rows × len(Lambda()) の行列を返す。
// 交差検証では異なるfoldのモデルに対して並行に呼ばれることがある。
type PathModel interface {
	// Lambda はモデルが学習されたλのパスを返す（途中で打ち切られた場合は短くなる）
	Lambda() []float64
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix, opt PredictOptions) (*mat.Dense, error)
}

// PathFitter は正則化パスを学習する外部ソルバーのインターフェース
//
// lambda が空の場合はソルバー自身がパスを決める。
// weights・offset が空の場合はそれぞれ全て1・オフセットなしとして扱う。
type PathFitter interface {
	FitPath(X, Y mat.Matrix, weights, offset, lambda []float64) (PathModel, error)
}
