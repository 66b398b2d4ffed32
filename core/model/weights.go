package model

import (
	"encoding/json"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// PathWeightsVersion は現在のJSON形式のバージョン
const PathWeightsVersion = "1"

// PathWeights は係数パスのJSON表現（外部ソルバーとの受け渡し用）
type PathWeights struct {
	// ModelType はモデルの種類（現在は "LogisticPath" のみ）
	ModelType string `json:"model_type"`

	// Version は形式のバージョン（互換性チェック用）
	Version string `json:"version"`

	// Lambda は正則化パス
	Lambda []float64 `json:"lambda"`

	// Intercepts はλごとの切片 a0
	Intercepts []float64 `json:"a0"`

	// Beta はλごとの係数ベクトル（Beta[j] がλ[j]の係数）
	Beta [][]float64 `json:"beta"`

	// Labels はClass予測で返すラベル（陰性, 陽性）
	Labels [2]float64 `json:"labels"`

	// Offset はオフセット付きで学習されたか
	Offset bool `json:"offset"`

	// Metadata は追加のメタデータ（ソルバーの設定等）
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// ToJSON はPathWeightsをJSON形式にシリアライズ
func (pw *PathWeights) ToJSON() ([]byte, error) {
	return json.MarshalIndent(pw, "", "  ")
}

// FromJSON はJSON形式からPathWeightsをデシリアライズ
func (pw *PathWeights) FromJSON(data []byte) error {
	if err := json.Unmarshal(data, pw); err != nil {
		return errors.Wrap(err, "decode path weights")
	}
	return nil
}

// Validate はPathWeightsの妥当性を検証
func (pw *PathWeights) Validate() error {
	if pw.ModelType != "LogisticPath" {
		return errors.NewValidationError("model_type", "unsupported model type", pw.ModelType)
	}
	if pw.Version != PathWeightsVersion {
		return errors.NewValidationError("version", "unsupported format version", pw.Version)
	}
	if len(pw.Beta) != len(pw.Lambda) {
		return errors.NewDimensionError("PathWeights.Validate", len(pw.Lambda), len(pw.Beta), 1)
	}
	for j, b := range pw.Beta {
		if len(b) != len(pw.Beta[0]) {
			return errors.NewDimensionError("PathWeights.Validate", len(pw.Beta[0]), len(b), 0)
		}
		if len(b) == 0 {
			return errors.NewValidationError("beta", "coefficient vector is empty", j)
		}
	}
	return nil
}

// Clone はPathWeightsのディープコピーを作成
func (pw *PathWeights) Clone() *PathWeights {
	clone := &PathWeights{
		ModelType:  pw.ModelType,
		Version:    pw.Version,
		Lambda:     append([]float64(nil), pw.Lambda...),
		Intercepts: append([]float64(nil), pw.Intercepts...),
		Beta:       make([][]float64, len(pw.Beta)),
		Labels:     pw.Labels,
		Offset:     pw.Offset,
		Metadata:   make(map[string]interface{}, len(pw.Metadata)),
	}
	for j, b := range pw.Beta {
		clone.Beta[j] = append([]float64(nil), b...)
	}
	for k, v := range pw.Metadata {
		clone.Metadata[k] = v
	}
	return clone
}

// ExportWeights はLogisticPathをPathWeightsに変換する
func (p *LogisticPath) ExportWeights() *PathWeights {
	nFeatures := p.NFeatures()
	beta := make([][]float64, len(p.Lambdas))
	for j := range beta {
		beta[j] = mat.Col(make([]float64, nFeatures), j, p.Coef)
	}
	return &PathWeights{
		ModelType:  "LogisticPath",
		Version:    PathWeightsVersion,
		Lambda:     p.Lambda(),
		Intercepts: append([]float64(nil), p.Intercepts...),
		Beta:       beta,
		Labels:     p.Labels,
		Offset:     p.HasOffset,
	}
}

// NewLogisticPathFromWeights はPathWeightsからLogisticPathを作成する
func NewLogisticPathFromWeights(pw *PathWeights) (*LogisticPath, error) {
	if err := pw.Validate(); err != nil {
		return nil, err
	}
	nFeatures := len(pw.Beta[0])
	coef := mat.NewDense(nFeatures, len(pw.Lambda), nil)
	for j, b := range pw.Beta {
		coef.SetCol(j, b)
	}
	return NewLogisticPath(
		append([]float64(nil), pw.Intercepts...),
		coef,
		append([]float64(nil), pw.Lambda...),
		WithClassLabels(pw.Labels[0], pw.Labels[1]),
		WithOffset(pw.Offset),
	)
}
