// Package errors はプロジェクト全体のエラーハンドリングと警告型を提供します。
// 警告は error を実装しますが、呼び出し側へはエラーとしてではなく
// 診断情報（Result.Warnings やロガー）として渡されます。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	交差検証の警告型
//
// ===========================================================================

// UnsupportedMeasureWarning は二項モデルで利用できない評価指標が指定された場合の警告です。
// 指標は Fallback に置き換えられて処理が続行されます。
type UnsupportedMeasureWarning struct {
	Requested string
	Supported []string
	Fallback  string
}

func (w *UnsupportedMeasureWarning) Error() string {
	return fmt.Sprintf("only %v available for binomial models; '%s' used instead of '%s'",
		w.Supported, w.Fallback, w.Requested)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UnsupportedMeasureWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("requested", w.Requested).
		Strs("supported", w.Supported).
		Str("fallback", w.Fallback).
		Str("type", "UnsupportedMeasureWarning")
}

// NewUnsupportedMeasureWarning は新しいUnsupportedMeasureWarningを作成します。
func NewUnsupportedMeasureWarning(requested string, supported []string, fallback string) *UnsupportedMeasureWarning {
	return &UnsupportedMeasureWarning{Requested: requested, Supported: supported, Fallback: fallback}
}

// MeasureFallbackWarning はfoldあたりの観測数が少なすぎて指標が信頼できない場合の警告です。
// 例えば、foldあたり10未満の観測でAUCを要求した場合など。
type MeasureFallbackWarning struct {
	Requested      string
	Fallback       string
	PerFold        float64 // foldあたりの平均観測数
	MinimumPerFold float64
}

func (w *MeasureFallbackWarning) Error() string {
	return fmt.Sprintf("too few (< %g) observations per fold (%.2f) for measure %s; changed to %s. Alternately, use a smaller number of folds",
		w.MinimumPerFold, w.PerFold, w.Requested, w.Fallback)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *MeasureFallbackWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("requested", w.Requested).
		Str("fallback", w.Fallback).
		Float64("per_fold", w.PerFold).
		Float64("minimum_per_fold", w.MinimumPerFold).
		Str("type", "MeasureFallbackWarning")
}

// NewMeasureFallbackWarning は新しいMeasureFallbackWarningを作成します。
func NewMeasureFallbackWarning(requested, fallback string, perFold, minimum float64) *MeasureFallbackWarning {
	return &MeasureFallbackWarning{
		Requested:      requested,
		Fallback:       fallback,
		PerFold:        perFold,
		MinimumPerFold: minimum,
	}
}

// GroupedDisabledWarning はfoldあたりの観測数が3未満のためgroupedモードが無効化された場合の警告です。
type GroupedDisabledWarning struct {
	PerFold float64
}

func (w *GroupedDisabledWarning) Error() string {
	return fmt.Sprintf("option grouped=false enforced, since there are < 3 observations per fold (%.2f)", w.PerFold)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *GroupedDisabledWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Float64("per_fold", w.PerFold).
		Str("type", "GroupedDisabledWarning")
}

// NewGroupedDisabledWarning は新しいGroupedDisabledWarningを作成します。
func NewGroupedDisabledWarning(perFold float64) *GroupedDisabledWarning {
	return &GroupedDisabledWarning{PerFold: perFold}
}

// IsWarning は err が本パッケージの警告型かどうかを判定します。
func IsWarning(err error) bool {
	switch err.(type) {
	case *UnsupportedMeasureWarning, *MeasureFallbackWarning, *GroupedDisabledWarning:
		return true
	}
	return false
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("glmnetcv: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
// foldサイズ不足やgrouped=falseの指定など、交差検証の前提条件違反もこの型で返されます。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("glmnetcv: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、単一クラスしか含まないラベルでAUCを計算しようとした場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("glmnetcv: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError は外部のパスモデル（予測・学習）が失敗した場合のエラーです。
// 元のエラーは Unwrap で取り出せます。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("glmnetcv: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("glmnetcv: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}


// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrSingleClass はラベルが一方のクラスしか含まない場合のエラーです。
	ErrSingleClass = New("labels contain a single class")
)
