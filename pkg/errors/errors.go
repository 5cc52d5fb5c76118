// Package errors は linml のエラー型と警告の仕組みをまとめる。
// コンストラクタは cockroachdb/errors でスタックを付与して返すため、
// 呼び出し側は As で具体型を取り出し、%+v で発生箇所を確認できる。
package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// 番兵エラー。ModelError の原因として Is で判定する
var (
	ErrEmptyData      = errors.New("empty data")
	ErrSingularMatrix = errors.New("singular matrix")
)

// NotFittedError は Train 前に予測系メソッドが呼ばれたことを表す
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("linml: %s: this model is not trained yet. Call Train() before using %s()", e.ModelName, e.Method)
}

func (e *NotFittedError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("type", "NotFittedError").
		Str("model_name", e.ModelName).
		Str("method", e.Method)
}

func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// DimensionError は行数(Axis=0)または特徴量数(Axis=1)の不一致
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "features"
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("linml: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, e.axisName(), e.Expected, e.Got)
}

func (e *DimensionError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("type", "DimensionError").
		Str("operation", e.Op).
		Int("axis", e.Axis).
		Str("axis_name", e.axisName()).
		Int("expected", e.Expected).
		Int("got", e.Got)
}

func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError はハイパーパラメータが許容範囲外であることを表す
type ValidationError struct {
	ParamName string
	Reason    string
	Value     any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("linml: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

func (e *ValidationError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("type", "ValidationError").
		Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value)
}

func NewValidationError(param, reason string, value any) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError は入力データの値そのものが不正な場合。MSLE の負値、
// 0/1 以外のラベル、列ベクトルでない y など
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return "linml: " + e.Op + ": " + e.Message
}

func (e *ValueError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("type", "ValueError").
		Str("operation", e.Op).
		Str("message", e.Message)
}

func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ModelError は学習が失敗したことを表す。Err に原因を保持する
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("linml: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("linml: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// NumericalInstabilityError は NaN や Inf を検出した反復と値を保持する
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Iteration int
}

func (e *NumericalInstabilityError) Error() string {
	const shown = 5
	parts := make([]string, 0, shown+1)
	for i, v := range e.Values {
		if i == shown {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, fmt.Sprintf("%.6g", v))
	}
	return fmt.Sprintf("linml: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, strings.Join(parts, ", "))
}

func (e *NumericalInstabilityError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("type", "NumericalInstabilityError").
		Str("operation", e.Operation).
		Int("iteration", e.Iteration).
		Floats64("values", e.Values)
}

func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	return errors.WithStack(&NumericalInstabilityError{Operation: operation, Values: values, Iteration: iteration})
}

// 以下は cockroachdb/errors の薄いラッパー。呼び出し側が両方を import しなくて済むようにする

func Is(err, target error) bool { return errors.Is(err, target) }
func As(err error, target any) bool { return errors.As(err, target) }
func New(msg string) error { return errors.New(msg) }
func Newf(format string, args ...any) error { return errors.Newf(format, args...) }
func Wrap(err error, msg string) error { return errors.Wrap(err, msg) }
func Wrapf(err error, format string, a ...any) error { return errors.Wrapf(err, format, a...) }
func WithStack(err error) error { return errors.WithStack(err) }

// Mark は err を reference と同一視させる。元のエラーはチェーンに残る
func Mark(err, reference error) error { return errors.Mark(err, reference) }
