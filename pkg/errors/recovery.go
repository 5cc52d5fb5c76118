package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/cockroachdb/errors"
)

// PanicError は Train や Predict の内部で回収した panic を表す。
// gonum の mat は形状不一致を panic で通知するため、公開メソッドは
// Recover を defer してエラー値に変換する
type PanicError struct {
	Operation  string
	PanicValue any
	StackTrace string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap は panic の値が error (mat.ErrShape など) ならそれを返す
func (e *PanicError) Unwrap() error {
	err, _ := e.PanicValue.(error)
	return err
}

// String はスタックトレースを含めた詳細を返す
func (e *PanicError) String() string {
	return e.Error() + "\nStack trace:\n" + e.StackTrace
}

func NewPanicError(operation string, panicValue any) *PanicError {
	return &PanicError{
		Operation:  operation,
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
	}
}

// Recover は名前付き戻り値 err へのポインタとともに defer する。
// 既にエラーがある場合は panic の情報でそれをラップする
//
//	func (r *Ridge) Train(X, y mat.Matrix) (err error) {
//	    defer errors.Recover(&err, "Ridge.Train")
//	    ...
//	}
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	if *err != nil {
		*err = errors.Wrapf(*err, "panic in %s: %v (original error)", operation, r)
		return
	}
	*err = NewPanicError(operation, r)
}

// SafeExecute は fn を実行し、panic をエラーとして返す
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
