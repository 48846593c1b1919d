package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// PanicError は利用者の関数（被積分関数や方程式の左辺など）の中で起きた
// パニックを回復して作られるエラーです。
type PanicError struct {
	// PanicValue は panic() に渡された値
	PanicValue interface{}

	// StackTrace はパニック時点のスタックトレース
	StackTrace string

	// Operation はパニックを回復した操作（例: "Newton", "Trapezoid"）
	Operation string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("numkit: panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap はパニックの値がエラーであればそれを返します。
func (e *PanicError) Unwrap() error {
	if err, ok := e.PanicValue.(error); ok {
		return err
	}
	return nil
}

// String はスタックトレースを含む詳細を返します。
func (e *PanicError) String() string {
	return fmt.Sprintf("%s\nStack trace:\n%s", e.Error(), e.StackTrace)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *PanicError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Str("panic_value", fmt.Sprint(e.PanicValue)).
		Str("type", "PanicError")
}

// NewPanicError は新しいPanicErrorを作成します。
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover はdeferで使い、パニックをエラーに変換します。
// 既にエラーがある場合はパニックの情報でラップします。
//
// 使用例:
//
//	func integrate() (sum float64, err error) {
//	    defer errors.Recover(&err, "Rectangle")
//	    // ... f(x) を呼ぶ ...
//	}
func Recover(err *error, operation string) {
	if r := recover(); r != nil {
		panicErr := NewPanicError(operation, r)

		if *err != nil {
			*err = Wrapf(*err, "numkit: panic in %s: %v", operation, r)
		} else {
			*err = panicErr
		}
	}
}

// SafeExecute は fn を実行し、パニックを PanicError に変換して返します。
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
