// Package result provides Result, a value that holds either a computed value
// or the reason the computation failed.
//
// Every fallible numkit operation returns a Result instead of a bare
// (value, error) pair so that the failure state travels with the value and
// cannot be skipped by accident: the payload is only reachable through
// Value, Unwrap or MustValue, each of which makes the caller look at the tag.
package result

import (
	"fmt"

	"github.com/YuminosukeSato/numkit/pkg/errors"
)

// errUninitialized is reported by the zero Result.
var errUninitialized = errors.New("result: not initialized")

// Result is either Success(value) or Failure(reason).
type Result[T any] struct {
	ok    bool
	value T
	err   error
}

// Success wraps v.
func Success[T any](v T) Result[T] {
	return Result[T]{ok: true, value: v}
}

// Failure builds a failed Result carrying reason. An empty reason is a
// programming error and panics.
func Failure[T any](reason string) Result[T] {
	if reason == "" {
		panic("result: Failure requires a non-empty reason")
	}
	return Result[T]{err: errors.New(reason)}
}

// FromError builds a failed Result from err, keeping it for errors.Is/As.
// A nil err panics.
func FromError[T any](err error) Result[T] {
	if err == nil {
		panic("result: FromError requires a non-nil error")
	}
	return Result[T]{err: err}
}

// Map applies fn to the value of a successful Result and passes failures through.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Result[U]{err: r.Err()}
	}
	return Success(fn(r.value))
}

// IsSuccess reports whether r holds a value.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether r holds a failure reason.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the payload and true on success, the zero value and false on failure.
func (r Result[T]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Unwrap converts r to the conventional (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

// MustValue returns the payload and panics on failure.
func (r Result[T]) MustValue() T {
	if !r.ok {
		panic(fmt.Sprintf("result: MustValue on failure: %s", r.Reason()))
	}
	return r.value
}

// Err returns the failure cause, or nil on success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return errUninitialized
	}
	return r.err
}

// Reason returns the failure text, or "" on success.
func (r Result[T]) Reason() string {
	if err := r.Err(); err != nil {
		return err.Error()
	}
	return ""
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%s)", r.Reason())
}
