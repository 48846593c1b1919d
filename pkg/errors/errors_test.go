package errors

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("MulVec", 3, 2, 1)

	// 基本的なエラーメッセージの確認
	want := "numkit: MulVec: dimension mismatch on axis 1 (columns). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatal("Error should be castable to *DimensionError")
	}
	if dimErr.Expected != 3 || dimErr.Got != 2 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}

	// スタックトレースの存在確認
	formatted := fmt.Sprintf("%+v", err)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}
}

func TestNewNonSquareError(t *testing.T) {
	err := NewNonSquareError("Determinant", 2, 3)

	want := "numkit: Determinant: matrix 2x3 is not square"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var nsErr *NonSquareError
	if !As(err, &nsErr) {
		t.Error("Error should be castable to *NonSquareError")
	}
}

func TestNewValidationError(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		reason  string
		value   interface{}
		wantMsg string
	}{
		{
			name:    "epsilon out of range",
			param:   "eps",
			reason:  "must be in [1e-07, 1]",
			value:   2.0,
			wantMsg: "numkit: validation failed for parameter 'eps': must be in [1e-07, 1] (got: 2)",
		},
		{
			name:    "interval",
			param:   "a",
			reason:  "must be less than b",
			value:   1,
			wantMsg: "numkit: validation failed for parameter 'a': must be less than b (got: 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.param, tt.reason, tt.value)
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var valErr *ValidationError
			if !As(err, &valErr) {
				t.Error("Error should be castable to *ValidationError")
			}
		})
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("MSE", "empty vector")
	if err.Error() != "numkit: MSE: empty vector" {
		t.Errorf("Error() = %v", err.Error())
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestCanceledErrorUnwrapsCause(t *testing.T) {
	err := NewCanceledError("Newton", 42, context.DeadlineExceeded)

	if !Is(err, context.DeadlineExceeded) {
		t.Error("Expected canceled error to wrap context.DeadlineExceeded")
	}

	var cErr *CanceledError
	if !As(err, &cErr) {
		t.Fatal("Error should be castable to *CanceledError")
	}
	if cErr.Iteration != 42 {
		t.Errorf("Iteration = %d, want 42", cErr.Iteration)
	}
	if !strings.Contains(err.Error(), "method execution canceled") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestNewConvergenceWarning(t *testing.T) {
	warn := NewConvergenceWarning("Newton", 1000, "deadline exceeded")

	want := "Newton failed to converge after 1000 iterations: deadline exceeded"
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}
}

func TestWarnRoutesThroughHandlers(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(nil)

	Warn(NewConvergenceWarning("Secant", 3, ""))
	if len(got) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(got))
	}

	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	SetZerologWarnFunc(func(w error) {
		if m, ok := w.(zerolog.LogObjectMarshaler); ok {
			zl.Warn().Object("warning", m).Msg(w.Error())
		}
	})
	defer SetZerologWarnFunc(nil)

	Warn(NewConvergenceWarning("Chord", 7, "slow"))
	if len(got) != 1 {
		t.Error("zerolog hook should take precedence over the handler")
	}
	if !strings.Contains(buf.String(), `"algorithm":"Chord"`) {
		t.Errorf("zerolog output missing structured fields: %s", buf.String())
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrSingularMatrix, "in Inverse")

	if !Is(wrapped, ErrSingularMatrix) {
		t.Error("Expected Is(wrapped, ErrSingularMatrix) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in Inverse") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrZeroPivot, "column %d of %d", 1, 3)

	if !Is(wrapped, ErrZeroPivot) {
		t.Error("Expected Is(wrapped, ErrZeroPivot) to be true")
	}
	if !strings.Contains(wrapped.Error(), "column 1 of 3") {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
}

func TestCheckScalar(t *testing.T) {
	if err := CheckScalar("op", 1.5, 0); err != nil {
		t.Errorf("finite value reported as unstable: %v", err)
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := CheckScalar("op", v, 3)
		var nErr *NumericalInstabilityError
		if !As(err, &nErr) {
			t.Errorf("CheckScalar(%v) = %v, want NumericalInstabilityError", v, err)
		}
	}
}

type grid [][]float64

func (g grid) At(i, j int) float64 { return g[i][j] }

func TestCheckMatrix(t *testing.T) {
	ok := grid{{1, 2}, {3, 4}}
	if err := CheckMatrix("op", ok, 2, 2, 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := grid{{1, math.NaN()}, {math.Inf(1), 4}}
	err := CheckMatrix("op", bad, 2, 2, 0)
	var nErr *NumericalInstabilityError
	if !As(err, &nErr) {
		t.Fatalf("expected NumericalInstabilityError, got %v", err)
	}
	if len(nErr.Values) != 2 {
		t.Errorf("expected 2 reported values, got %d", len(nErr.Values))
	}
}
