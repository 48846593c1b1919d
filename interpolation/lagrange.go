// Package interpolation builds interpolating polynomials.
package interpolation

import (
	"context"
	"fmt"

	"github.com/YuminosukeSato/numkit/core/deadline"
	"github.com/YuminosukeSato/numkit/core/result"
	"github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/YuminosukeSato/numkit/pkg/log"
)

// Func is the evaluator of an interpolating polynomial.
type Func func(float64) float64

// Coefficients returns the coefficients, in ascending power order, of the
// Lagrange polynomial through the points (xs[i], ys[i]):
//
//	L(x) = Σ_i ys[i] · Π_{j≠i} (x − xs[j]) / (xs[i] − xs[j])
//
// The deadline is polled before each basis polynomial.
func Coefficients(ctx context.Context, xs, ys []float64) result.Result[[]float64] {
	if err := validateNodes(xs, ys); err != nil {
		return result.FromError[[]float64](err)
	}

	ctx, cancel := deadline.WithDefault(ctx)
	defer cancel()

	sum := constant(0)
	for i := range xs {
		if err := deadline.Check(ctx, "Coefficients", i); err != nil {
			log.GetLoggerWithName("interpolation").Warn("interpolation canceled", err,
				log.OperationKey, log.OperationInterpolation,
				log.IterationKey, i,
			)
			return result.FromError[[]float64](err)
		}

		basis := constant(1)
		a := ys[i]
		for j := range xs {
			if j == i {
				continue
			}
			basis = basis.Mul(Polynomial{coeffs: []float64{-xs[j], 1}})
			a /= xs[i] - xs[j]
		}
		sum = sum.Add(basis.Scale(a))
	}

	coeffs := sum.Coefficients()
	if err := errors.CheckNumericalStability("Coefficients", coeffs, len(xs)); err != nil {
		return result.FromError[[]float64](err)
	}
	return result.Success(coeffs)
}

// Interpolate returns the Lagrange polynomial through the points as an evaluator.
func Interpolate(ctx context.Context, xs, ys []float64) result.Result[Func] {
	return result.Map(Coefficients(ctx, xs, ys), func(c []float64) Func {
		return Polynomial{coeffs: c}.Eval
	})
}

func validateNodes(xs, ys []float64) error {
	if len(xs) < 2 {
		return errors.NewValidationError("xs", "expect at least 2 interpolation points", len(xs))
	}
	if len(xs) != len(ys) {
		return errors.NewDimensionError("Coefficients", len(xs), len(ys), 0)
	}
	seen := make(map[float64]int, len(xs))
	for i, x := range xs {
		if j, ok := seen[x]; ok {
			return errors.NewValidationError("xs", fmt.Sprintf("nodes %d and %d coincide", j, i), x)
		}
		seen[x] = i
	}
	return nil
}
