// Package numkit is a small numerical toolkit for Go: dense linear algebra,
// scalar root-finding, quadrature and polynomial interpolation, all with
// bounded running time.
//
// Every fallible operation returns a result.Result, which holds either the
// computed value or the reason the computation failed. Iterative methods
// take a context.Context as their deadline; when the caller's context has no
// deadline a 5 second default applies.
//
// # Packages
//
//   - core/result: the Result type (Success or Failure)
//   - core/deadline: default deadline and per-iteration polling
//   - linalg: Vector, Matrix, determinant, inverse, Gaussian elimination
//   - roots: Newton, Secant and Chord root-finders
//   - quadrature: rectangle and trapezoid rules with signed-area modes
//   - interpolation: Polynomial and Lagrange interpolation
//   - metrics: error metrics used for residuals
//   - viz: plots of functions and convergence (gonum/plot)
//   - pkg/errors: structured errors and warnings
//   - pkg/log: structured logging
//
// # Quick Start
//
//	a, _ := linalg.NewSquare(3, []float64{
//	    4, 2, -1,
//	    5, 3, -2,
//	    3, 2, -3,
//	})
//	b, _ := linalg.NewVector(1, 2, 0)
//
//	x, det := linalg.Solve(ctx, a, b)
//	if v, ok := x.Value(); ok {
//	    fmt.Println(v, det) // [-1 3 1] -3
//	}
//
//	root := roots.Newton(ctx,
//	    func(x float64) float64 { return x*x - 3 },
//	    func(x float64) float64 { return 2 * x },
//	    roots.WithSeed(2),
//	)
//	fmt.Println(root) // Success(1.7320508075688772)
//
// # Scale
//
// The cofactor determinant and the adjugate inverse cost O(n!) and are meant
// for matrices up to about 10×10. linalg.LUDecomposition gives an O(n³)
// determinant for larger inputs.
//
// # Error Handling
//
// Failures carry typed errors from pkg/errors (DimensionError,
// NonSquareError, ValidationError, CanceledError, NumericalInstabilityError)
// and sentinels such as ErrSingularMatrix. Use errors.Is and errors.As on
// Result.Err(). Passing a nil function to a method is a programming error
// and panics.
//
// # License
//
// numkit is released under the MIT License.
package numkit
