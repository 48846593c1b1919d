package linalg

import (
	"context"
	"math"
	"time"

	"github.com/YuminosukeSato/numkit/core/deadline"
	"github.com/YuminosukeSato/numkit/core/result"
	"github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/YuminosukeSato/numkit/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Solve はガウスの消去法で A·x = b を解き、解と行列式を返す。
//
// 入力 a, b は変更されない。ピボット A[k,k] がちょうど0のときは、
// 行 i > k の対角成分 A[i,i] のうち絶対値が最大の非ゼロの行と入れ替える
// （列全体は探さない）。行列式は消去後の対角成分の積で、入れ替え回数が
// 奇数なら符号を反転する。
//
// 失敗時の行列式は NaN。ただし最後の対角成分が0になった特異行列では0を返す。
// 期限は各ピボット列の処理前に確認し、切れていれば途中の状態は破棄する。
func Solve(ctx context.Context, a *Matrix, b *Vector, opts ...Option) (result.Result[*Vector], float64) {
	if a == nil || b == nil {
		panic("linalg: Solve requires a non-nil matrix and vector")
	}
	cfg := newConfig(opts)
	logger := cfg.logger.With(log.OperationKey, log.OperationSolve)

	if !a.IsSquare() {
		return result.FromError[*Vector](errors.NewNonSquareError("Solve", a.Rows(), a.Cols())), math.NaN()
	}
	n := a.Rows()
	if b.Dim() != n {
		return result.FromError[*Vector](errors.NewDimensionError("Solve", n, b.Dim(), 0)), math.NaN()
	}

	ctx, cancel := deadline.WithDefault(ctx)
	defer cancel()
	start := time.Now()

	A := a.RawMatrix()
	rhs := b.Values()
	swaps := 0

	for k := 0; k < n-1; k++ {
		if err := deadline.Check(ctx, "Solve", k); err != nil {
			logger.Warn("elimination canceled", err, log.IterationKey, k)
			return result.FromError[*Vector](err), math.NaN()
		}

		if A.At(k, k) == 0 {
			p := diagonalPivot(A, k)
			if p < 0 {
				return zeroPivot(k), math.NaN()
			}
			swapRows(A, rhs, k, p)
			swaps++
			// 入れ替え後も A[k,k] が0のままになりうる
			if A.At(k, k) == 0 {
				return zeroPivot(k), math.NaN()
			}
		}

		pivot := A.At(k, k)
		for i := k + 1; i < n; i++ {
			m := -A.At(i, k) / pivot
			if m == 0 {
				continue
			}
			for j := k; j < n; j++ {
				A.Set(i, j, A.At(i, j)+m*A.At(k, j))
			}
			rhs[i] += m * rhs[k]
		}
	}

	det := 1.0
	for i := 0; i < n; i++ {
		det *= A.At(i, i)
	}
	if swaps%2 == 1 {
		det = -det
	}
	if A.At(n-1, n-1) == 0 {
		logger.Debug("matrix is singular", log.SwapsKey, swaps)
		return result.FromError[*Vector](errors.Wrap(errors.ErrSingularMatrix, "numkit: Solve")), 0
	}

	// 後退代入
	x := make([]float64, n)
	for k := n - 1; k >= 0; k-- {
		s := rhs[k]
		for j := k + 1; j < n; j++ {
			s -= A.At(k, j) * x[j]
		}
		x[k] = s / A.At(k, k)
	}
	if err := errors.CheckNumericalStability("Solve", x, 0); err != nil {
		return result.FromError[*Vector](err), math.NaN()
	}

	solution := &Vector{data: mat.NewVecDense(n, x)}
	if logger.Enabled(ctx, log.LevelDebug) {
		fields := []any{
			log.RowsKey, n,
			log.SwapsKey, swaps,
			log.DeterminantKey, det,
			log.DurationMsKey, time.Since(start).Milliseconds(),
		}
		if report, ok := Residual(a, solution, b).Value(); ok {
			fields = append(fields, log.ResidualKey, report.RMSE)
		}
		logger.Debug("system solved", fields...)
	}
	return result.Success(solution), det
}

// diagonalPivot は i > k の対角成分のうち絶対値最大の非ゼロの行を返す。なければ -1
func diagonalPivot(A *mat.Dense, k int) int {
	n, _ := A.Dims()
	p, best := -1, 0.0
	for i := k + 1; i < n; i++ {
		if v := math.Abs(A.At(i, i)); v > best {
			p, best = i, v
		}
	}
	return p
}

func swapRows(A *mat.Dense, rhs []float64, k, p int) {
	rk := mat.Row(nil, k, A)
	A.SetRow(k, mat.Row(nil, p, A))
	A.SetRow(p, rk)
	rhs[k], rhs[p] = rhs[p], rhs[k]
}

func zeroPivot(k int) result.Result[*Vector] {
	return result.FromError[*Vector](errors.Wrapf(errors.ErrZeroPivot, "numkit: Solve: column %d", k))
}
