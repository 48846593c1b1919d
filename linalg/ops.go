package linalg

import (
	"github.com/YuminosukeSato/numkit/core/result"
	"github.com/YuminosukeSato/numkit/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Transpose は転置行列を返す
func Transpose(m *Matrix) *Matrix {
	return fromDense(mat.DenseCopyOf(m.data.T()))
}

// Subtract は a − b を返す。形状が異なれば失敗する
func Subtract(a, b *Matrix) result.Result[*Matrix] {
	if a.Rows() != b.Rows() {
		return result.FromError[*Matrix](errors.NewDimensionError("Subtract", a.Rows(), b.Rows(), 0))
	}
	if a.Cols() != b.Cols() {
		return result.FromError[*Matrix](errors.NewDimensionError("Subtract", a.Cols(), b.Cols(), 1))
	}
	var out mat.Dense
	out.Sub(a.data, b.data)
	return result.Success(fromDense(&out))
}

// MulVec は m·v を返す。m の列数と v の次元が一致しなければ失敗する
func MulVec(m *Matrix, v *Vector) result.Result[*Vector] {
	if m.Cols() != v.Dim() {
		return result.FromError[*Vector](errors.NewDimensionError("MulVec", m.Cols(), v.Dim(), 1))
	}
	out := mat.NewVecDense(m.Rows(), nil)
	out.MulVec(m.data, v.data)
	return result.Success(&Vector{data: out})
}

// Divide は各成分をsで割った行列を返す。s == 0 なら失敗する
func Divide(m *Matrix, s float64) result.Result[*Matrix] {
	if s == 0 {
		return result.FromError[*Matrix](errors.Wrap(errors.ErrDivideByZero, "numkit: Divide"))
	}
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return v / s }, m.data)
	return result.Success(fromDense(&out))
}

// Scale は各成分をs倍した行列を返す
func Scale(m *Matrix, s float64) *Matrix {
	var out mat.Dense
	out.Scale(s, m.data)
	return fromDense(&out)
}

// Minor は row 行と col 列を取り除いた小行列を返す
func Minor(m *Matrix, row, col int) result.Result[*Matrix] {
	if m.Rows() < 2 || m.Cols() < 2 {
		return result.FromError[*Matrix](errors.NewValidationError("m", "minor requires at least 2 rows and 2 columns", [2]int{m.Rows(), m.Cols()}))
	}
	if row < 0 || row >= m.Rows() {
		return result.FromError[*Matrix](errors.NewValidationError("row", "index out of range", row))
	}
	if col < 0 || col >= m.Cols() {
		return result.FromError[*Matrix](errors.NewValidationError("col", "index out of range", col))
	}
	return result.Success(fromDense(minorOf(m.data, row, col)))
}

// minorOf は検証済みの添字で小行列を作る
func minorOf(d *mat.Dense, row, col int) *mat.Dense {
	r, c := d.Dims()
	out := mat.NewDense(r-1, c-1, nil)
	oi := 0
	for i := 0; i < r; i++ {
		if i == row {
			continue
		}
		oj := 0
		for j := 0; j < c; j++ {
			if j == col {
				continue
			}
			out.Set(oi, oj, d.At(i, j))
			oj++
		}
		oi++
	}
	return out
}
