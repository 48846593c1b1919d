// Package linalg は小〜中規模の密行列に対する線形代数を提供します。
//
// 行列式（余因子展開とLU分解）、随伴行列による逆行列、
// 対角ピボット探索付きのガウスの消去法を含みます。
// 失敗しうる演算は result.Result を返します。
package linalg

import (
	"fmt"

	"github.com/YuminosukeSato/numkit/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix は行優先の密行列。形状は作成後に変わらない
type Matrix struct {
	data *mat.Dense
}

// NewMatrix は rows×cols の行列を作成する。
// values が空ならゼロ行列、そうでなければ行優先で rows*cols 個の値が必要
func NewMatrix(rows, cols int, values []float64) (*Matrix, error) {
	if rows < 1 {
		return nil, errors.NewValidationError("rows", "must be at least 1", rows)
	}
	if cols < 1 {
		return nil, errors.NewValidationError("cols", "must be at least 1", cols)
	}
	if len(values) == 0 {
		return &Matrix{data: mat.NewDense(rows, cols, nil)}, nil
	}
	if len(values) != rows*cols {
		return nil, errors.NewValidationError("values", fmt.Sprintf("expected %d values for a %dx%d matrix", rows*cols, rows, cols), len(values))
	}
	buf := make([]float64, len(values))
	copy(buf, values)
	return &Matrix{data: mat.NewDense(rows, cols, buf)}, nil
}

// NewSquare は n×n の行列を作成する
func NewSquare(n int, values []float64) (*Matrix, error) {
	return NewMatrix(n, n, values)
}

// Identity は n×n の単位行列を作成する
func Identity(n int) (*Matrix, error) {
	m, err := NewSquare(n, nil)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data.Set(i, i, 1)
	}
	return m, nil
}

// FromRows は同じ次元の行ベクトルを並べて行列を作成する
func FromRows(rows ...*Vector) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, errors.NewValidationError("rows", "at least one row is required", 0)
	}
	cols := rows[0].Dim()
	m := &Matrix{data: mat.NewDense(len(rows), cols, nil)}
	for i, r := range rows {
		if r.Dim() != cols {
			return nil, errors.NewDimensionError("FromRows", cols, r.Dim(), 1)
		}
		m.data.SetRow(i, r.Values())
	}
	return m, nil
}

// fromDense は所有権ごと *mat.Dense を包む
func fromDense(d *mat.Dense) *Matrix {
	return &Matrix{data: d}
}

// Clone は独立したコピーを返す
func (m *Matrix) Clone() *Matrix {
	return fromDense(mat.DenseCopyOf(m.data))
}

// Rows は行数を返す
func (m *Matrix) Rows() int {
	r, _ := m.data.Dims()
	return r
}

// Cols は列数を返す
func (m *Matrix) Cols() int {
	_, c := m.data.Dims()
	return c
}

// IsSquare は正方行列かどうかを返す
func (m *Matrix) IsSquare() bool {
	return m.Rows() == m.Cols()
}

// At は (i, j) 成分を返す。範囲外ならパニックする
func (m *Matrix) At(i, j int) float64 { return m.data.At(i, j) }

// Set は (i, j) 成分を設定する
func (m *Matrix) Set(i, j int, v float64) { m.data.Set(i, j, v) }

// RowVectors は各行をベクトルとしてコピーして返す
func (m *Matrix) RowVectors() []*Vector {
	out := make([]*Vector, m.Rows())
	for i := range out {
		out[i] = &Vector{data: mat.NewVecDense(m.Cols(), mat.Row(nil, i, m.data))}
	}
	return out
}

// EqualApprox は形状が等しく、各成分の差がtol以内かを判定する
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	return mat.EqualApprox(m.data, other.data, tol)
}

func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.data, mat.Squeeze()))
}

// RawMatrix はgonumの行列としてコピーを返す
func (m *Matrix) RawMatrix() *mat.Dense {
	return mat.DenseCopyOf(m.data)
}
