package linalg

import (
	"github.com/YuminosukeSato/numkit/core/result"
	"github.com/YuminosukeSato/numkit/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// DeterminantStrategy は行列式の計算方法
type DeterminantStrategy interface {
	Determinant(m *Matrix) result.Result[float64]
}

// CofactorExpansion は第0行に沿った余因子（ラプラス）展開。
// 計算量は O(n!) なので 10×10 程度までが実用範囲
type CofactorExpansion struct{}

// Determinant implements DeterminantStrategy.
func (CofactorExpansion) Determinant(m *Matrix) result.Result[float64] {
	if !m.IsSquare() {
		return result.FromError[float64](errors.NewNonSquareError("Determinant", m.Rows(), m.Cols()))
	}
	return result.Success(cofactorDet(m.data))
}

func cofactorDet(d *mat.Dense) float64 {
	n, _ := d.Dims()
	switch n {
	case 1:
		return d.At(0, 0)
	case 2:
		return d.At(0, 0)*d.At(1, 1) - d.At(0, 1)*d.At(1, 0)
	}

	var det float64
	sign := 1.0
	for j := 0; j < n; j++ {
		// ゼロの成分は小行列式を計算しない
		if a := d.At(0, j); a != 0 {
			det += sign * a * cofactorDet(minorOf(d, 0, j))
		}
		sign = -sign
	}
	return det
}

// LUDecomposition はgonumのLU分解による O(n³) の行列式。
// 条件数が mat.ConditionTolerance を超える行列は特異とみなして 0 を返す
type LUDecomposition struct{}

// Determinant implements DeterminantStrategy.
func (LUDecomposition) Determinant(m *Matrix) result.Result[float64] {
	if !m.IsSquare() {
		return result.FromError[float64](errors.NewNonSquareError("Determinant", m.Rows(), m.Cols()))
	}
	var lu mat.LU
	lu.Factorize(m.data)
	if lu.Cond() > mat.ConditionTolerance {
		return result.Success(0.0)
	}
	return result.Success(lu.Det())
}

// Determinant は余因子展開で行列式を計算する
func Determinant(m *Matrix) result.Result[float64] {
	return CofactorExpansion{}.Determinant(m)
}

func strategyName(s DeterminantStrategy) string {
	switch s.(type) {
	case CofactorExpansion, *CofactorExpansion:
		return "cofactor"
	case LUDecomposition, *LUDecomposition:
		return "lu"
	default:
		return "custom"
	}
}
