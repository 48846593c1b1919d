package linalg

import (
	"github.com/YuminosukeSato/numkit/core/result"
	"github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/YuminosukeSato/numkit/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Inverse は随伴行列を行列式で割って逆行列を求める。行列式は余因子展開
func Inverse(m *Matrix) result.Result[*Matrix] {
	return InverseWith(CofactorExpansion{}, m)
}

// InverseWith は指定した方法で行列式と余因子を計算して逆行列を求める
func InverseWith(s DeterminantStrategy, m *Matrix) result.Result[*Matrix] {
	logger := log.GetLoggerWithName("linalg").With(log.OperationKey, log.OperationInverse, log.StrategyKey, strategyName(s))

	if !m.IsSquare() {
		return result.FromError[*Matrix](errors.NewNonSquareError("Inverse", m.Rows(), m.Cols()))
	}

	detR := s.Determinant(m)
	det, ok := detR.Value()
	if !ok {
		return result.FromError[*Matrix](detR.Err())
	}
	if det == 0 {
		logger.Debug("matrix is singular", log.RowsKey, m.Rows())
		return result.FromError[*Matrix](errors.Wrap(errors.ErrSingularMatrix, "numkit: Inverse"))
	}

	n := m.Rows()
	if n == 1 {
		return result.Success(fromDense(mat.NewDense(1, 1, []float64{1 / m.At(0, 0)})))
	}

	// 余因子行列
	cof := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			minor := s.Determinant(fromDense(minorOf(m.data, i, j)))
			v, ok := minor.Value()
			if !ok {
				return result.FromError[*Matrix](minor.Err())
			}
			if (i+j)%2 == 1 {
				v = -v
			}
			cof.Set(i, j, v)
		}
	}

	// 随伴行列 / 行列式
	var adj mat.Dense
	adj.Apply(func(_, _ int, v float64) float64 { return v / det }, cof.T())
	inv := fromDense(&adj)
	if err := errors.CheckMatrix("Inverse", inv.data, n, n, 0); err != nil {
		return result.FromError[*Matrix](err)
	}

	logger.Debug("inverse computed", log.RowsKey, n, log.DeterminantKey, det)
	return result.Success(inv)
}
