package linalg

import (
	"github.com/YuminosukeSato/numkit/core/result"
	"github.com/YuminosukeSato/numkit/metrics"
)

// ResidualReport は A·x と b の差の要約
type ResidualReport struct {
	MaxAbs float64
	RMSE   float64
	MAE    float64
}

// Residual は解 x の残差 A·x − b を評価する
func Residual(a *Matrix, x, b *Vector) result.Result[ResidualReport] {
	axR := MulVec(a, x)
	ax, ok := axR.Value()
	if !ok {
		return result.FromError[ResidualReport](axR.Err())
	}
	want, got := b.RawVector(), ax.RawVector()

	var (
		report ResidualReport
		err    error
	)
	if report.MaxAbs, err = metrics.MaxError(want, got); err != nil {
		return result.FromError[ResidualReport](err)
	}
	if report.RMSE, err = metrics.RMSE(want, got); err != nil {
		return result.FromError[ResidualReport](err)
	}
	if report.MAE, err = metrics.MAE(want, got); err != nil {
		return result.FromError[ResidualReport](err)
	}
	return result.Success(report)
}
