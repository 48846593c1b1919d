// Package quadrature は定積分の数値近似（中点矩形公式と台形公式）を提供します。
//
// 区間 [a, b] を幅 h で分割し、区間ごとの寄与を Mode の規則で合計します。
// 期限は区間ごとに確認し、切れた場合は途中の合計を返さずに失敗します。
package quadrature

import (
	"context"

	"github.com/YuminosukeSato/numkit/core/deadline"
	"github.com/YuminosukeSato/numkit/core/result"
	"github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/YuminosukeSato/numkit/pkg/log"
)

// Func は1変数の実関数
type Func func(float64) float64

// Rectangle は中点矩形公式で f を [a, b] 上で積分する。
// 中点 a + h/2, a + 3h/2, … (< b) ごとに h·f(mid) を加える
func Rectangle(ctx context.Context, f Func, a, b float64, opts ...Option) result.Result[float64] {
	cfg, err := prepare("Rectangle", f, a, b, opts)
	if err != nil {
		return result.FromError[float64](err)
	}

	return accumulate(ctx, "Rectangle", cfg, a, b, func() segmenter {
		h := cfg.step
		x := a + h/2
		return func() (float64, bool) {
			if !(x < b) {
				return 0, false
			}
			c := h * f(x)
			x += h
			return c, true
		}
	})
}

// Trapezoid は台形公式で f を [a, b] 上で積分する。
// 右端の値は次の区間の左端として再利用する
func Trapezoid(ctx context.Context, f Func, a, b float64, opts ...Option) result.Result[float64] {
	cfg, err := prepare("Trapezoid", f, a, b, opts)
	if err != nil {
		return result.FromError[float64](err)
	}

	return accumulate(ctx, "Trapezoid", cfg, a, b, func() segmenter {
		h := cfg.step
		halfH := h / 2
		left := f(a)
		x := a + h
		right := f(x)
		return func() (float64, bool) {
			if !(x < b) {
				return 0, false
			}
			c := halfH * (left + right)
			left = right
			x += h
			right = f(x)
			return c, true
		}
	})
}

func prepare(method string, f Func, a, b float64, opts []Option) (*config, error) {
	if f == nil {
		panic("quadrature: " + method + " requires a non-nil function")
	}
	if !(a < b) {
		return nil, errors.NewValidationError("interval", "parameter a should be less than parameter b", [2]float64{a, b})
	}
	cfg := newConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// segmenter は次の区間の寄与を返す。区間が尽きたら false
type segmenter func() (float64, bool)

// accumulate は setup が作る segmenter が false を返すまで寄与を合計する
func accumulate(ctx context.Context, method string, cfg *config, a, b float64, setup func() segmenter) result.Result[float64] {
	sum, err := sumSegments(ctx, method, cfg, a, b, setup)
	if err != nil {
		return result.FromError[float64](err)
	}
	return result.Success(sum)
}

// sumSegments は f のパニックを PanicError として返す
func sumSegments(ctx context.Context, method string, cfg *config, a, b float64, setup func() segmenter) (sum float64, err error) {
	defer errors.Recover(&err, method)

	ctx, cancel := deadline.WithDefault(ctx)
	defer cancel()

	next := setup()

	logger := cfg.logger.With(
		log.OperationKey, log.OperationIntegrate,
		log.MethodKey, method,
		log.ModeKey, cfg.mode.String(),
	)

	segments := 0
	for {
		if err := deadline.Check(ctx, method, segments); err != nil {
			logger.Warn("integration canceled", err, log.SegmentsKey, segments)
			return 0, err
		}
		c, ok := next()
		if !ok {
			break
		}
		sum += cfg.mode.apply(c)
		segments++
	}

	if err := errors.CheckScalar(method, sum, segments); err != nil {
		return 0, err
	}

	logger.Debug("integral computed",
		log.IntervalKey, [2]float64{a, b},
		log.StepKey, cfg.step,
		log.SegmentsKey, segments,
		log.ValueKey, sum,
	)
	return sum, nil
}
