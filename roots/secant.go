package roots

import (
	"context"

	"github.com/YuminosukeSato/numkit/core/result"
)

// Secant finds a root of f from the derived point x − eps and the seed x,
// replacing the derivative with the slope through the two latest iterates.
func Secant(ctx context.Context, f Func, opts ...Option) result.Result[float64] {
	cfg, err := prepare("Secant", opts, f)
	if err != nil {
		return result.FromError[float64](err)
	}
	return twoPoint(ctx, "Secant", cfg, f)
}

// twoPoint iterates x_next = x − f(x)·(x − prev)/(f(x) − f(prev)) and
// shifts the window forward after every step.
func twoPoint(ctx context.Context, method string, cfg *config, f Func) result.Result[float64] {
	return iterate(ctx, method, cfg, func() (float64, stepper) {
		prev := cfg.seed - cfg.eps
		fPrev := f(prev)
		return cfg.seed, func(x float64) float64 {
			fx := f(x)
			next := x - fx*(x-prev)/(fx-fPrev)
			prev, fPrev = x, fx
			return next
		}
	})
}
