package roots

import (
	"context"

	"github.com/YuminosukeSato/numkit/core/result"
)

// Newton finds a root of f with the tangent method
// x_next = x − f(x)/df(x), starting from the seed.
//
// df must be the derivative of f. With a wrong derivative the iteration
// usually never meets eps and the call fails once the deadline passes.
func Newton(ctx context.Context, f, df Func, opts ...Option) result.Result[float64] {
	cfg, err := prepare("Newton", opts, f, df)
	if err != nil {
		return result.FromError[float64](err)
	}

	return iterate(ctx, "Newton", cfg, func() (float64, stepper) {
		return cfg.seed, func(x float64) float64 {
			fx := f(x)
			if fx == 0 {
				return x
			}
			return x - fx/df(x)
		}
	})
}
