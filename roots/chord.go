package roots

import (
	"context"

	"github.com/YuminosukeSato/numkit/core/result"
	"github.com/YuminosukeSato/numkit/pkg/errors"
)

// Chord finds a root of f on [a, b] by linear interpolation.
//
// The endpoint with the smaller f value moves; the other one stays fixed:
// x_next = x − f(x)·(c − x)/(f(c) − f(x)). a must be less than b.
func Chord(ctx context.Context, f Func, a, b float64, opts ...Option) result.Result[float64] {
	cfg, err := prepare("Chord", opts, f)
	if err != nil {
		return result.FromError[float64](err)
	}
	if !(a < b) {
		return result.FromError[float64](errors.NewValidationError("interval", "left end must be less than right end", [2]float64{a, b}))
	}

	return iterate(ctx, "Chord", cfg, func() (float64, stepper) {
		xp, c := a, b
		if f(a) > f(b) {
			xp, c = b, a
		}
		fc := f(c)
		return xp, func(x float64) float64 {
			fx := f(x)
			return x - fx*((c-x)/(fc-fx))
		}
	})
}

// ChordFromSeed is the single-seed form of Chord. It synthesizes the second
// point at seed − eps and iterates on the two latest values, like Secant.
func ChordFromSeed(ctx context.Context, f Func, opts ...Option) result.Result[float64] {
	cfg, err := prepare("Chord", opts, f)
	if err != nil {
		return result.FromError[float64](err)
	}
	return twoPoint(ctx, "Chord", cfg, f)
}
