// Package deadline bounds the running time of iterative numerical methods.
//
// The deadline is carried by a context.Context. Methods poll it once per loop
// iteration through Check; nothing is interrupted preemptively.
package deadline

import (
	"context"
	"time"

	"github.com/YuminosukeSato/numkit/pkg/errors"
)

// DefaultTimeout applies when the caller's context carries no deadline.
const DefaultTimeout = 5 * time.Second

// WithDefault returns ctx bounded by DefaultTimeout unless ctx already has a
// deadline. A nil ctx is treated as context.Background(). The returned cancel
// func must be called to release the timer.
func WithDefault(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, DefaultTimeout)
}

// Check returns nil while ctx is live and a *errors.CanceledError wrapping
// ctx.Err() once it has expired or been canceled.
func Check(ctx context.Context, op string, iteration int) error {
	if err := ctx.Err(); err != nil {
		return errors.NewCanceledError(op, iteration, err)
	}
	return nil
}
