// Package roots finds roots of scalar nonlinear equations f(x) = 0.
//
// Newton, Secant and Chord share one loop: the deadline carried by the
// context is polled at the top of every iteration, and the loop stops when
// |x_next − x| ≤ eps. A method that never meets the tolerance (for example
// Newton with a wrong derivative) fails with a cancellation error once the
// deadline passes; it never returns a wrong success.
package roots

import (
	"context"
	"math"

	"github.com/YuminosukeSato/numkit/core/deadline"
	"github.com/YuminosukeSato/numkit/core/result"
	"github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/YuminosukeSato/numkit/pkg/log"
)

// Func is a real function of one variable.
type Func func(float64) float64

// State is the lifecycle of one solver run.
type State int

const (
	// Running means the loop has not terminated yet.
	Running State = iota
	// Converged means two successive iterates were within eps.
	Converged
	// Canceled means the deadline passed before convergence.
	Canceled
	// Diverged means an iterate became NaN or ±Inf.
	Diverged
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Canceled:
		return "canceled"
	case Diverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// stepper returns the next iterate from the current one.
type stepper func(x float64) float64

// iterate runs the method built by setup until convergence, cancellation or
// divergence. setup returns the starting point and the step; it runs inside
// the recovered region so that a panic raised by f or df is reported as a
// *errors.PanicError failure.
func iterate(ctx context.Context, method string, cfg *config, setup func() (float64, stepper)) result.Result[float64] {
	root, err := loop(ctx, method, cfg, setup)
	if err != nil {
		return result.FromError[float64](err)
	}
	return result.Success(root)
}

func loop(ctx context.Context, method string, cfg *config, setup func() (float64, stepper)) (_ float64, err error) {
	defer errors.Recover(&err, method)

	ctx, cancel := deadline.WithDefault(ctx)
	defer cancel()

	x, step := setup()
	logger := cfg.logger.With(
		log.OperationKey, log.OperationFindRoot,
		log.MethodKey, method,
	)
	state := Running

	for i := 1; ; i++ {
		if err := deadline.Check(ctx, method, i); err != nil {
			state = Canceled
			logger.Warn("root search canceled", err,
				log.StateKey, state.String(),
				log.IterationKey, i,
				log.EpsilonKey, cfg.eps,
			)
			errors.Warn(errors.NewConvergenceWarning(method, i-1, err.Error()))
			return 0, err
		}

		next := step(x)
		if err := errors.CheckScalar(method, next, i); err != nil {
			state = Diverged
			logger.Warn("iterate is not finite", err,
				log.StateKey, state.String(),
				log.IterationKey, i,
			)
			return 0, err
		}
		if cfg.observer != nil {
			cfg.observer(i, next)
		}

		if math.Abs(next-x) <= cfg.eps {
			state = Converged
			logger.Debug("root found",
				log.StateKey, state.String(),
				log.IterationKey, i,
				log.ValueKey, next,
			)
			return next, nil
		}
		x = next
	}
}

// prepare applies opts and validates them. Programming errors panic.
func prepare(method string, opts []Option, funcs ...Func) (*config, error) {
	for _, f := range funcs {
		if f == nil {
			panic("roots: " + method + " requires non-nil functions")
		}
	}
	cfg := newConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
