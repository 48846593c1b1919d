package roots

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/YuminosukeSato/numkit/pkg/log"
)

const (
	// DefaultEpsilon is the convergence tolerance used when none is given.
	DefaultEpsilon = 1e-6
	// MinEpsilon is the smallest accepted tolerance.
	MinEpsilon = DefaultEpsilon / 10
	// MaxEpsilon is the largest accepted tolerance.
	MaxEpsilon = 1.0
	// DefaultSeed is the initial approximation used when none is given.
	DefaultSeed = 1.0
)

// Observer is called with every accepted iterate.
type Observer func(iteration int, x float64)

// Option configures a root-finder.
type Option func(*config)

type config struct {
	eps      float64
	seed     float64
	logger   log.Logger
	observer Observer
}

func newConfig(opts []Option) *config {
	cfg := &config{
		eps:    DefaultEpsilon,
		seed:   DefaultSeed,
		logger: log.GetLoggerWithName("roots"),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) validate() error {
	if math.IsNaN(c.eps) || c.eps < MinEpsilon || c.eps > MaxEpsilon {
		return errors.NewValidationError("eps", fmt.Sprintf("must be within [%g, %g]", MinEpsilon, MaxEpsilon), c.eps)
	}
	if math.IsNaN(c.seed) || math.IsInf(c.seed, 0) {
		return errors.NewValidationError("seed", "must be finite", c.seed)
	}
	return nil
}

// WithEpsilon sets the convergence tolerance.
func WithEpsilon(eps float64) Option {
	return func(c *config) {
		c.eps = eps
	}
}

// WithSeed sets the initial approximation.
func WithSeed(x float64) Option {
	return func(c *config) {
		c.seed = x
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers a callback that sees every iterate.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}
