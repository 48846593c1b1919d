package quadrature

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/YuminosukeSato/numkit/pkg/log"
)

const (
	// DefaultStep は分割幅 h の既定値
	DefaultStep = 1e-6
	// MinStep は受け付ける最小の分割幅
	MinStep = DefaultStep / 10
	// MaxStep は受け付ける最大の分割幅
	MaxStep = 1.0
)

// Option は積分の設定を変更する関数
type Option func(*config)

type config struct {
	mode   Mode
	step   float64
	logger log.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{
		mode:   Full,
		step:   DefaultStep,
		logger: log.GetLoggerWithName("quadrature"),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) validate() error {
	if !c.mode.valid() {
		return errors.NewValidationError("mode", "unknown integration mode", int(c.mode))
	}
	if math.IsNaN(c.step) || c.step < MinStep || c.step > MaxStep {
		return errors.NewValidationError("h", fmt.Sprintf("must be within [%g, %g]", MinStep, MaxStep), c.step)
	}
	return nil
}

// WithMode は符号付き面積の扱いを設定する
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithStep は分割幅 h を設定する
func WithStep(h float64) Option {
	return func(c *config) {
		c.step = h
	}
}

// WithLogger は診断ログの出力先を設定する
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
