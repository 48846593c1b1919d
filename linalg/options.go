package linalg

import "github.com/YuminosukeSato/numkit/pkg/log"

// Option は Solve の設定を変更する関数
type Option func(*config)

type config struct {
	logger log.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: log.GetLoggerWithName("linalg")}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger は診断ログの出力先を設定する
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
