package log

import (
	"context"
	"log/slog"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = &slogLogger{}
)

// GetLogger returns the package-wide logger. Until SetLogger is called it
// forwards to slog.Default(), so SetupLogger and slog.SetDefault take effect.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// GetLoggerWithName returns the package-wide logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLogger replaces the package-wide logger. Passing nil restores the
// slog.Default() forwarder.
func SetLogger(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if l == nil {
		l = &slogLogger{}
	}
	defaultLogger = l
}

// NewSlogLogger adapts a *slog.Logger to Logger.
func NewSlogLogger(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

type slogLogger struct {
	l *slog.Logger // nil means slog.Default() at call time
}

func (s *slogLogger) logger() *slog.Logger {
	if s.l == nil {
		return slog.Default()
	}
	return s.l
}

func (s *slogLogger) Debug(msg string, fields ...any) {
	s.logger().Debug(msg, slogArgs(fields)...)
}

func (s *slogLogger) Info(msg string, fields ...any) {
	s.logger().Info(msg, slogArgs(fields)...)
}

func (s *slogLogger) Warn(msg string, fields ...any) {
	s.logger().Warn(msg, slogArgs(fields)...)
}

func (s *slogLogger) Error(msg string, fields ...any) {
	s.logger().Error(msg, slogArgs(fields)...)
}

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.logger().With(slogArgs(fields)...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger().Enabled(ctx, slog.Level(level))
}

// slogArgs turns a bare error in key position into ErrAttr so that
// ErrFmtHandler can pick it up.
func slogArgs(fields []any) []any {
	out := make([]any, 0, len(fields))
	for i := 0; i < len(fields); {
		switch f := fields[i].(type) {
		case error:
			out = append(out, ErrAttr(f))
			i++
		case slog.Attr:
			out = append(out, f)
			i++
		default:
			out = append(out, f)
			if i+1 < len(fields) {
				out = append(out, fields[i+1])
			}
			i += 2
		}
	}
	return out
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}
func (nopLogger) Error(string, ...any) {}
func (n nopLogger) With(...any) Logger { return n }
func (nopLogger) Enabled(context.Context, Level) bool { return false }
