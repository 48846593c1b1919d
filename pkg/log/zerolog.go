package log

import (
	"context"
	"fmt"
	"io"

	numerr "github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/rs/zerolog"
)

// NewZerologLogger returns a Logger that writes zerolog JSON lines to w,
// dropping records below level.
func NewZerologLogger(w io.Writer, level Level) Logger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

// FromZerolog adapts an existing zerolog.Logger.
func FromZerolog(zl zerolog.Logger) Logger {
	return &zerologLogger{zl: zl}
}

type zerologLogger struct {
	zl zerolog.Logger
}

func (z *zerologLogger) Debug(msg string, fields ...any) { emit(z.zl.Debug(), msg, fields) }
func (z *zerologLogger) Info(msg string, fields ...any) { emit(z.zl.Info(), msg, fields) }
func (z *zerologLogger) Warn(msg string, fields ...any) { emit(z.zl.Warn(), msg, fields) }
func (z *zerologLogger) Error(msg string, fields ...any) { emit(z.zl.Error(), msg, fields) }

func (z *zerologLogger) With(fields ...any) Logger {
	c := z.zl.With()
	for i := 0; i < len(fields); {
		if err, ok := fields[i].(error); ok {
			c = c.AnErr(ErrAttrKey, err)
			i++
			continue
		}
		if i+1 < len(fields) {
			c = c.Interface(fmt.Sprint(fields[i]), fields[i+1])
		}
		i += 2
	}
	return &zerologLogger{zl: c.Logger()}
}

func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return z.zl.GetLevel() <= toZerologLevel(level)
}

func emit(e *zerolog.Event, msg string, fields []any) {
	if e == nil {
		return
	}
	for i := 0; i < len(fields); {
		if err, ok := fields[i].(error); ok {
			e = e.Err(err)
			var m zerolog.LogObjectMarshaler
			if numerr.As(err, &m) {
				e = e.Object("error_detail", m)
			}
			i++
			continue
		}
		if i+1 < len(fields) {
			e = e.Interface(fmt.Sprint(fields[i]), fields[i+1])
		}
		i += 2
	}
	e.Msg(msg)
}

func toZerologLevel(l Level) zerolog.Level {
	switch {
	case l <= LevelDebug:
		return zerolog.DebugLevel
	case l <= LevelInfo:
		return zerolog.InfoLevel
	case l <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// InstallZerologWarnings routes errors.Warn through zl. Warnings that
// implement zerolog.LogObjectMarshaler are logged as structured objects.
func InstallZerologWarnings(zl zerolog.Logger) {
	numerr.SetZerologWarnFunc(func(w error) {
		e := zl.Warn()
		var m zerolog.LogObjectMarshaler
		if numerr.As(w, &m) {
			e = e.Object("warning", m)
		}
		e.Msg(w.Error())
	})
}
