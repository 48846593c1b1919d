// Package log provides a structured logging interface for numkit operations.
//
// This package defines a minimal, slog-compatible logging interface that allows for
// flexible implementation switching while providing numerics-specific structured logging
// capabilities. Two backends ship with the package: one on top of Go's log/slog and one
// on top of zerolog.
//
// Key features:
//   - slog-compatible interface
//   - Numerics-specific structured attributes (method, iteration, eps, matrix shape)
//   - Context-aware logging with field chaining
//   - Test-friendly in-memory logger
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ComponentKey, "roots",
//	    log.MethodKey, "newton",
//	)
//	logger.Debug("Iteration converged",
//	    log.IterationKey, 5,
//	    log.EpsilonKey, 1e-6,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface supports method chaining through the With method, allowing
// for creation of contextual loggers with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// The solvers report per-call details (iterations, swaps, residuals) at this level.
	//
	// Example:
	//   logger.Debug("Elimination finished",
	//       log.SwapsKey, 1,
	//       log.DeterminantKey, -3.0,
	//   )
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	// Canceled or failed computations are reported at this level.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided as the first field, it is attached under
	// the "error" key and its stack trace may be included by the backend.
	//
	// Example:
	//   logger.Error("Inverse failed",
	//       err,
	//       log.OperationKey, log.OperationInverse,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Use it to skip expensive diagnostics such as residual computation.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring loggers.
// This interface allows for dependency injection and testing with different
// logger implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific name/component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
