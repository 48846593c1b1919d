package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	numerr "github.com/YuminosukeSato/numkit/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerInterface exercises every level of the in-memory logger.
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationSolve)
	testLogger.Warn("warning message", ErrorCodeKey, ErrorCanceled)
	testLogger.Error("error message", fmt.Errorf("boom"), MethodKey, "newton")

	require.NotEmpty(t, buffer.String())
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		assert.True(t, testLogger.ContainsMessage(msg), "missing %q", msg)
	}

	assert.True(t, testLogger.ContainsField("key1", "value1"))
	assert.True(t, testLogger.ContainsField("number", 42.0)) // JSON numbers are float64
	assert.True(t, testLogger.ContainsField(ErrAttrKey, "boom"))
	assert.True(t, testLogger.ContainsField(MethodKey, "newton"))
}

func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ComponentKey, "roots",
		MethodKey, "secant",
	)
	contextLogger.Info("converged", IterationKey, 7)

	assert.True(t, testLogger.ContainsField(ComponentKey, "roots"))
	assert.True(t, testLogger.ContainsField(MethodKey, "secant"))
	assert.True(t, testLogger.ContainsField(IterationKey, 7.0))
}

func TestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	assert.True(t, testLogger.Enabled(ctx, LevelInfo))
	assert.True(t, testLogger.Enabled(ctx, LevelError))
	assert.False(t, testLogger.Enabled(ctx, LevelDebug))

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	assert.False(t, testLogger.ContainsMessage("this should not appear"))
	assert.True(t, testLogger.ContainsMessage("this should appear"))
}

func TestLoggerProviderIntegration(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelDebug)

	provider.GetLogger().Info("provider test message")
	named := provider.GetLoggerWithName("quadrature")
	named.Info("named logger message")

	out := buffer.String()
	assert.Contains(t, out, "provider test message")
	assert.Contains(t, out, "named logger message")
	assert.Contains(t, out, "quadrature")

	provider.SetLevel(LevelError)
	named.Info("dropped after SetLevel")
	assert.NotContains(t, buffer.String(), "dropped after SetLevel")
}

func TestSlogLoggerAttachesStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger := NewSlogLogger(slog.New(handler))

	err := numerr.NewDimensionError("MulVec", 3, 2, 1)
	logger.Error("multiplication failed", err, OperationKey, OperationMulVec)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, OperationMulVec, entry[OperationKey])
	assert.Contains(t, entry[ErrAttrKey], "dimension mismatch")
	assert.Equal(t, "*errors.DimensionError", entry[ErrorTypeKey])
	assert.NotEmpty(t, entry[StacktraceKey])
}

func TestSlogLoggerEnabledFollowsHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	assert.False(t, logger.Enabled(context.Background(), LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), LevelWarn))

	logger.With(MethodKey, "chord").Warn("canceled", IterationKey, 3)
	assert.Contains(t, buf.String(), `"num.method":"chord"`)
}

func TestDefaultLoggerFollowsSetup(t *testing.T) {
	prev := slog.Default()
	defer func() {
		slog.SetDefault(prev)
		SetLogger(nil)
	}()

	var buf bytes.Buffer
	SetupLoggerTo(&buf, "debug")
	GetLoggerWithName("linalg").Debug("from default", RowsKey, 3)

	out := buf.String()
	assert.Contains(t, out, `"message":"from default"`)
	assert.Contains(t, out, `"severity":"DEBUG"`)
	assert.Contains(t, out, `"num.component":"linalg"`)

	custom, customBuf := NewTestLogger(LevelDebug)
	SetLogger(custom)
	GetLogger().Info("to custom")
	assert.Contains(t, customBuf.String(), "to custom")
}

func TestToLogLevelPanicsOnUnknown(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, ToLogLevel("warn"))
	assert.Panics(t, func() { ToLogLevel("verbose") })
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	assert.False(t, logger.Enabled(context.Background(), LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), LevelInfo))

	logger.Debug("hidden")
	logger.With(ComponentKey, "roots").Warn("canceled",
		numerr.NewCanceledError("Newton", 12, context.DeadlineExceeded),
		IterationKey, 12,
	)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "roots", entry[ComponentKey])
	assert.Equal(t, 12.0, entry[IterationKey])
	detail, ok := entry["error_detail"].(map[string]interface{})
	require.True(t, ok, "expected structured error detail, got %v", entry)
	assert.Equal(t, "CanceledError", detail["type"])
}

func TestInstallZerologWarnings(t *testing.T) {
	var buf bytes.Buffer
	InstallZerologWarnings(zerolog.New(&buf))
	defer numerr.SetZerologWarnFunc(nil)

	numerr.Warn(numerr.NewConvergenceWarning("Secant", 9, "deadline exceeded"))

	out := buf.String()
	assert.Contains(t, out, `"algorithm":"Secant"`)
	assert.Contains(t, out, `"iterations":9`)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Info("nothing")
	assert.False(t, l.With("k", "v").Enabled(context.Background(), LevelError))
}
