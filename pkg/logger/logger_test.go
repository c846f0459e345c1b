package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	prev, prevLevel := logger, lvl.Level()
	t.Cleanup(func() {
		logger = prev
		lvl.Set(prevLevel)
		slog.SetDefault(prev)
	})

	var buf bytes.Buffer
	require.NoError(t, initWithWriter(cfg, &buf))
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{Output: "JSON", Level: "warn"}.Validate())
	assert.Error(t, Config{Output: "xml"}.Validate())
	assert.Error(t, Config{Level: "verbose"}.Validate())
}

func TestLevel(t *testing.T) {
	buf := captureJSON(t, Config{Output: "json", Level: "warn"})

	Info("hidden")
	assert.Zero(t, buf.Len())

	Warn("shown", slogx.Int("n", 1))
	line := decodeLine(t, buf)
	assert.Equal(t, "WARN", line[LevelKey])
	assert.Equal(t, "shown", line[MessageKey])
	assert.EqualValues(t, 1, line["n"])
}

func TestContextLogger(t *testing.T) {
	buf := captureJSON(t, Config{Output: "json"})

	ctx := WithContext(context.Background(), slogx.String(ModuleKey, "anjoli"))
	ctx = WithContext(ctx, slogx.String(OperationKey, "donate"))
	ErrorContext(ctx, "failed", errors.New("boom"), slogx.Duration("took", 1500*time.Millisecond))

	line := decodeLine(t, buf)
	assert.Equal(t, "ERROR", line[LevelKey])
	assert.Equal(t, "anjoli", line[ModuleKey])
	assert.Equal(t, "donate", line[OperationKey])
	assert.Equal(t, "boom", line[ErrorKey])
	assert.EqualValues(t, 1500, line["took"])
	assert.NotContains(t, line, ErrorVerboseKey)
}

func TestFromContextFallback(t *testing.T) {
	assert.Same(t, logger, FromContext(context.Background()))
	assert.Same(t, logger, FromContext(nil)) //nolint:staticcheck
}

func TestDebugErrorStackTrace(t *testing.T) {
	buf := captureJSON(t, Config{Output: "json", Debug: true})

	ErrorContext(context.Background(), "failed", errors.Wrap(errors.New("boom"), "wrapped"))

	line := decodeLine(t, buf)
	assert.Equal(t, "wrapped: boom", line[ErrorKey])
	assert.Contains(t, line[ErrorVerboseKey], "boom")
	require.Contains(t, line, ErrorStackTraceKey)
	frames, ok := line[ErrorStackTraceKey].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
	assert.Contains(t, frames[0], "TestDebugErrorStackTrace")
	assert.Contains(t, line, SourceKey)
}

func TestCustomLevels(t *testing.T) {
	buf := captureJSON(t, Config{Output: "json"})

	LogAttrs(context.Background(), LevelCritical, "critical")
	assert.Equal(t, "CRITICAL", decodeLine(t, buf)[LevelKey])
	buf.Reset()

	LogAttrs(context.Background(), LevelPanic+1, "panic")
	assert.Equal(t, "PANIC+1", decodeLine(t, buf)[LevelKey])
	buf.Reset()

	assert.PanicsWithValue(t, "bad state", func() { Panic("bad state") })
	assert.Equal(t, "PANIC", decodeLine(t, buf)[LevelKey])
}

func TestGCPOutput(t *testing.T) {
	buf := captureJSON(t, Config{Output: "gcp"})

	WarnContext(context.Background(), "careful")
	line := decodeLine(t, buf)
	assert.Equal(t, "WARNING", line["severity"])
	assert.Equal(t, "careful", line["message"])
	assert.Contains(t, line, "logging.googleapis.com/sourceLocation")
	buf.Reset()

	LogAttrs(context.Background(), LevelFatal, "gone")
	assert.Equal(t, "EMERGENCY", decodeLine(t, buf)["severity"])
}

func TestSetLevel(t *testing.T) {
	buf := captureJSON(t, Config{Output: "json"})

	old := SetLevel(slog.LevelError)
	assert.Equal(t, slog.LevelInfo, old)
	Warn("hidden")
	assert.Zero(t, buf.Len())
}
