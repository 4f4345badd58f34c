package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-publisher/internal/logger"
)

// captureLogs routes the package logger into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf))
	logger.SetLevel(slog.LevelInfo)
	t.Cleanup(func() {
		logger.SetLogger(logger.New(&bytes.Buffer{}))
		logger.SetLevel(slog.LevelInfo)
	})
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_Info(t *testing.T) {
	buf := captureLogs(t)

	logger.Info("Comment created",
		slog.String("commenter", "ann"),
		slog.Int("count", 42),
	)

	entry := decodeLine(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Comment created", entry["msg"])
	assert.Equal(t, "ann", entry["commenter"])
	assert.Equal(t, float64(42), entry["count"])
}

func TestLogger_Error(t *testing.T) {
	buf := captureLogs(t)

	logger.Error("Schema bootstrap failed", slog.String("error", "connection refused"))

	entry := decodeLine(t, buf)
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "connection refused", entry["error"])
}

func TestLogger_ContextRequestID(t *testing.T) {
	buf := captureLogs(t)

	ctx := logger.ContextWithRequestID(context.Background(), "req-123")
	logger.InfoContext(ctx, "Request handled")

	entry := decodeLine(t, buf)
	assert.Equal(t, "req-123", entry["request_id"])
}

func TestLogger_ContextWithoutRequestID(t *testing.T) {
	buf := captureLogs(t)

	logger.ErrorContext(context.Background(), "No request")

	entry := decodeLine(t, buf)
	_, ok := entry["request_id"]
	assert.False(t, ok)
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, logger.RequestIDFromContext(context.Background()))

	ctx := logger.ContextWithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", logger.RequestIDFromContext(ctx))
}

func TestLogger_WithArticleID(t *testing.T) {
	buf := captureLogs(t)

	ctx := logger.ContextWithRequestID(context.Background(), "req-9")
	logger.WithArticleID(7).InfoContext(ctx, "Article created")

	entry := decodeLine(t, buf)
	assert.Equal(t, float64(7), entry["blog_id"])
	assert.Equal(t, "req-9", entry["request_id"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(input), "input %q", input)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	buf := captureLogs(t)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(slog.LevelDebug)
	logger.DebugContext(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger.SetLevel(slog.LevelError)
	logger.Warn("also hidden")
	assert.Empty(t, buf.String())
}
