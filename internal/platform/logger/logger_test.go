package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/bookstore-api/internal/config"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogLevels(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	tests := []struct {
		level      string
		debugShown bool
		infoShown  bool
		warnShown  bool
	}{
		{level: "debug", debugShown: true, infoShown: true, warnShown: true},
		{level: "info", debugShown: false, infoShown: true, warnShown: true},
		{level: "warn", debugShown: false, infoShown: false, warnShown: true},
		{level: "ERROR", debugShown: false, infoShown: false, warnShown: false},
		{level: "bogus", debugShown: false, infoShown: true, warnShown: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: tt.level, Environment: "test"}, &buf)
			require.NoError(t, err)
			require.NotNil(t, l)

			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")

			out := buf.String()
			assert.Equal(t, tt.debugShown, strings.Contains(out, "debug message"))
			assert.Equal(t, tt.infoShown, strings.Contains(out, "info message"))
			assert.Equal(t, tt.warnShown, strings.Contains(out, "warn message"))
		})
	}
}

func TestSetupWritesJSONAndSetsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	_, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "info", Environment: "development"}, &buf)
	require.NoError(t, err)

	slog.Info("through default", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "through default", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "bookstore-api", entry["service"])
	assert.Equal(t, "development", entry["environment"])
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	scoped := slog.New(slog.NewTextHandler(&buf, nil)).With("trace_id", "abc")
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := logger.WithLogger(context.Background(), scoped)

	assert.Same(t, scoped, logger.FromContext(ctx))
	assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))

	logger.FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "trace_id=abc")
}
