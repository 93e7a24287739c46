package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fivetwenty-io/oklink/internal/logging"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ oklink.Logger = (*logging.ZapLogger)(nil)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}

	for name, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(name), name)
	}
}

func TestZapLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewZapLogger("debug", &buf)
	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET", "request_id": "abc"})

	var entry map[string]interface{}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "HTTP Request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.NotEmpty(t, entry["ts"])
}

func TestZapLogger_LevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewZapLogger("warn", &buf)
	logger.Debug("dropped", nil)
	logger.Info("dropped", nil)
	logger.Warn("kept", nil)
	logger.Error("kept", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestNewFromZap(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := logging.NewFromZap(zap.New(core))

	logger.Info("HTTP Response", map[string]interface{}{"status": 200, "duration_ms": int64(12)})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "HTTP Response", entry.Message)
	assert.Equal(t, int64(200), entry.ContextMap()["status"])
	require.Len(t, entry.Context, 2)
	assert.Equal(t, "duration_ms", entry.Context[0].Key)
}
