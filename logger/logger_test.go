package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelDebug,
		"verbose": slog.LevelDebug,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Debug("dropped")
	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("paddle move rejected", "side", "left")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "paddle move rejected", record["msg"])
	assert.Equal(t, "left", record["side"])
	assert.Equal(t, "WARN", record["level"])
	assert.Contains(t, record, "source")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("nothing", "k", 1)
	})
}
