package logging

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
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info", FormatJSON)

	logger.Debug("hidden")
	logger.Info("snapshot loaded", "records", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "snapshot loaded", entry["msg"])
	assert.Equal(t, float64(3), entry["records"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn", FormatText)

	logger.Info("hidden")
	logger.Warn("slow request", "path", "/api/v1/heatmap")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"slow request\"")
	assert.Contains(t, out, "path=/api/v1/heatmap")
}
