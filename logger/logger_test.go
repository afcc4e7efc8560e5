package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Init(Config{Level: "info", Format: "json", Output: &buf})

	l.Debug("hidden")
	Module("store").Info("created list", "id", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "created list", entry["msg"])
	assert.Equal(t, "todolists", entry["service"])
	assert.Equal(t, "store", entry["module"])
	assert.EqualValues(t, 1, entry["id"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Format: "text", Output: &buf})

	assert.Same(t, Get(), FromContext(context.Background()))

	reqLogger := Get().With("request_id", "abc")
	ctx := WithContext(context.Background(), reqLogger)
	FromContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), "request_id=abc")
}
