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
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	got, ok := ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, "warn", "timetracker", "test")

	l.Info("dropped")
	assert.Zero(t, buf.Len())

	l.Warn("kept", "entry_id", "e1")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "timetracker", line["app"])
	assert.Equal(t, "e1", line["entry_id"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	NewText(&buf, "debug").Debug("hello", "count", 2)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "count=2")
}
