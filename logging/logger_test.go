package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Logger = (*ShipLogger)(nil)
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = NoOpLogger{}
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestShipLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LogLevelWarn, Format: "json", Output: &buf})

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept", "cost", 12.5)
	l.Error("kept too")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "kept", lines[0]["msg"])
	assert.Equal(t, 12.5, lines[0]["cost"])
	assert.Equal(t, "ERROR", lines[1]["level"])
}

func TestShipLogger_ContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&LoggerConfig{Level: LogLevelDebug, Output: &buf, Component: "core", CustomAttrs: map[string]any{"yard": "alpha"}})
	derived := base.WithVessel("v-1", 3).WithContext("shift", "night")

	derived.Info("opened")
	base.Info("plain")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "core", lines[0]["component"])
	assert.Equal(t, "v-1", lines[0]["vessel_id"])
	assert.Equal(t, float64(3), lines[0]["iteration"])
	assert.Equal(t, "night", lines[0]["shift"])
	assert.Equal(t, "alpha", lines[0]["yard"])

	_, ok := lines[1]["vessel_id"]
	assert.False(t, ok, "With* must not mutate the receiver")
	_, ok = lines[1]["shift"]
	assert.False(t, ok)
}

func TestShipLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "text", Output: &buf})
	l.Info("hello", "kind", "cargo")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "kind=cargo")
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(99).String())
}
