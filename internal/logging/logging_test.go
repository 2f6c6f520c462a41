package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Level(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"error", false, false},
		{"", false, true},
		{"bogus", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&buf, tt.level)

			logger.Debug().Msg("debug line")
			assert.Equal(t, tt.debugSeen, bytes.Contains(buf.Bytes(), []byte("debug line")))

			buf.Reset()
			logger.Info().Msg("info line")
			assert.Equal(t, tt.infoSeen, bytes.Contains(buf.Bytes(), []byte("info line")))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info")
	logger.Error().Str("component", "test").Msg("boom")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "time")
}
