package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/revline/pkg/config"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseLevel(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, level)
		})
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.Logging{Level: "info", Format: "text"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("transcode finished", "records", 5)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"transcode finished\"")
	assert.Contains(t, out, "records=5")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.Logging{Level: "debug", Format: "json"})
	require.NoError(t, err)

	logger.Debug("record emitted", "offset", 7)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "record emitted", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, float64(7), entry["offset"])
}

func TestNew_Invalid(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf, config.Logging{Level: "loud"})
	assert.Error(t, err)

	_, err = New(&buf, config.Logging{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	logger := Nop()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.Error("dropped")
}
