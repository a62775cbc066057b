package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "school", "warn")

	l.Info().Msg("hidden")
	l.Warn().Str("region", "Wien").Msg("visible")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "school", line["component"])
	assert.Equal(t, "Wien", line["region"])
	assert.Equal(t, "visible", line["message"])
	assert.Equal(t, "warn", line["level"])
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test", "nonsense")

	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
	l.Info().Msg("shown")
	assert.NotZero(t, buf.Len())

	// NewLogger must not panic without a terminal
	stderr := NewLogger("test", "info")
	stderr.Debug().Msg("discarded")
}
