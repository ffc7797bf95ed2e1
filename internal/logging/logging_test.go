package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want zerolog.Level
	}{
		"trace":          {in: "trace", want: zerolog.TraceLevel},
		"debug":          {in: "DEBUG", want: zerolog.DebugLevel},
		"info":           {in: " info ", want: zerolog.InfoLevel},
		"warn":           {in: "warn", want: zerolog.WarnLevel},
		"warning alias":  {in: "warning", want: zerolog.WarnLevel},
		"error":          {in: "error", want: zerolog.ErrorLevel},
		"unknown":        {in: "loud", want: zerolog.InfoLevel},
		"empty":          {in: "", want: zerolog.InfoLevel},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLevel(tt.in, zerolog.InfoLevel))
		})
	}
}

func TestNew_JSONWhenNotTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, Options{Level: "info"})
	log.Info().Str("id", "42").Msg("notified")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "notified", entry["message"])
	assert.Equal(t, "42", entry["id"])
	assert.Equal(t, "gh-notifier", entry["component"])
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, Options{Level: "warn"})
	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_DebugOverridesLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, Options{Level: "error", Debug: true})
	log.Debug().Msg("details")
	assert.Contains(t, buf.String(), "details")
}

func TestNew_ConsoleWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, Options{Console: true})
	log.Info().Str("reason", "mention").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "reason=mention")
	assert.False(t, json.Valid(buf.Bytes()))
}
