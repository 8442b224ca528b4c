// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configureBuffer(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Reset()
	Configure(Config{Level: level, Format: "json", Output: &buf, Service: "test"})
	t.Cleanup(Reset)
	return &buf
}

func TestWithComponent_JSONFields(t *testing.T) {
	buf := configureBuffer(t, "debug")

	l := WithComponent("compose")
	l.Info().Str(FieldTarget, "js").Msg("merged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test", entry[FieldService])
	assert.Equal(t, "compose", entry[FieldComponent])
	assert.Equal(t, "js", entry[FieldTarget])
	assert.Equal(t, "merged", entry["message"])
}

func TestConfigure_FirstCallWins(t *testing.T) {
	buf := configureBuffer(t, "info")

	var other bytes.Buffer
	Configure(Config{Format: "json", Output: &other})

	logger := Base()
	logger.Info().Msg("hello")
	assert.NotEmpty(t, buf.String())
	assert.Empty(t, other.String())
}

func TestDerive(t *testing.T) {
	buf := configureBuffer(t, "info")

	l := Derive(nil)
	l.Info().Msg("plain")
	assert.Contains(t, buf.String(), "plain")

	buf.Reset()
	l = Derive(func(c *zerolog.Context) { *c = c.Str(FieldFeature, "sass") })
	l.Info().Msg("with feature")
	assert.Contains(t, buf.String(), `"feature":"sass"`)
}

func TestSetLevel(t *testing.T) {
	buf := configureBuffer(t, "warn")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	logger := Base()
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, SetLevel("debug"))
	logger.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")

	assert.Error(t, SetLevel("loud"))
}
