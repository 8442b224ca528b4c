// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *int
	one := 1

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string", "", false},
		{"string", "x", true},
		{"zero int", 0, false},
		{"int", 3, true},
		{"zero float", 0.0, false},
		{"int32", int32(2), true},
		{"zero uint8", uint8(0), false},
		{"empty object", map[string]any{}, true},
		{"nil map is an object", nilMap, true},
		{"nil pointer", nilPtr, false},
		{"pointer", &one, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.in))
		})
	}
}

type mediaParams struct {
	DataURL int `json:"dataUrl"`
}

func TestOptionsDecode(t *testing.T) {
	opts := Options{
		"media":  map[string]any{"dataUrl": "2048"},
		"css":    true,
		"broken": map[string]any{"unknown": 1},
	}

	p := mediaParams{DataURL: 10000}
	require.NoError(t, opts.Decode("media", &p))
	assert.Equal(t, 2048, p.DataURL)

	p = mediaParams{DataURL: 10000}
	require.NoError(t, opts.Decode("css", &p), "bare boolean keeps defaults")
	assert.Equal(t, 10000, p.DataURL)

	require.NoError(t, opts.Decode("missing", &p))

	err := opts.Decode("broken", &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode broken")
}

func TestOptionsAccessors(t *testing.T) {
	opts := Options{"sass": true, "css": false}
	assert.True(t, opts.Enabled("sass"))
	assert.False(t, opts.Enabled("css"))
	assert.False(t, opts.Enabled("graphql"))

	v, ok := opts.Value("css")
	assert.True(t, ok)
	assert.Equal(t, false, v)

	c := opts.Clone()
	c["graphql"] = true
	assert.NotContains(t, opts, "graphql")
}
