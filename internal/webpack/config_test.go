// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package webpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripType(t *testing.T) {
	rule := Config{TypeKey: "css", "test": `\.css$`}
	got := StripType(rule)
	assert.Equal(t, Config{"test": `\.css$`}, got)
	assert.Contains(t, rule, TypeKey, "input must not be modified")

	plain := Config{"loader": "file-loader"}
	cp := StripType(plain)
	cp["loader"] = "url-loader"
	assert.Equal(t, "file-loader", plain["loader"])
}

func TestEntries(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, nil},
		{"string", "./src/index.js", []string{"./src/index.js"}},
		{"list", []any{"babel-polyfill", "./src/index.js"}, []string{"babel-polyfill", "./src/index.js"}},
		{"typed list", []string{"./a.js"}, []string{"./a.js"}},
		{
			"named bundles",
			map[string]any{"vendor": []any{"react"}, "main": "./src/index.js"},
			[]string{"./src/index.js", "react"},
		},
		{"typed map", map[string]string{"b": "./b.js", "a": "./a.js"}, []string{"./a.js", "./b.js"}},
		{"typed map of lists", map[string][]string{"main": {"./a.js", "./b.js"}}, []string{"./a.js", "./b.js"}},
		{"number", 42, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Entries(tt.in))
		})
	}
}

func TestBase(t *testing.T) {
	dev := Base(BaseParams{Debug: true})
	assert.Equal(t, "development", dev["mode"])
	assert.Equal(t, "minimal", dev["stats"])
	assert.NotContains(t, dev, "bail")

	prod := Base(BaseParams{Verbose: true})
	assert.Equal(t, "production", prod["mode"])
	assert.Equal(t, "source-map", prod["devtool"])
	assert.Equal(t, "verbose", prod["stats"])
	assert.Equal(t, true, prod["bail"])

	// every call builds fresh maps
	dev["output"].(map[string]any)["path"] = "build"
	assert.Equal(t, "dist", Base(BaseParams{Debug: true})["output"].(map[string]any)["path"])
}
