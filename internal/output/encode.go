// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package output encodes composed configurations, writes them atomically,
// applies post-compose patches and reports drift against files on disk.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ManuGH/jellyweb/internal/webpack"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of the composed configuration.
type Format uint

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatIDs names each format for flag parsing.
var FormatIDs = map[Format][]string{
	FormatJSON: {"json"},
	FormatYAML: {"yaml", "yml"},
}

func (f Format) String() string {
	if ids, ok := FormatIDs[f]; ok {
		return ids[0]
	}
	return fmt.Sprintf("Format(%d)", uint(f))
}

// FormatFromPath picks the format by file extension, falling back to def.
func FormatFromPath(path string, def Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return def
}

// Marshal encodes cfg. JSON output is indented with two spaces and ends
// with a newline.
func Marshal(cfg webpack.Config, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes cfg to w in format f.
func Encode(w io.Writer, cfg webpack.Config, f Format) error {
	if cfg == nil {
		cfg = webpack.Config{}
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
