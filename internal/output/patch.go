// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManuGH/jellyweb/internal/webpack"
	jsonpatch "github.com/evanphx/json-patch/v5"
	"gopkg.in/yaml.v3"
)

// Patch is an RFC 6902 patch.
type Patch = jsonpatch.Patch

var patchOptions = jsonpatch.ApplyOptions{
	SupportNegativeIndices:   true,
	EnsurePathExistsOnAdd:    true, // will create paths
	AllowMissingPathOnRemove: true,
}

// LoadPatch reads an RFC 6902 patch from a JSON or YAML file.
func LoadPatch(path string) (Patch, error) {
	// #nosec G304 -- paths are provided by the operator via CLI flags
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read patch: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		var ops []any
		if err := yaml.Unmarshal(data, &ops); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidPatch, path, err)
		}
		if data, err = json.Marshal(ops); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPatch, path, err)
		}
	}
	p, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPatch, path, err)
	}
	return p, nil
}

// ApplyPatch applies p to cfg and returns the patched copy. Integral numbers
// in the result are int64, all others float64.
func ApplyPatch(cfg webpack.Config, p Patch) (webpack.Config, error) {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	patched, err := p.ApplyWithOptions(doc, &patchOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.UseNumber()
	var out webpack.Config
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: patched document: %w", ErrInvalidPatch, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: patch removed the whole document", ErrInvalidPatch)
	}
	if err := normalizeNumbers(out); err != nil {
		return nil, fmt.Errorf("%w: patched document: %w", ErrInvalidPatch, err)
	}
	return out, nil
}

// normalizeNumbers replaces json.Number values in place.
func normalizeNumbers(v any) error {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			n, err := number(child)
			if err != nil {
				return err
			}
			t[k] = n
		}
	case []any:
		for i, child := range t {
			n, err := number(child)
			if err != nil {
				return err
			}
			t[i] = n
		}
	}
	return nil
}

func number(v any) (any, error) {
	n, ok := v.(json.Number)
	if !ok {
		return v, normalizeNumbers(v)
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("number %s: %w", n, err)
	}
	return f, nil
}
