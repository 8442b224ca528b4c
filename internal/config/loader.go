// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ManuGH/jellyweb/internal/log"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultOptionsFile is looked up in the project root when no path is given.
const DefaultOptionsFile = "jellyweb.yaml"

// Loader handles option loading with precedence
type Loader struct {
	optionsPath     string
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
	logger          zerolog.Logger
}

// NewLoader creates a new option loader. An empty path loads defaults and
// environment only.
func NewLoader(optionsPath string) *Loader {
	return &Loader{
		optionsPath:     optionsPath,
		ConsumedEnvKeys: make(map[string]struct{}),
		logger:          log.WithComponent("config"),
	}
}

// Load loads options with precedence: ENV > File > Defaults, then validates
// the result against the options schema.
func (l *Loader) Load() (Options, error) {
	registry, err := GetRegistry()
	if err != nil {
		return nil, fmt.Errorf("get registry: %w", err)
	}

	// 1. Defaults
	opts := registry.Defaults()

	// 2. File
	if l.optionsPath != "" {
		fileOpts, err := l.loadFile(l.optionsPath)
		if err != nil {
			return nil, fmt.Errorf("load options file: %w", err)
		}
		if err := checkKnown(registry, fileOpts); err != nil {
			return nil, fmt.Errorf("%s: %w", l.optionsPath, err)
		}
		checkDeprecations(l.logger, fileOpts)
		for k, v := range fileOpts {
			opts[k] = v
		}
	}

	// 3. Environment (highest priority)
	l.mergeEnv(registry, opts)

	// 4. Schema
	if err := Validate(opts); err != nil {
		return nil, err
	}

	l.logger.Debug().
		Str(log.FieldEvent, "config.options_loaded").
		Str(log.FieldPath, l.optionsPath).
		Int("keys", len(opts)).
		Msg("options loaded")
	return opts, nil
}

// mergeEnv applies JELLYWEB_* switches. A true switch keeps an existing
// parameter object; false always disables.
func (l *Loader) mergeEnv(registry *Registry, opts Options) {
	for _, e := range registry.Entries() {
		if e.Env == "" {
			continue
		}
		l.ConsumedEnvKeys[e.Env] = struct{}{}
		v, ok := ParseBool(e.Env)
		if !ok {
			continue
		}
		if v && Truthy(opts[e.Key]) {
			continue
		}
		opts[e.Key] = v
	}
}

// loadFile loads options from a YAML (or JSON) file. The document must be a
// single mapping.
func (l *Loader) loadFile(path string) (Options, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return Options(doc), nil
}

// Resolve fills registry defaults under in and validates the result. It is
// the entry point for callers that build options in code.
func Resolve(in map[string]any) (Options, error) {
	registry, err := GetRegistry()
	if err != nil {
		return nil, fmt.Errorf("get registry: %w", err)
	}
	if err := checkKnown(registry, in); err != nil {
		return nil, err
	}
	checkDeprecations(log.WithComponent("config"), in)
	opts := registry.Defaults()
	for k, v := range in {
		opts[k] = v
	}
	if err := Validate(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func checkKnown(registry *Registry, in map[string]any) error {
	var unknown []string
	for k := range in {
		if _, ok := registry.Lookup(k); !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return fmt.Errorf("%w: %s", ErrUnknownOption, strings.Join(unknown, ", "))
}

// LoadRaw loads a raw partial webpack configuration from a YAML or JSON file.
func LoadRaw(path string) (map[string]any, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, fmt.Errorf("load raw config: %w", err)
	}
	return doc, nil
}

// readDocument reads exactly one mapping document. JSON is parsed as YAML.
func readDocument(path string) (map[string]any, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".json" {
		return nil, fmt.Errorf("%w: %s (only YAML or JSON supported)", ErrUnsupportedFormat, ext)
	}

	// #nosec G304 -- paths are provided by the operator via CLI flags
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var doc map[string]any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s contains multiple documents or trailing content", path)
	}

	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
