// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed options.schema.json
var optionsSchemaJSON []byte

const optionsSchemaURL = "options.schema.json"

var (
	optionsSchema    *jsonschema.Schema
	optionsSchemaErr error
	schemaOnce       sync.Once
)

// Schema returns the raw embedded options schema.
func Schema() []byte {
	return bytes.Clone(optionsSchemaJSON)
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		js, err := jsonschema.UnmarshalJSON(bytes.NewReader(optionsSchemaJSON))
		if err != nil {
			optionsSchemaErr = fmt.Errorf("parse options schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		compiler.DefaultDraft(jsonschema.Draft2020)
		if err := compiler.AddResource(optionsSchemaURL, js); err != nil {
			optionsSchemaErr = fmt.Errorf("add options schema: %w", err)
			return
		}
		optionsSchema, optionsSchemaErr = compiler.Compile(optionsSchemaURL)
	})
	return optionsSchema, optionsSchemaErr
}

// Validate checks opts against the options schema. Failures wrap
// ErrInvalidOption.
func Validate(opts Options) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so YAML-decoded numbers and typed Go values
	// reach the validator as plain JSON values.
	raw, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("%w: encode options: %v", ErrInvalidOption, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: decode options: %v", ErrInvalidOption, err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return nil
}
