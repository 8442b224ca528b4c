// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Options is the option map: option name to a boolean switch or a nested
// parameter object. Treat it as immutable once resolved.
type Options map[string]any

// Truthy reports whether v enables something: false, nil, "" and numeric
// zero are falsy, everything else (including empty objects) is truthy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Enabled reports whether the option key is set to a truthy value.
func (o Options) Enabled(key string) bool {
	return Truthy(o[key])
}

// Value returns the raw value for key.
func (o Options) Value(key string) (any, bool) {
	v, ok := o[key]
	return v, ok
}

// Clone returns a shallow copy; nested values are shared.
func (o Options) Clone() Options {
	return maps.Clone(o)
}

// Decode decodes the parameter object stored under key into out, a pointer
// to a struct with json tags. A bare boolean leaves out untouched so callers
// can pre-fill defaults.
func (o Options) Decode(key string, out any) error {
	v, ok := o[key]
	if !ok || v == nil {
		return nil
	}
	if _, isBool := v.(bool); isBool {
		return nil
	}
	if err := decode(v, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// we use this one so we don't need duplicate tags on every struct
func decode(input any, output any) error {
	cfg := &mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           output,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
