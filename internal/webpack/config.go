// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package webpack holds the build-configuration value types and the base
// configuration template.
package webpack

import "maps"

// Config is a webpack configuration object or fragment. Values are plain
// JSON-like data: map[string]any, []any, strings, numbers, booleans.
type Config = map[string]any

// TypeKey is the internal discriminator carried by rule fragments. It routes
// a fragment to its rule builder and never appears in emitted configuration.
const TypeKey = "__type"

// StripType returns a shallow copy of rule without TypeKey.
func StripType(rule Config) Config {
	if _, ok := rule[TypeKey]; !ok {
		return maps.Clone(rule)
	}
	out := make(Config, len(rule)-1)
	for k, v := range rule {
		if k != TypeKey {
			out[k] = v
		}
	}
	return out
}

// Entries flattens the entry field into its paths. Entries may be a string,
// a list of strings, or an object of bundle name to string or list.
func Entries(entry any) []string {
	switch t := entry.(type) {
	case string:
		return []string{t}
	case []string:
		return append([]string(nil), t...)
	case []any:
		var out []string
		for _, v := range t {
			out = append(out, Entries(v)...)
		}
		return out
	case map[string]any:
		var out []string
		for _, k := range sortedKeys(t) {
			out = append(out, Entries(t[k])...)
		}
		return out
	case map[string]string:
		var out []string
		for _, k := range sortedKeys(t) {
			out = append(out, t[k])
		}
		return out
	case map[string][]string:
		var out []string
		for _, k := range sortedKeys(t) {
			out = append(out, t[k]...)
		}
		return out
	default:
		return nil
	}
}
