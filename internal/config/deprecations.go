// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"slices"

	"github.com/ManuGH/jellyweb/internal/log"
	"github.com/rs/zerolog"
)

// Deprecation represents a deprecated option key.
type Deprecation struct {
	OldField        string // The deprecated key (e.g., "uglify")
	NewField        string // The replacement (e.g., "production.compress")
	DeprecatedSince string
	RemovalVersion  string
}

// deprecationRegistry contains all known deprecated option keys. Every key
// here is also a StatusDeprecated registry entry.
var deprecationRegistry = map[string]Deprecation{
	"uglify": {
		OldField:        "uglify",
		NewField:        "production.compress",
		DeprecatedSince: "0.4.0",
		RemovalVersion:  "1.0.0",
	},
}

// checkDeprecations logs a warning for every deprecated key present in in
// and returns the matches in key order.
func checkDeprecations(logger zerolog.Logger, in map[string]any) []Deprecation {
	var found []Deprecation
	for key := range in {
		if dep, ok := deprecationRegistry[key]; ok {
			found = append(found, dep)
		}
	}
	slices.SortFunc(found, func(a, b Deprecation) int {
		if a.OldField < b.OldField {
			return -1
		}
		if a.OldField > b.OldField {
			return 1
		}
		return 0
	})
	for _, dep := range found {
		logDeprecationWarning(logger, dep)
	}
	return found
}

func logDeprecationWarning(logger zerolog.Logger, dep Deprecation) {
	logger.Warn().
		Str(log.FieldEvent, "config.deprecated_option").
		Str("old_field", dep.OldField).
		Str("new_field", dep.NewField).
		Str("deprecated_since", dep.DeprecatedSince).
		Str("removal_version", dep.RemovalVersion).
		Msgf("deprecated option '%s' detected, please use '%s' instead (will be removed in %s)",
			dep.OldField, dep.NewField, dep.RemovalVersion)
}

// GetDeprecation looks up a deprecation by old key.
func GetDeprecation(oldField string) (Deprecation, bool) {
	dep, found := deprecationRegistry[oldField]
	return dep, found
}
