// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService   = "service"
	FieldRunID     = "run_id"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Composition fields
	FieldFeature    = "feature"
	FieldGroup      = "group"
	FieldTarget     = "target"
	FieldPriority   = "priority"
	FieldFragments  = "fragments"
	FieldRules      = "rules"
	FieldDependency = "dependency"

	// Option fields
	FieldOption = "option"
	FieldSource = "source"

	// Path / output fields
	FieldPath   = "path"
	FieldFormat = "format"
)
