// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package rules

import "errors"

var (
	// ErrUnknownTarget is returned when a rule target has no builder.
	ErrUnknownTarget = errors.New("unknown rule target")
	// ErrInvalidRule is returned for rule fragments a builder cannot use.
	ErrInvalidRule = errors.New("invalid rule")
)
