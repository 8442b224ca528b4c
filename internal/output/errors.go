// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package output

import "errors"

var (
	// ErrUnknownFormat is returned for an output format that has no encoder.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrInvalidPatch is returned when a patch document cannot be decoded
	// or applied.
	ErrInvalidPatch = errors.New("invalid patch")
)
