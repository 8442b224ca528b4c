// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package feature

import "errors"

var (
	// ErrInvalidParams is returned when a feature's parameter object does not
	// decode into the feature's parameters.
	ErrInvalidParams = errors.New("invalid feature parameters")
	// ErrInvalidFragment is returned for fragments without a target, rule
	// fragments that are not objects, or a __type that disagrees with the
	// target.
	ErrInvalidFragment = errors.New("invalid fragment")
	// ErrInvalidCatalog is returned when a catalog fails construction checks.
	ErrInvalidCatalog = errors.New("invalid feature catalog")
)
