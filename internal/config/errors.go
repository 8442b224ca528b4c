// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import "errors"

var (
	// ErrUnknownOption classifies option keys that are not in the registry.
	// Use errors.Is(err, ErrUnknownOption) instead of string matching.
	ErrUnknownOption = errors.New("unknown option")

	// ErrInvalidOption classifies option values rejected by the options schema.
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ErrUnknownEnv is returned by strict env validation for unrecognised
// JELLYWEB_* variables.
var ErrUnknownEnv = errors.New("unknown environment variable")
