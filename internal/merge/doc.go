// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package merge implements the recursive configuration merge used to combine
// feature fragments, the base template and caller-supplied configs.
//
// Objects (map[string]any) merge key-wise and recurse. Lists concatenate
// (earlier values first) unless a strategy registered for the key path says
// otherwise. Any other value from a later source replaces the earlier one; a
// nil later value leaves the earlier value in place.
//
// Inputs are never mutated; results share no maps or slices with them.
package merge
