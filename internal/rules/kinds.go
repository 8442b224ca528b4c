// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package rules

import (
	"maps"
	"slices"
)

func sortedKinds[V any](m map[Kind]V) []Kind {
	return slices.Sorted(maps.Keys(m))
}
