// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package compose

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ManuGH/jellyweb/internal/feature"
	"github.com/ManuGH/jellyweb/internal/log"
	"github.com/ManuGH/jellyweb/internal/merge"
)

// Targets holds one merged value per target in first-seen order.
type Targets struct {
	keys   []string
	values map[string]any
}

// Keys returns the targets in the order they were first contributed.
func (t Targets) Keys() []string { return slices.Clone(t.keys) }

// Get returns the merged value of target.
func (t Targets) Get(target string) (any, bool) {
	v, ok := t.values[target]
	return v, ok
}

// Len returns the number of targets.
func (t Targets) Len() int { return len(t.keys) }

// Map returns the targets as a plain map.
func (t Targets) Map() map[string]any {
	out := make(map[string]any, len(t.values))
	maps.Copy(out, t.values)
	return out
}

// MergeByTarget groups the fragments of features by target and merges each
// group into one value.
//
// Empty fragments are dropped. Within a group fragments merge in ascending
// priority, overrides last; equal priorities keep feature order, so among
// several overrides the last one wins. A group of one fragment yields that
// fragment's value unchanged.
func MergeByTarget(features []feature.Feature, m *merge.Merger) (Targets, error) {
	logger := log.WithComponent("compose")

	groups := make(map[string][]feature.Fragment)
	var order []string
	for _, f := range features {
		for _, fr := range f.Evaled {
			if fr.Empty() {
				continue
			}
			if fr.Target == "" {
				return Targets{}, fmt.Errorf("%w: feature %s fragment has no target", feature.ErrInvalidFragment, f.Key)
			}
			if _, seen := groups[fr.Target]; !seen {
				order = append(order, fr.Target)
			}
			groups[fr.Target] = append(groups[fr.Target], fr)
		}
	}

	out := Targets{keys: order, values: make(map[string]any, len(order))}
	for _, target := range order {
		group := groups[target]
		slices.SortStableFunc(group, func(a, b feature.Fragment) int {
			return feature.ComparePriority(a.Priority, b.Priority)
		})

		if len(group) == 1 {
			out.values[target] = group[0].Value
		} else {
			values := make([]any, len(group))
			for i, fr := range group {
				values[i] = fr.Value
			}
			out.values[target] = m.Merge(values...)
		}

		logger.Debug().
			Str(log.FieldTarget, target).
			Int(log.FieldFragments, len(group)).
			Str(log.FieldPriority, group[len(group)-1].Priority.String()).
			Msg("target merged")
	}
	return out, nil
}
