// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package rules turns merged rule fragments into webpack module rules.
package rules

import (
	"fmt"

	"github.com/ManuGH/jellyweb/internal/webpack"
)

// Source is an ordered set of merged fragments keyed by target.
type Source interface {
	Keys() []string
	Get(key string) (any, bool)
}

// Assemble builds module.rules from merged rule fragments.
//
// Every target except file is passed to its builder in source order. The
// file target is the fallback: when present the result is a single
// {oneOf: [...rules, file]} group so that only the first matching rule
// applies, otherwise the rules are returned as a flat list. The __type
// discriminator is removed from every record.
func Assemble(src Source, builders *Catalog) ([]any, error) {
	var (
		built    []any
		fallback webpack.Config
	)
	for _, key := range src.Keys() {
		v, _ := src.Get(key)
		kind := Kind(key)
		records, err := build(builders, kind, v)
		if err != nil {
			return nil, err
		}
		if kind == KindFile {
			if len(records) != 1 {
				return nil, fmt.Errorf("%w: file builder returned %d records", ErrInvalidRule, len(records))
			}
			fallback = webpack.StripType(records[0])
			continue
		}
		for _, r := range records {
			built = append(built, webpack.StripType(r))
		}
	}

	if fallback == nil {
		if built == nil {
			built = []any{}
		}
		return built, nil
	}
	oneOf := append(built, fallback)
	return []any{map[string]any{"oneOf": oneOf}}, nil
}

func build(builders *Catalog, kind Kind, v any) ([]webpack.Config, error) {
	b, ok := builders.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, kind)
	}
	fragment, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s fragment is %T, want object", ErrInvalidRule, kind, v)
	}
	records, err := b(fragment)
	if err != nil {
		return nil, fmt.Errorf("build %s rule: %w", kind, err)
	}
	return records, nil
}
