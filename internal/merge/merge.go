// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package merge

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Strategy controls how two lists found at the same key path are combined.
type Strategy int

const (
	// Append places the later list after the earlier one.
	Append Strategy = iota
	// Prepend places the later list before the earlier one.
	Prepend
	// Replace discards the earlier list.
	Replace
)

func (s Strategy) String() string {
	switch s {
	case Append:
		return "append"
	case Prepend:
		return "prepend"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "append", "":
		return Append, nil
	case "prepend":
		return Prepend, nil
	case "replace":
		return Replace, nil
	default:
		return Append, fmt.Errorf("unknown merge strategy %q", name)
	}
}

// Merger merges configuration values. The zero value appends every list.
type Merger struct {
	strategies map[string]Strategy
}

// Option configures a Merger.
type Option func(*Merger)

// WithStrategy sets the list strategy for a dotted key path such as "entry"
// or "module.rules".
func WithStrategy(path string, s Strategy) Option {
	return func(m *Merger) {
		if m.strategies == nil {
			m.strategies = make(map[string]Strategy)
		}
		m.strategies[path] = s
	}
}

// WithReplace marks every given key path with the Replace strategy.
func WithReplace(paths ...string) Option {
	return func(m *Merger) {
		for _, p := range paths {
			WithStrategy(p, Replace)(m)
		}
	}
}

// New returns a Merger configured with opts.
func New(opts ...Option) *Merger {
	m := &Merger{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Strategies returns a copy of the configured path strategies.
func (m *Merger) Strategies() map[string]Strategy {
	if m == nil {
		return nil
	}
	return maps.Clone(m.strategies)
}

// Merge reduces values left to right. Merge() is nil and Merge(v) is a deep
// copy of v.
func (m *Merger) Merge(values ...any) any {
	var out any
	for i, v := range values {
		if i == 0 {
			out = Clone(v)
			continue
		}
		out = m.merge("", out, v)
	}
	return out
}

// Objects merges maps left to right and always returns a non-nil map.
func (m *Merger) Objects(objs ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, o := range objs {
		if o == nil {
			continue
		}
		out = m.mergeObject("", out, o)
	}
	return out
}

func (m *Merger) merge(path string, dst, src any) any {
	if src == nil {
		return dst
	}
	if dstObj, ok := asObject(dst); ok {
		if srcObj, ok := asObject(src); ok {
			return m.mergeObject(path, dstObj, srcObj)
		}
	}
	if dstList, ok := asList(dst); ok {
		if srcList, ok := asList(src); ok {
			return m.mergeList(path, dstList, srcList)
		}
	}
	return Clone(src)
}

func (m *Merger) mergeObject(path string, dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = Clone(v)
	}
	// Sorted so nested strategy lookups are visited deterministically.
	for _, key := range slices.Sorted(maps.Keys(src)) {
		value := src[key]
		existing, ok := out[key]
		if !ok {
			if value != nil {
				out[key] = Clone(value)
			}
			continue
		}
		out[key] = m.merge(join(path, key), existing, value)
	}
	return out
}

func (m *Merger) mergeList(path string, dst, src []any) []any {
	strategy := Append
	if m != nil {
		if s, ok := m.strategies[path]; ok {
			strategy = s
		}
	}
	switch strategy {
	case Replace:
		return cloneList(src)
	case Prepend:
		return append(cloneList(src), cloneList(dst)...)
	default:
		return append(cloneList(dst), cloneList(src)...)
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// Clone returns a deep copy of v with every object normalised to
// map[string]any and every list to []any.
func Clone(v any) any {
	if obj, ok := asObject(v); ok {
		out := make(map[string]any, len(obj))
		for k, val := range obj {
			out[k] = Clone(val)
		}
		return out
	}
	if list, ok := asList(v); ok {
		return cloneList(list)
	}
	return v
}

func cloneList(list []any) []any {
	out := make([]any, len(list))
	for i, v := range list {
		out[i] = Clone(v)
	}
	return out
}

// asObject reports whether v is a map with string keys. Typed maps are
// converted; map[string]any is returned as is.
func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// asList reports whether v is a slice or array other than []byte.
func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		return t, true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
