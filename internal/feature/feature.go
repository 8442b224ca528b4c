// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package feature defines feature instances, the fragments they contribute
// and the catalog that instantiates them from an option map.
package feature

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/ManuGH/jellyweb/internal/webpack"
)

// ID identifies a feature. It equals the option key that enables it.
type ID string

const (
	DefaultFeature   ID = "defaultFeature"
	Babel            ID = "babel"
	Typescript       ID = "typescript"
	CSS              ID = "css"
	Sass             ID = "sass"
	GraphQL          ID = "graphql"
	Media            ID = "media"
	Define           ID = "define"
	Node             ID = "node"
	ExcludeExternals ID = "excludeExternals"
	Production       ID = "production"
)

// Group decides how a feature's merged fragments are emitted.
type Group string

const (
	// GroupRule fragments become module rules.
	GroupRule Group = "rule"
	// GroupCommon fragments become top-level config keys.
	GroupCommon Group = "common"
)

func (g Group) valid() bool {
	return g == GroupRule || g == GroupCommon
}

// Priority orders fragments of one target before they are merged. Numeric
// levels merge in ascending order; an override merges after every numeric
// level. Later fragments win.
type Priority struct {
	override bool
	level    int
}

// Level returns a numeric priority.
func Level(n int) Priority {
	return Priority{level: n}
}

// Override returns the priority that sorts after every numeric level.
func Override() Priority {
	return Priority{override: true}
}

func (p Priority) IsOverride() bool { return p.override }

// Value returns the numeric level; it is zero for an override.
func (p Priority) Value() int { return p.level }

func (p Priority) String() string {
	if p.override {
		return "override"
	}
	return strconv.Itoa(p.level)
}

// ComparePriority orders a before b when a merges first. Overrides compare
// equal to each other.
func ComparePriority(a, b Priority) int {
	switch {
	case a.override && b.override:
		return 0
	case a.override:
		return 1
	case b.override:
		return -1
	}
	return cmp.Compare(a.level, b.level)
}

// Fragment is one piece of configuration a feature contributes to a target.
type Fragment struct {
	Target   string
	Priority Priority
	Value    any
}

// Empty reports whether the fragment carries nothing to merge.
func (f Fragment) Empty() bool {
	switch v := f.Value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	}
	return false
}

// Feature is one instantiated feature. Instances are built per composition
// and never mutated afterwards.
type Feature struct {
	Key        ID
	Group      Group
	Dependency []string
	Evaled     []Fragment
}

// Validate checks the feature's shape.
func (f Feature) Validate() error {
	if f.Key == "" {
		return fmt.Errorf("%w: feature without key", ErrInvalidFragment)
	}
	if !f.Group.valid() {
		return fmt.Errorf("%w: feature %s has unknown group %q", ErrInvalidFragment, f.Key, f.Group)
	}
	for i, fr := range f.Evaled {
		if fr.Target == "" {
			return fmt.Errorf("%w: feature %s fragment %d has no target", ErrInvalidFragment, f.Key, i)
		}
		if f.Group != GroupRule || fr.Empty() {
			continue
		}
		rule, ok := fr.Value.(webpack.Config)
		if !ok {
			return fmt.Errorf("%w: feature %s rule fragment %q is %T, want object", ErrInvalidFragment, f.Key, fr.Target, fr.Value)
		}
		if typ, ok := rule[webpack.TypeKey]; ok && typ != fr.Target {
			return fmt.Errorf("%w: feature %s fragment %q tagged %v", ErrInvalidFragment, f.Key, fr.Target, typ)
		}
	}
	return nil
}
