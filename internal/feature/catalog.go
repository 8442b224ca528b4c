// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package feature

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ManuGH/jellyweb/internal/config"
	"github.com/ManuGH/jellyweb/internal/log"
)

// Factory builds a feature from the full option map and the option's own
// value. It is only called for truthy values.
type Factory func(opts config.Options, value any) (Feature, error)

// Entry binds a feature ID to its factory.
type Entry struct {
	ID      ID
	Group   Group
	Factory Factory
}

// Catalog is an immutable, ordered set of feature entries.
type Catalog struct {
	entries []Entry
	byID    map[ID]Entry
}

// NewCatalog builds a catalog. Entries keep their order, which is also the
// instantiation order.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	c := &Catalog{byID: make(map[ID]Entry, len(entries))}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: entry without id", ErrInvalidCatalog)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate feature %q", ErrInvalidCatalog, e.ID)
		}
		if e.Factory == nil {
			return nil, fmt.Errorf("%w: feature %q has no factory", ErrInvalidCatalog, e.ID)
		}
		if !e.Group.valid() {
			return nil, fmt.Errorf("%w: feature %q has unknown group %q", ErrInvalidCatalog, e.ID, e.Group)
		}
		c.byID[e.ID] = e
		c.entries = append(c.entries, e)
	}
	return c, nil
}

var (
	defaultCatalog    *Catalog
	defaultCatalogErr error
	defaultOnce       sync.Once
)

// Default returns the built-in catalog, checked once against the option
// registry.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = buildDefault()
	})
	return defaultCatalog, defaultCatalogErr
}

func buildDefault() (*Catalog, error) {
	c, err := NewCatalog(builtinEntries()...)
	if err != nil {
		return nil, err
	}
	registry, err := config.GetRegistry()
	if err != nil {
		return nil, fmt.Errorf("get registry: %w", err)
	}
	if err := c.checkRegistry(registry); err != nil {
		return nil, err
	}
	return c, nil
}

// checkRegistry requires a one-to-one match between catalog IDs and the
// registry's feature options.
func (c *Catalog) checkRegistry(r *config.Registry) error {
	var errs []error
	for _, e := range c.entries {
		opt, ok := r.Lookup(string(e.ID))
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("feature %q is not a registered option", e.ID))
		case opt.Kind != config.KindFeature:
			errs = append(errs, fmt.Errorf("option %q is registered as %s", e.ID, opt.Kind))
		}
	}
	for _, opt := range r.Features() {
		if _, ok := c.byID[ID(opt.Key)]; !ok {
			errs = append(errs, fmt.Errorf("feature option %q has no catalog entry", opt.Key))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}

func builtinEntries() []Entry {
	return []Entry{
		// rule
		{ID: DefaultFeature, Group: GroupRule, Factory: newDefaultFeature},
		{ID: Babel, Group: GroupRule, Factory: newBabel},
		{ID: Typescript, Group: GroupRule, Factory: newTypescript},
		{ID: CSS, Group: GroupRule, Factory: newCSS},
		{ID: Sass, Group: GroupRule, Factory: newSass},
		{ID: GraphQL, Group: GroupRule, Factory: newGraphQL},
		{ID: Media, Group: GroupRule, Factory: newMedia},
		// common
		{ID: Define, Group: GroupCommon, Factory: newDefine},
		{ID: Node, Group: GroupCommon, Factory: newNode},
		{ID: ExcludeExternals, Group: GroupCommon, Factory: newExcludeExternals},
		{ID: Production, Group: GroupCommon, Factory: newProduction},
	}
}

// Entries returns the entries in declaration order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id ID) (Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Instantiate builds one feature per catalog entry whose option is truthy,
// in catalog order. Options without a catalog entry are ignored.
func (c *Catalog) Instantiate(opts config.Options) ([]Feature, error) {
	logger := log.WithComponent("feature")

	var out []Feature
	for _, e := range c.entries {
		v := opts[string(e.ID)]
		if !config.Truthy(v) {
			continue
		}
		f, err := e.Factory(opts, v)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", e.ID, err)
		}
		if f.Key == "" {
			f.Key = e.ID
		}
		if f.Group == "" {
			f.Group = e.Group
		}
		if f.Key != e.ID || f.Group != e.Group {
			return nil, fmt.Errorf("%w: factory for %s built %s/%s", ErrInvalidFragment, e.ID, f.Key, f.Group)
		}
		if err := f.Validate(); err != nil {
			return nil, err
		}
		logger.Debug().
			Str(log.FieldFeature, string(f.Key)).
			Str(log.FieldGroup, string(f.Group)).
			Int(log.FieldFragments, len(f.Evaled)).
			Msg("feature instantiated")
		out = append(out, f)
	}
	return out, nil
}

// decodeParams decodes the feature's parameter object into out.
func decodeParams(opts config.Options, id ID, out any) error {
	if err := opts.Decode(string(id), out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}
