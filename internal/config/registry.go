// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"fmt"
	"sync"
)

// Kind separates plain switches from options that enable a feature.
type Kind string

const (
	KindFlag    Kind = "flag"
	KindFeature Kind = "feature"
)

// Status defines the lifecycle state of an option.
type Status string

const (
	StatusActive     Status = "Active"
	StatusDeprecated Status = "Deprecated"
)

// Option keys read directly by the composer.
const (
	KeyVerbose         = "verbose"
	KeyDisableDepCheck = "disableDepCheck"
	KeyDefaultFeature  = "defaultFeature"
	KeyPolyfill        = "polyfill"
	KeyProduction      = "production"
	KeyTypescript      = "typescript"
)

// OptionEntry defines a single option's metadata.
type OptionEntry struct {
	Key     string // User-facing key (e.g. "disableDepCheck")
	Env     string // Environment variable (e.g. "JELLYWEB_DISABLE_DEP_CHECK")
	Kind    Kind
	Status  Status
	Default any // nil means "not set"
	Summary string
}

// Registry is the inventory of every recognised option.
type Registry struct {
	ByKey map[string]OptionEntry
	ByEnv map[string]OptionEntry
	order []string
}

var (
	globalRegistry    *Registry
	globalRegistryErr error
	registryOnce      sync.Once
)

// GetRegistry returns the global option registry.
// It returns an error if the registry contains duplicates.
func GetRegistry() (*Registry, error) {
	registryOnce.Do(func() {
		globalRegistry, globalRegistryErr = buildRegistry(registryEntries())
	})
	return globalRegistry, globalRegistryErr
}

func registryEntries() []OptionEntry {
	return []OptionEntry{
		// --- FLAGS ---
		{Key: KeyVerbose, Env: "JELLYWEB_VERBOSE", Kind: KindFlag, Default: false, Summary: "verbose webpack stats and debug logging"},
		{Key: KeyDisableDepCheck, Env: "JELLYWEB_DISABLE_DEP_CHECK", Kind: KindFlag, Default: false, Summary: "skip the installed-package check"},
		{Key: KeyPolyfill, Env: "JELLYWEB_POLYFILL", Kind: KindFlag, Summary: "warn when no entry includes babel-polyfill"},

		// --- RULE FEATURES ---
		{Key: KeyDefaultFeature, Env: "JELLYWEB_DEFAULT_FEATURE", Kind: KindFeature, Default: true, Summary: "javascript through babel-loader plus the file-loader fallback"},
		{Key: "babel", Kind: KindFeature, Summary: "babel-loader options (babelrc, merge)"},
		{Key: KeyTypescript, Env: "JELLYWEB_TYPESCRIPT", Kind: KindFeature, Summary: "ts-loader for .ts/.tsx, requires tsconfig.json"},
		{Key: "css", Kind: KindFeature, Summary: "style-loader and css-loader"},
		{Key: "sass", Kind: KindFeature, Summary: "sass-loader for .scss/.sass"},
		{Key: "graphql", Kind: KindFeature, Summary: "graphql-tag loader for .graphql/.gql"},
		{Key: "media", Kind: KindFeature, Summary: "url-loader for images and fonts (dataUrl limit)"},

		// --- COMMON FEATURES ---
		{Key: "define", Kind: KindFeature, Summary: "compile-time constants through DefinePlugin"},
		{Key: "node", Env: "JELLYWEB_NODE", Kind: KindFeature, Summary: "build for the node target"},
		{Key: "excludeExternals", Kind: KindFeature, Summary: "leave node_modules out of the bundle"},
		{Key: KeyProduction, Env: "JELLYWEB_PRODUCTION", Kind: KindFeature, Summary: "production mode and minification (compress)"},

		// --- DEPRECATED ---
		{Key: "uglify", Kind: KindFlag, Status: StatusDeprecated, Summary: "replaced by production.compress"},
	}
}

func buildRegistry(entries []OptionEntry) (*Registry, error) {
	r := &Registry{
		ByKey: make(map[string]OptionEntry, len(entries)),
		ByEnv: make(map[string]OptionEntry),
	}
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("registry entry without key (env %q)", e.Env)
		}
		if e.Status == "" {
			e.Status = StatusActive
		}
		if _, dup := r.ByKey[e.Key]; dup {
			return nil, fmt.Errorf("duplicate option key %q", e.Key)
		}
		r.ByKey[e.Key] = e
		r.order = append(r.order, e.Key)
		if e.Env != "" {
			if prev, dup := r.ByEnv[e.Env]; dup {
				return nil, fmt.Errorf("duplicate env %q for %q and %q", e.Env, prev.Key, e.Key)
			}
			r.ByEnv[e.Env] = e
		}
	}
	return r, nil
}

// Lookup returns the entry for key.
func (r *Registry) Lookup(key string) (OptionEntry, bool) {
	e, ok := r.ByKey[key]
	return e, ok
}

// Entries returns every entry in declaration order.
func (r *Registry) Entries() []OptionEntry {
	out := make([]OptionEntry, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.ByKey[k])
	}
	return out
}

// Features returns the feature entries in declaration order.
func (r *Registry) Features() []OptionEntry {
	var out []OptionEntry
	for _, e := range r.Entries() {
		if e.Kind == KindFeature {
			out = append(out, e)
		}
	}
	return out
}

// Defaults returns a fresh option map holding every non-nil default.
func (r *Registry) Defaults() Options {
	out := Options{}
	for _, e := range r.Entries() {
		if e.Default != nil {
			out[e.Key] = e.Default
		}
	}
	return out
}
