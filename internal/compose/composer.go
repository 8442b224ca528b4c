// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package compose

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/ManuGH/jellyweb/internal/config"
	"github.com/ManuGH/jellyweb/internal/deps"
	"github.com/ManuGH/jellyweb/internal/feature"
	"github.com/ManuGH/jellyweb/internal/log"
	"github.com/ManuGH/jellyweb/internal/merge"
	"github.com/ManuGH/jellyweb/internal/rules"
	"github.com/ManuGH/jellyweb/internal/webpack"
)

// Result is a successful composition.
type Result struct {
	Config   webpack.Config
	Features []feature.Feature
	Warnings []Warning
}

// Composer turns options and raw configs into one webpack configuration.
// A Composer holds no per-call state and may be reused.
type Composer struct {
	features *feature.Catalog
	rules    *rules.Catalog
	checker  deps.Checker
	resolver deps.Resolver
	base     webpack.BaseFunc
	merger   *merge.Merger
	marker   string
}

// Option configures a Composer.
type Option func(*Composer)

// WithFeatures replaces the feature catalog.
func WithFeatures(c *feature.Catalog) Option {
	return func(cp *Composer) { cp.features = c }
}

// WithRules replaces the rule builders.
func WithRules(c *rules.Catalog) Option {
	return func(cp *Composer) { cp.rules = c }
}

// WithBase replaces the base template.
func WithBase(fn webpack.BaseFunc) Option {
	return func(cp *Composer) { cp.base = fn }
}

// WithMerger sets the merger used for fragments and the final merge.
func WithMerger(m *merge.Merger) Option {
	return func(cp *Composer) { cp.merger = m }
}

// WithPolyfillMarker changes the module name the polyfill check looks for.
func WithPolyfillMarker(marker string) Option {
	return func(cp *Composer) { cp.marker = marker }
}

// New returns a Composer using the built-in catalogs and base template.
func New(checker deps.Checker, resolver deps.Resolver, opts ...Option) (*Composer, error) {
	if checker == nil || resolver == nil {
		return nil, errors.New("compose: checker and resolver are required")
	}
	c := &Composer{
		checker:  checker,
		resolver: resolver,
		rules:    rules.Default(),
		base:     webpack.Base,
		merger:   merge.New(),
		marker:   DefaultPolyfillMarker,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.features == nil {
		catalog, err := feature.Default()
		if err != nil {
			return nil, fmt.Errorf("feature catalog: %w", err)
		}
		c.features = catalog
	}
	return c, nil
}

// Compose builds the configuration for opts. Later raws win over earlier
// ones and over everything computed from opts.
//
// A *FatalError means validation failed and nothing was composed.
func (c *Composer) Compose(ctx context.Context, opts config.Options, raws ...webpack.Config) (Result, error) {
	if log.RunIDFromContext(ctx) == "" {
		ctx = log.ContextWithNewRunID(ctx)
	}
	logger := log.WithComponentFromContext(ctx, "compose")

	opts, err := withDefaults(opts)
	if err != nil {
		return Result{}, err
	}

	features, err := c.features.Instantiate(opts)
	if err != nil {
		return Result{}, fmt.Errorf("instantiate features: %w", err)
	}

	if err := Validate(features, opts, c.checker, c.resolver); err != nil {
		logger.Warn().
			Err(err).
			Str(log.FieldEvent, "compose.validation_failed").
			Msg("composition aborted")
		return Result{}, err
	}

	base := c.base(webpack.BaseParams{
		Verbose: opts.Enabled(config.KeyVerbose),
		Debug:   !opts.Enabled(config.KeyProduction),
	})

	sources := []any{base}
	if len(features) > 0 {
		computed, err := c.computed(features)
		if err != nil {
			return Result{}, err
		}
		sources = append(sources, computed)
	}
	for _, raw := range raws {
		sources = append(sources, raw)
	}

	cfg, _ := c.merger.Merge(sources...).(map[string]any)
	if cfg == nil {
		cfg = webpack.Config{}
	}

	warnings := CheckPolyfill(cfg, opts, c.marker)
	for _, w := range warnings {
		logger.Warn().
			Str(log.FieldEvent, "compose.warning").
			Str("code", w.Code).
			Msg(w.Message)
	}

	logger.Info().
		Str(log.FieldEvent, "compose.done").
		Int("features", len(features)).
		Int("raw_configs", len(raws)).
		Int("warnings", len(warnings)).
		Msg("configuration composed")

	return Result{Config: cfg, Features: features, Warnings: warnings}, nil
}

// withDefaults overlays opts on the registry defaults, so callers may pass
// options that never went through the loader.
func withDefaults(opts config.Options) (config.Options, error) {
	registry, err := config.GetRegistry()
	if err != nil {
		return nil, fmt.Errorf("get registry: %w", err)
	}
	out := registry.Defaults()
	maps.Copy(out, opts)
	return out, nil
}

// computed merges the common-group targets into top-level keys and sets
// module to {rules: ...} assembled from the rule-group targets.
func (c *Composer) computed(features []feature.Feature) (webpack.Config, error) {
	var ruleFeatures, commonFeatures []feature.Feature
	for _, f := range features {
		if f.Group == feature.GroupRule {
			ruleFeatures = append(ruleFeatures, f)
		} else {
			commonFeatures = append(commonFeatures, f)
		}
	}

	out := webpack.Config{}
	if len(commonFeatures) > 0 {
		common, err := MergeByTarget(commonFeatures, c.merger)
		if err != nil {
			return nil, fmt.Errorf("merge common targets: %w", err)
		}
		for _, k := range common.Keys() {
			v, _ := common.Get(k)
			out[k] = v
		}
	}

	ruleTargets, err := MergeByTarget(ruleFeatures, c.merger)
	if err != nil {
		return nil, fmt.Errorf("merge rule targets: %w", err)
	}
	moduleRules, err := rules.Assemble(ruleTargets, c.rules)
	if err != nil {
		return nil, fmt.Errorf("assemble rules: %w", err)
	}
	out["module"] = map[string]any{"rules": moduleRules}

	logger := log.WithComponent("compose")
	logger.Debug().
		Int(log.FieldRules, len(moduleRules)).
		Int("common_targets", len(out)-1).
		Msg("feature config computed")
	return out, nil
}
