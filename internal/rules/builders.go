// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package rules

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ManuGH/jellyweb/internal/merge"
	"github.com/ManuGH/jellyweb/internal/webpack"
)

// Kind is a rule target. Rule fragments are routed to builders by kind.
type Kind string

const (
	KindJS      Kind = "js"
	KindTS      Kind = "ts"
	KindCSS     Kind = "css"
	KindSass    Kind = "sass"
	KindGraphQL Kind = "graphql"
	KindMedia   Kind = "media"
	// KindFile is the catch-all fallback rule.
	KindFile Kind = "file"
)

// Builder turns the merged fragment of one kind into rule records.
type Builder func(webpack.Config) ([]webpack.Config, error)

// Catalog maps kinds to builders. It is immutable after construction.
type Catalog struct {
	builders map[Kind]Builder
}

// NewCatalog copies builders into a catalog.
func NewCatalog(builders map[Kind]Builder) *Catalog {
	return &Catalog{builders: maps.Clone(builders)}
}

// Default returns the built-in builders.
func Default() *Catalog {
	return NewCatalog(map[Kind]Builder{
		KindJS: withDefaults(webpack.Config{
			"test":    `\.(js|mjs|jsx)$`,
			"exclude": "node_modules",
			"loader":  "babel-loader",
		}),
		KindTS: withDefaults(webpack.Config{
			"test":    `\.tsx?$`,
			"exclude": "node_modules",
			"loader":  "ts-loader",
		}),
		KindCSS: withDefaults(webpack.Config{
			"test": `\.css$`,
			"use":  []any{"style-loader", "css-loader"},
		}),
		KindSass: withDefaults(webpack.Config{
			"test": `\.s[ac]ss$`,
			"use":  []any{"style-loader", "css-loader", "sass-loader"},
		}),
		KindGraphQL: withDefaults(webpack.Config{
			"test":    `\.(graphql|gql)$`,
			"exclude": "node_modules",
			"loader":  "graphql-tag/loader",
		}),
		KindMedia: withDefaults(webpack.Config{
			"test":   []any{`\.bmp$`, `\.gif$`, `\.jpe?g$`, `\.png$`},
			"loader": "url-loader",
		}),
		KindFile: withDefaults(webpack.Config{
			"loader": "file-loader",
		}),
	})
}

// Lookup returns the builder for kind.
func (c *Catalog) Lookup(kind Kind) (Builder, bool) {
	if c == nil {
		return nil, false
	}
	b, ok := c.builders[kind]
	return b, ok
}

// Kinds returns the registered kinds.
func (c *Catalog) Kinds() []Kind {
	if c == nil {
		return nil
	}
	return sortedKinds(c.builders)
}

var loaderKeys = []string{"use", "loader", "loaders"}

func hasLoader(rule webpack.Config) bool {
	for _, k := range loaderKeys {
		if _, ok := rule[k]; ok {
			return true
		}
	}
	return false
}

// withDefaults returns a builder emitting one record: the fragment with
// missing keys taken from defaults. A fragment that names its own loader
// (use, loader or loaders) gets none of the default loader keys.
func withDefaults(defaults webpack.Config) Builder {
	return func(fragment webpack.Config) ([]webpack.Config, error) {
		if _, ok := fragment["use"]; ok {
			if _, ok := fragment["loader"]; ok {
				return nil, fmt.Errorf("%w: both use and loader set", ErrInvalidRule)
			}
		}
		own := hasLoader(fragment)
		out := maps.Clone(fragment)
		if out == nil {
			out = webpack.Config{}
		}
		for k, v := range defaults {
			if _, ok := out[k]; ok {
				continue
			}
			if own && slices.Contains(loaderKeys, k) {
				continue
			}
			out[k] = merge.Clone(v)
		}
		return []webpack.Config{out}, nil
	}
}
