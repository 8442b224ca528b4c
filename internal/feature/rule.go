// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package feature

import (
	"maps"

	"github.com/ManuGH/jellyweb/internal/config"
	"github.com/ManuGH/jellyweb/internal/merge"
	"github.com/ManuGH/jellyweb/internal/rules"
	"github.com/ManuGH/jellyweb/internal/webpack"
)

const (
	nodeModules    = "node_modules"
	mediaFileName  = "static/media/[name].[hash:8].[ext]"
	defaultDataURL = 10000
)

// rule tags fields with the kind and wraps them in a fragment.
func rule(kind rules.Kind, p Priority, fields webpack.Config) Fragment {
	v := make(webpack.Config, len(fields)+1)
	maps.Copy(v, fields)
	v[webpack.TypeKey] = string(kind)
	return Fragment{Target: string(kind), Priority: p, Value: v}
}

func newDefaultFeature(config.Options, any) (Feature, error) {
	return Feature{
		Key:        DefaultFeature,
		Group:      GroupRule,
		Dependency: []string{"babel-loader", "@babel/core", "file-loader"},
		Evaled: []Fragment{
			rule(rules.KindJS, Level(0), webpack.Config{
				"test":    `\.(js|mjs|jsx)$`,
				"exclude": nodeModules,
				"loader":  "babel-loader",
				"options": map[string]any{"cacheDirectory": true},
			}),
			rule(rules.KindFile, Level(0), webpack.Config{
				"exclude": []any{`\.(js|mjs|jsx|ts|tsx)$`, `\.html$`, `\.json$`},
				"loader":  "file-loader",
				"options": map[string]any{"name": mediaFileName},
			}),
		},
	}, nil
}

type babelParams struct {
	Babelrc bool           `json:"babelrc"`
	Merge   map[string]any `json:"merge"`
}

func newBabel(opts config.Options, _ any) (Feature, error) {
	var p babelParams
	if err := decodeParams(opts, Babel, &p); err != nil {
		return Feature{}, err
	}
	options := merge.New().Objects(
		map[string]any{
			"babelrc": p.Babelrc,
			"presets": []any{"@babel/preset-env"},
		},
		p.Merge,
	)
	return Feature{
		Key:        Babel,
		Group:      GroupRule,
		Dependency: []string{"@babel/preset-env"},
		Evaled: []Fragment{
			rule(rules.KindJS, Level(1), webpack.Config{"options": options}),
		},
	}, nil
}

type typescriptParams struct {
	TranspileOnly bool `json:"transpileOnly"`
}

func newTypescript(opts config.Options, _ any) (Feature, error) {
	var p typescriptParams
	if err := decodeParams(opts, Typescript, &p); err != nil {
		return Feature{}, err
	}
	return Feature{
		Key:        Typescript,
		Group:      GroupRule,
		Dependency: []string{"typescript", "ts-loader"},
		Evaled: []Fragment{
			rule(rules.KindTS, Level(0), webpack.Config{
				"test":    `\.tsx?$`,
				"exclude": nodeModules,
				"loader":  "ts-loader",
				"options": map[string]any{"transpileOnly": p.TranspileOnly},
			}),
		},
	}, nil
}

type styleParams struct {
	Modules bool `json:"modules"`
}

func cssLoader(modules bool, importLoaders int) map[string]any {
	return map[string]any{
		"loader": "css-loader",
		"options": map[string]any{
			"modules":       modules,
			"importLoaders": importLoaders,
		},
	}
}

func newCSS(opts config.Options, _ any) (Feature, error) {
	var p styleParams
	if err := decodeParams(opts, CSS, &p); err != nil {
		return Feature{}, err
	}
	return Feature{
		Key:        CSS,
		Group:      GroupRule,
		Dependency: []string{"style-loader", "css-loader"},
		Evaled: []Fragment{
			rule(rules.KindCSS, Level(0), webpack.Config{
				"test": `\.css$`,
				"use":  []any{"style-loader", cssLoader(p.Modules, 1)},
			}),
		},
	}, nil
}

func newSass(opts config.Options, _ any) (Feature, error) {
	var p styleParams
	if err := decodeParams(opts, Sass, &p); err != nil {
		return Feature{}, err
	}
	return Feature{
		Key:        Sass,
		Group:      GroupRule,
		Dependency: []string{"style-loader", "css-loader", "sass-loader", "sass"},
		Evaled: []Fragment{
			rule(rules.KindSass, Level(0), webpack.Config{
				"test": `\.s[ac]ss$`,
				"use":  []any{"style-loader", cssLoader(p.Modules, 2), "sass-loader"},
			}),
		},
	}, nil
}

func newGraphQL(config.Options, any) (Feature, error) {
	return Feature{
		Key:        GraphQL,
		Group:      GroupRule,
		Dependency: []string{"graphql", "graphql-tag"},
		Evaled: []Fragment{
			rule(rules.KindGraphQL, Level(0), webpack.Config{
				"test":    `\.(graphql|gql)$`,
				"exclude": nodeModules,
				"loader":  "graphql-tag/loader",
			}),
		},
	}, nil
}

type mediaParams struct {
	DataURL int `json:"dataUrl"`
}

func newMedia(opts config.Options, _ any) (Feature, error) {
	p := mediaParams{DataURL: defaultDataURL}
	if err := decodeParams(opts, Media, &p); err != nil {
		return Feature{}, err
	}
	return Feature{
		Key:        Media,
		Group:      GroupRule,
		Dependency: []string{"url-loader"},
		Evaled: []Fragment{
			rule(rules.KindMedia, Level(0), webpack.Config{
				"test":   []any{`\.bmp$`, `\.gif$`, `\.jpe?g$`, `\.png$`, `\.svg$`, `\.woff2?$`},
				"loader": "url-loader",
				"options": map[string]any{
					"limit": p.DataURL,
					"name":  mediaFileName,
				},
			}),
			rule(rules.KindFile, Level(1), webpack.Config{
				"options": map[string]any{"name": mediaFileName},
			}),
		},
	}, nil
}
