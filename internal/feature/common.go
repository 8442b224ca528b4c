// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package feature

import (
	"encoding/json"
	"fmt"

	"github.com/ManuGH/jellyweb/internal/config"
)

// Top-level webpack keys written by common features.
const (
	targetPlugins      = "plugins"
	targetTarget       = "target"
	targetNode         = "node"
	targetExternals    = "externals"
	targetMode         = "mode"
	targetOptimization = "optimization"
	targetDevtool      = "devtool"
)

func common(target string, p Priority, v any) Fragment {
	return Fragment{Target: target, Priority: p, Value: v}
}

func plugin(name string, options map[string]any) map[string]any {
	return map[string]any{"plugin": name, "options": options}
}

// newDefine turns the option object into DefinePlugin definitions. Each
// value is emitted as its JSON source text.
func newDefine(_ config.Options, value any) (Feature, error) {
	defs := map[string]any{}
	switch v := value.(type) {
	case bool:
	case map[string]any:
		for k, raw := range v {
			src, err := json.Marshal(raw)
			if err != nil {
				return Feature{}, fmt.Errorf("%w: define %s: %w", ErrInvalidParams, k, err)
			}
			defs[k] = string(src)
		}
	default:
		return Feature{}, fmt.Errorf("%w: define must be an object, got %T", ErrInvalidParams, value)
	}
	return Feature{
		Key:   Define,
		Group: GroupCommon,
		Evaled: []Fragment{
			common(targetPlugins, Level(0), []any{plugin("DefinePlugin", defs)}),
		},
	}, nil
}

func newNode(config.Options, any) (Feature, error) {
	return Feature{
		Key:   Node,
		Group: GroupCommon,
		Evaled: []Fragment{
			common(targetTarget, Level(0), "node"),
			common(targetNode, Level(0), map[string]any{
				"__dirname":  false,
				"__filename": false,
			}),
		},
	}, nil
}

type externalsParams struct {
	Allowlist []string `json:"allowlist"`
}

func newExcludeExternals(opts config.Options, _ any) (Feature, error) {
	var p externalsParams
	if err := decodeParams(opts, ExcludeExternals, &p); err != nil {
		return Feature{}, err
	}
	allow := make([]any, 0, len(p.Allowlist))
	for _, a := range p.Allowlist {
		allow = append(allow, a)
	}
	return Feature{
		Key:        ExcludeExternals,
		Group:      GroupCommon,
		Dependency: []string{"webpack-node-externals"},
		Evaled: []Fragment{
			common(targetExternals, Level(0), []any{
				map[string]any{"type": "node-externals", "allowlist": allow},
			}),
		},
	}, nil
}

type productionParams struct {
	Compress bool `json:"compress"`
}

func newProduction(opts config.Options, _ any) (Feature, error) {
	p := productionParams{Compress: true}
	if err := decodeParams(opts, Production, &p); err != nil {
		return Feature{}, err
	}

	optimization := map[string]any{"minimize": p.Compress}
	var deps []string
	if p.Compress {
		optimization["minimizer"] = []any{plugin("TerserPlugin", map[string]any{"parallel": true})}
		deps = append(deps, "terser-webpack-plugin")
	}

	return Feature{
		Key:        Production,
		Group:      GroupCommon,
		Dependency: deps,
		Evaled: []Fragment{
			common(targetMode, Override(), "production"),
			common(targetOptimization, Override(), optimization),
			common(targetDevtool, Override(), "source-map"),
			common(targetPlugins, Level(0), []any{
				plugin("DefinePlugin", map[string]any{"process.env.NODE_ENV": `"production"`}),
			}),
		},
	}, nil
}
