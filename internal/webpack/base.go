// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package webpack

// BaseParams parameterizes the base template.
type BaseParams struct {
	Verbose bool
	Debug   bool
}

// BaseFunc builds the base configuration every composition starts from.
type BaseFunc func(BaseParams) Config

// Base is the default base template.
func Base(p BaseParams) Config {
	cfg := Config{
		"output": map[string]any{
			"path":       "dist",
			"publicPath": "/",
		},
		"resolve": map[string]any{
			"extensions": []any{".js", ".jsx", ".ts", ".tsx", ".json"},
		},
		"stats": "minimal",
	}
	out := cfg["output"].(map[string]any)

	if p.Debug {
		cfg["mode"] = "development"
		cfg["devtool"] = "cheap-module-source-map"
		out["filename"] = "[name].js"
		out["pathinfo"] = true
		cfg["performance"] = map[string]any{"hints": false}
	} else {
		cfg["mode"] = "production"
		cfg["devtool"] = "source-map"
		cfg["bail"] = true
		out["filename"] = "[name].[chunkhash:8].js"
		out["chunkFilename"] = "[name].[chunkhash:8].chunk.js"
		cfg["performance"] = map[string]any{"hints": "warning"}
	}

	if p.Verbose {
		cfg["stats"] = "verbose"
	}
	return cfg
}
