// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ManuGH/jellyweb/internal/compose"
	"github.com/ManuGH/jellyweb/internal/config"
	"github.com/ManuGH/jellyweb/internal/deps"
	"github.com/ManuGH/jellyweb/internal/log"
	"github.com/ManuGH/jellyweb/internal/merge"
	"github.com/ManuGH/jellyweb/internal/output"
	"github.com/ManuGH/jellyweb/internal/platform/fs"
	"github.com/ManuGH/jellyweb/internal/webpack"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
)

// maxRawConfigs is the number of raw partial configs a build accepts.
const maxRawConfigs = 2

// buildFlags are shared by build, check and watch.
type buildFlags struct {
	configs []string
	patches []string
	replace []string
	format  output.Format
	outPath string
}

func (f *buildFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVarP(&f.configs, "config", "c", nil, "raw webpack config (YAML or JSON), repeatable, later wins")
	flags.StringArrayVar(&f.patches, "patch", nil, "RFC 6902 patch applied to the result, repeatable")
	flags.StringSliceVar(&f.replace, "replace", nil, "dotted key paths whose lists are replaced instead of concatenated")
	flags.VarP(enumflag.New(&f.format, "format", output.FormatIDs, enumflag.EnumCaseInsensitive),
		"format", "f", "output format; can be 'json' or 'yaml'")
	flags.StringVarP(&f.outPath, "output", "o", "", "output file (default stdout)")
}

// outputFormat is the explicit --format, or the -o extension when --format
// was not given.
func (f *buildFlags) outputFormat(cmd *cobra.Command) output.Format {
	if cmd.Flags().Changed("format") || f.outPath == "" {
		return f.format
	}
	return output.FormatFromPath(f.outPath, f.format)
}

// watched lists the files a rebuild depends on.
func (f *buildFlags) watched(optionsPath string) []string {
	var paths []string
	if optionsPath != "" {
		paths = append(paths, optionsPath)
	}
	paths = append(paths, f.configs...)
	return append(paths, f.patches...)
}

// resolvedOptionsPath is --options, or jellyweb.yaml in the project root
// when that file exists.
func (a *app) resolvedOptionsPath() string {
	if a.optionsPath != "" {
		return a.optionsPath
	}
	candidate := filepath.Join(a.projectDir, config.DefaultOptionsFile)
	if fs.IsRegularFile(candidate) == nil {
		return candidate
	}
	return ""
}

func (a *app) loadOptions() (config.Options, error) {
	loader := config.NewLoader(a.resolvedOptionsPath())
	opts, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if err := loader.ValidateEnvUsage(os.Environ(), a.strictEnv); err != nil {
		return nil, err
	}
	if opts.Enabled(config.KeyVerbose) {
		if err := log.SetLevel("debug"); err != nil {
			logger := log.WithComponent("cli")
			logger.Warn().Err(err).Msg("enable debug logging")
		}
	}
	return opts, nil
}

// composed is one finished build: the result and its encoded form.
type composed struct {
	result compose.Result
	data   []byte
}

func (a *app) compose(ctx context.Context, cmd *cobra.Command, f *buildFlags) (composed, error) {
	if len(f.configs) > maxRawConfigs {
		return composed{}, usageError(fmt.Errorf("at most %d --config files, got %d", maxRawConfigs, len(f.configs)))
	}

	opts, err := a.loadOptions()
	if err != nil {
		return composed{}, err
	}

	raws := make([]webpack.Config, 0, len(f.configs))
	for _, path := range f.configs {
		raw, err := config.LoadRaw(path)
		if err != nil {
			return composed{}, fmt.Errorf("%s: %w", path, err)
		}
		raws = append(raws, raw)
	}

	project, err := deps.NewProject(a.projectDir)
	if err != nil {
		return composed{}, err
	}
	composer, err := compose.New(project, project,
		compose.WithMerger(merge.New(merge.WithReplace(f.replace...))))
	if err != nil {
		return composed{}, err
	}

	res, err := composer.Compose(ctx, opts, raws...)
	if err != nil {
		return composed{}, err
	}
	for _, w := range res.Warnings {
		a.reporter.Warn(w.Message)
	}

	cfg := res.Config
	for _, path := range f.patches {
		patch, err := output.LoadPatch(path)
		if err != nil {
			return composed{}, err
		}
		if cfg, err = output.ApplyPatch(cfg, patch); err != nil {
			return composed{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	res.Config = cfg

	data, err := output.Marshal(cfg, f.outputFormat(cmd))
	if err != nil {
		return composed{}, err
	}
	return composed{result: res, data: data}, nil
}

// emit writes a build to -o or stdout.
func (a *app) emit(ctx context.Context, f *buildFlags, c composed) error {
	if f.outPath == "" {
		_, err := a.stdout.Write(c.data)
		return err
	}
	if err := output.WriteFile(ctx, f.outPath, c.data); err != nil {
		return err
	}
	a.reporter.Info(fmt.Sprintf("wrote %s (%d features)", f.outPath, len(c.result.Features)))
	return nil
}
