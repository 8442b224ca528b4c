// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"errors"

	"github.com/ManuGH/jellyweb/internal/compose"
	"github.com/ManuGH/jellyweb/internal/config"
	"github.com/spf13/cobra"
)

func newWatchCommand(a *app) *cobra.Command {
	var (
		f        buildFlags
		debounce = config.DefaultDebounce
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild whenever the options or raw configs change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.outPath == "" {
				return usageError(errors.New("watch needs -o <file>"))
			}
			rebuild := func(ctx context.Context) error {
				c, err := a.compose(ctx, cmd, &f)
				if err != nil {
					var fatal *compose.FatalError
					if errors.As(err, &fatal) {
						a.reporter.Error(fatal.Hint)
						return nil
					}
					a.reporter.Error(err.Error())
					return err
				}
				return a.emit(ctx, &f, c)
			}

			paths := f.watched(a.resolvedOptionsPath())
			if len(paths) == 0 {
				return usageError(errors.New("nothing to watch: pass --options or --config"))
			}
			// Failures are reported by rebuild; keep watching so a fix is picked up.
			_ = rebuild(cmd.Context())
			return config.NewWatcher(paths, debounce).Run(cmd.Context(), rebuild)
		},
	}
	f.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", debounce, "wait this long after the last change before rebuilding")
	return cmd
}
