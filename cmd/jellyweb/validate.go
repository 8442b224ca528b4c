// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"fmt"

	"github.com/ManuGH/jellyweb/internal/feature"
	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the options file without composing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.resolvedOptionsPath()
			if path == "" {
				path = "defaults"
			}

			opts, err := a.loadOptions()
			if err != nil {
				return fmt.Errorf("configuration error in %s: %w", path, err)
			}
			catalog, err := feature.Default()
			if err != nil {
				return err
			}
			features, err := catalog.Instantiate(opts)
			if err != nil {
				return fmt.Errorf("configuration error in %s: %w", path, err)
			}

			_, _ = fmt.Fprintf(a.stdout, "✓ %s is valid (%d features)\n", path, len(features))
			return nil
		},
	}
	cmd.Flags().BoolVar(&a.strictEnv, "strict", false, "fail on unknown JELLYWEB_* environment variables")
	return cmd
}
