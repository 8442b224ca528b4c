// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"github.com/spf13/cobra"
)

func newBuildCommand(a *app) *cobra.Command {
	var f buildFlags
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compose the webpack configuration and write it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.compose(cmd.Context(), cmd, &f)
			if err != nil {
				return err
			}
			return a.emit(cmd.Context(), &f, c)
		},
	}
	f.register(cmd)
	return cmd
}
