// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"errors"
	"fmt"

	"github.com/ManuGH/jellyweb/internal/output"
	"github.com/spf13/cobra"
)

func newCheckCommand(a *app) *cobra.Command {
	var f buildFlags
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail when the file given by -o differs from a fresh build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.outPath == "" {
				return usageError(errors.New("check needs -o <file>"))
			}
			c, err := a.compose(cmd.Context(), cmd, &f)
			if err != nil {
				return err
			}
			diff, err := output.Drift(f.outPath, c.data)
			if err != nil {
				return err
			}
			if diff != "" {
				_, _ = fmt.Fprint(a.stdout, diff)
				return &exitError{code: 1, err: fmt.Errorf("%s is out of date, run jellyweb build", f.outPath)}
			}
			a.reporter.Info(fmt.Sprintf("%s is up to date", f.outPath))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
