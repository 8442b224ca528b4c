// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"fmt"
	"strings"

	"github.com/ManuGH/jellyweb/internal/config"
	"github.com/ManuGH/jellyweb/internal/feature"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newFeaturesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List every option and feature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := config.GetRegistry()
			if err != nil {
				return err
			}
			catalog, err := feature.Default()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(a.stdout)
			table.Header("Option", "Kind", "Group", "Env", "Default", "Summary")
			for _, e := range registry.Entries() {
				group := "-"
				if entry, ok := catalog.Lookup(feature.ID(e.Key)); ok {
					group = string(entry.Group)
				}
				kind := string(e.Kind)
				if e.Status == config.StatusDeprecated {
					kind += " (deprecated)"
				}
				if err := table.Append([]string{e.Key, kind, group, orDash(e.Env), orDash(defaultString(e.Default)), e.Summary}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}

func defaultString(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
