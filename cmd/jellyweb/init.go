// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ManuGH/jellyweb/internal/config"
	"github.com/ManuGH/jellyweb/internal/output"
	"github.com/spf13/cobra"
)

const tsconfigTemplate = `{
  "compilerOptions": {
    "target": "es2017",
    "module": "esnext",
    "moduleResolution": "node",
    "jsx": "react",
    "strict": true,
    "sourceMap": true,
    "esModuleInterop": true,
    "skipLibCheck": true
  },
  "include": ["src"]
}
`

func optionsTemplate(typescript bool) string {
	var b strings.Builder
	b.WriteString("# jellyweb options; run `jellyweb features` for every key\n")
	b.WriteString("defaultFeature: true\n")
	b.WriteString("css: true\n")
	b.WriteString("media:\n  dataUrl: 10000\n")
	if typescript {
		b.WriteString("typescript: true\n")
	}
	b.WriteString("production: false\n")
	return b.String()
}

type scaffoldFile struct {
	name    string
	content string
}

func newInitCommand(a *app) *cobra.Command {
	var withTS bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create jellyweb.yaml (and tsconfig.json with --ts) in the project root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files := []scaffoldFile{{config.DefaultOptionsFile, optionsTemplate(withTS)}}
			if withTS {
				files = append(files, scaffoldFile{"tsconfig.json", tsconfigTemplate})
			}

			for _, file := range files {
				path := filepath.Join(a.projectDir, file.name)
				created, err := output.WriteNew(cmd.Context(), path, []byte(file.content))
				if err != nil {
					return err
				}
				if created {
					a.reporter.Info(fmt.Sprintf("created %s", path))
				} else {
					a.reporter.Warn(fmt.Sprintf("%s already exists, left unchanged", path))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withTS, "ts", false, "also create tsconfig.json and enable typescript")
	return cmd
}
