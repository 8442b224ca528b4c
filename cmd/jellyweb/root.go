// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ManuGH/jellyweb/internal/compose"
	"github.com/ManuGH/jellyweb/internal/log"
	"github.com/ManuGH/jellyweb/internal/report"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
)

type logFormat enumflag.Flag

const (
	logConsole logFormat = iota
	logJSON
)

var logFormatIDs = map[logFormat][]string{
	logConsole: {"console"},
	logJSON:    {"json"},
}

// exitError carries a specific exit status through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: 2, err: err}
}

// app holds the global flags and the writers every command reports to.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	reporter *report.Reporter

	projectDir  string
	optionsPath string
	logFormat   logFormat
	logLevel    string
	strictEnv   bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:     stdout,
		stderr:     stderr,
		reporter:   report.New(stderr),
		projectDir: ".",
		logLevel:   "warn",
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return a.exitCode(root.ExecuteContext(ctx))
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jellyweb",
		Short: "Compose webpack configurations from feature options",
		Long: `jellyweb builds a webpack configuration from a small options file.

Each enabled option (typescript, sass, graphql, ...) contributes fragments
that are merged by target and priority. Rule features become module.rules,
with the file loader as the catch-all; the result is merged over a base
template and under up to two raw partial configs.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.configureLogging(cmd.Flags().Changed("log-level"))
			return nil
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}} (commit: %s, built: %s)\n", commit, buildDate))
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.projectDir, "project", "C", a.projectDir, "project root (node_modules, tsconfig.json)")
	flags.StringVar(&a.optionsPath, "options", "", "options file (default <project>/jellyweb.yaml when present)")
	flags.Var(enumflag.New(&a.logFormat, "format", logFormatIDs, enumflag.EnumCaseInsensitive),
		"log-format", "log output; can be 'console' or 'json'")
	flags.StringVar(&a.logLevel, "log-level", a.logLevel, "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newBuildCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newValidateCommand(a))
	rootCmd.AddCommand(newFeaturesCommand(a))
	rootCmd.AddCommand(newWatchCommand(a))
	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newVersionCommand(a))

	return rootCmd
}

// configureLogging applies --log-level, or JELLYWEB_LOG_LEVEL when the flag
// was not given.
func (a *app) configureLogging(levelFlagSet bool) {
	format := "console"
	if a.logFormat == logJSON {
		format = "json"
	}
	level := a.logLevel
	if !levelFlagSet && os.Getenv("JELLYWEB_LOG_LEVEL") != "" {
		level = ""
	}
	log.Reset()
	log.Configure(log.Config{
		Level:  level,
		Format: format,
		Output: a.stderr,
	})
}

// exitCode reports err and maps it to the process exit status. A failed
// validation is reported and exits 0.
func (a *app) exitCode(err error) int {
	if err == nil {
		return 0
	}

	var fatal *compose.FatalError
	if errors.As(err, &fatal) {
		a.reporter.Error(fatal.Hint)
		return fatal.ExitCode()
	}

	var exit *exitError
	if errors.As(err, &exit) {
		if exit.err != nil {
			a.reporter.Error(exit.err.Error())
		}
		return exit.code
	}

	a.reporter.Error(err.Error())
	return 1
}
