// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// jellyweb composes a webpack configuration from feature options and raw
// partial configs.
//
// Usage:
//
//	jellyweb build --options jellyweb.yaml --config webpack.base.yaml -o webpack.json
//	jellyweb check -o webpack.json
//	jellyweb features
//
// Exit codes:
//   - 0: success, or a failed dependency check (reported on stderr)
//   - 1: error, or drift found by check
//   - 2: usage error
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
