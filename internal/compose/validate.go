// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package compose

import (
	"fmt"
	"strings"

	"github.com/ManuGH/jellyweb/internal/config"
	"github.com/ManuGH/jellyweb/internal/deps"
	"github.com/ManuGH/jellyweb/internal/feature"
)

const (
	installHint  = "Some packages are not installed, install these packages by running\n\nyarn add %s --dev\n"
	tsconfigHint = "When enabling typescript, tsconfig.json is required!\nYou can use `jellyweb init --ts` to generate one"
	tsconfigFile = "tsconfig.json"
)

// Validate gates a composition on its environment. It returns a
// *FatalError when a declared or essential package is not installed, or
// when typescript is enabled and tsconfig.json does not resolve. Both checks
// are skipped when disableDepCheck is set.
func Validate(features []feature.Feature, opts config.Options, checker deps.Checker, resolver deps.Resolver) error {
	if opts.Enabled(config.KeyDisableDepCheck) {
		return nil
	}

	var pkgs []string
	for _, f := range features {
		pkgs = append(pkgs, f.Dependency...)
	}
	pkgs = append(pkgs, deps.Essential()...)

	if missing := deps.Missing(checker, pkgs); len(missing) > 0 {
		return &FatalError{
			Reason:  ReasonMissingDependencies,
			Missing: missing,
			Hint:    fmt.Sprintf(installHint, strings.Join(missing, " ")),
		}
	}

	for _, f := range features {
		if f.Key != feature.Typescript {
			continue
		}
		if _, err := resolver.Resolve(tsconfigFile); err != nil {
			return &FatalError{
				Reason: ReasonMissingTSConfig,
				Hint:   tsconfigHint,
				Err:    err,
			}
		}
		break
	}
	return nil
}
