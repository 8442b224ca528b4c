// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package compose

import (
	"fmt"
	"strings"
)

// Reason classifies a fatal validation failure.
type Reason string

const (
	ReasonMissingDependencies Reason = "missing_dependencies"
	ReasonMissingTSConfig     Reason = "missing_tsconfig"
)

// FatalError aborts a composition. No partial configuration is produced.
// The diagnostic for the user is in Hint.
type FatalError struct {
	Reason  Reason
	Missing []string
	Hint    string
	Err     error
}

func (e *FatalError) Error() string {
	switch e.Reason {
	case ReasonMissingDependencies:
		return fmt.Sprintf("missing dependencies: %s", strings.Join(e.Missing, " "))
	case ReasonMissingTSConfig:
		if e.Err != nil {
			return fmt.Sprintf("tsconfig.json required: %v", e.Err)
		}
		return "tsconfig.json required"
	}
	return string(e.Reason)
}

func (e *FatalError) Unwrap() error { return e.Err }

// ExitCode is the process exit status for this failure. It is 0: a failed
// validation is reported, not treated as a crash.
func (e *FatalError) ExitCode() int { return 0 }

// Warning is a non-fatal finding attached to a successful composition.
type Warning struct {
	Code    string
	Message string
}

// WarnPolyfillMissing is the code of the polyfill advisory.
const WarnPolyfillMissing = "polyfill_missing"

func (w Warning) String() string { return w.Message }
