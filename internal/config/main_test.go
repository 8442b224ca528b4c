// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"os"
	"strings"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Unset all JELLYWEB vars to ensure clean test environment
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "JELLYWEB_") {
			kv := strings.SplitN(e, "=", 2)
			if err := os.Unsetenv(kv[0]); err != nil {
				panic("failed to unset env: " + err.Error())
			}
		}
	}

	goleak.VerifyTestMain(m)
}
