// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package compose

import (
	"fmt"

	"github.com/ManuGH/jellyweb/internal/config"
	"github.com/ManuGH/jellyweb/internal/webpack"
	"github.com/gobwas/glob"
)

// DefaultPolyfillMarker is the module name looked for in entry paths.
const DefaultPolyfillMarker = "babel-polyfill"

// CheckPolyfill warns when polyfill is enabled, the config has an entry, and
// no entry path contains marker. It never changes cfg.
func CheckPolyfill(cfg webpack.Config, opts config.Options, marker string) []Warning {
	if !opts.Enabled(config.KeyPolyfill) {
		return nil
	}
	entry, ok := cfg["entry"]
	if !ok || entry == nil {
		return nil
	}

	g := glob.MustCompile("*" + glob.QuoteMeta(marker) + "*")
	for _, path := range webpack.Entries(entry) {
		if g.Match(path) {
			return nil
		}
	}
	return []Warning{{
		Code:    WarnPolyfillMissing,
		Message: fmt.Sprintf("`%s` should be placed in one of your entry config in order to work!", marker),
	}}
}
