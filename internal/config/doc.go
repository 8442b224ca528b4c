// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package config loads the jellyweb option map.
//
// Precedence, lowest to highest: registry defaults, the options file
// (jellyweb.yaml), JELLYWEB_* environment variables. Every key must be known to
// the option registry and the final map must satisfy the embedded JSON schema.
//
// The package also loads the raw partial webpack configs passed by the caller
// and watches option/config files for the watch command.
package config
