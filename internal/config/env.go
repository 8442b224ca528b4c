// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"os"
	"strings"

	"github.com/ManuGH/jellyweb/internal/log"
	"github.com/rs/zerolog"
)

// ParseBool reads a boolean environment variable. The second result is false
// when the variable is unset, empty or not a boolean.
func ParseBool(key string) (bool, bool) {
	return parseBoolWithLogger(log.WithComponent("config"), key)
}

func parseBoolWithLogger(logger zerolog.Logger, key string) (bool, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	if v == "" {
		logger.Debug().
			Str("key", key).
			Str(log.FieldSource, "default").
			Msg("ignoring empty environment variable")
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		logger.Debug().
			Str("key", key).
			Bool("value", true).
			Str(log.FieldSource, "environment").
			Msg("using environment variable")
		return true, true
	case "false", "0", "no", "off":
		logger.Debug().
			Str("key", key).
			Bool("value", false).
			Str(log.FieldSource, "environment").
			Msg("using environment variable")
		return false, true
	default:
		logger.Warn().
			Str("key", key).
			Str("value", v).
			Msg("invalid boolean in environment variable, ignoring")
		return false, false
	}
}
