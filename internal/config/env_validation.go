// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"fmt"
	"slices"
	"strings"
)

// EnvPrefix is shared by every environment switch.
const EnvPrefix = "JELLYWEB_"

// RemovedEnvKey is a switch that is no longer read.
type RemovedEnvKey struct {
	Key     string
	Message string
}

// runtimeEnvKeys are read outside the option registry.
var runtimeEnvKeys = []string{
	"JELLYWEB_LOG_LEVEL",
}

var removedEnvKeys = []RemovedEnvKey{
	{
		Key:     "JELLYWEB_UGLIFY",
		Message: "minification is controlled by production.compress; setting is ignored",
	},
}

// ValidateEnvUsage detects unknown JELLYWEB_* keys in environ (dead flags or
// typos) and logs them. In strict mode any unknown key is an error.
func (l *Loader) ValidateEnvUsage(environ []string, strict bool) error {
	registry, err := GetRegistry()
	if err != nil {
		return fmt.Errorf("get registry: %w", err)
	}

	removed := make(map[string]string, len(removedEnvKeys))
	for _, k := range removedEnvKeys {
		removed[k.Key] = k.Message
	}

	var unknown []string
	for _, pair := range environ {
		key, _, _ := strings.Cut(pair, "=")
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		if _, ok := registry.ByEnv[key]; ok {
			continue
		}
		if slices.Contains(runtimeEnvKeys, key) {
			continue
		}
		if _, consumed := l.ConsumedEnvKeys[key]; consumed {
			continue
		}
		if msg, ok := removed[key]; ok {
			l.logger.Warn().
				Str("key", key).
				Msgf("removed env var is set: %s", msg)
			continue
		}
		unknown = append(unknown, key)
	}
	if len(unknown) == 0 {
		return nil
	}

	slices.Sort(unknown)
	for _, key := range unknown {
		l.logger.Warn().
			Str("key", key).
			Msg("unknown JELLYWEB env key detected (dead flag or typo)")
	}
	if strict {
		return fmt.Errorf("%w: %s", ErrUnknownEnv, strings.Join(unknown, ", "))
	}
	return nil
}
