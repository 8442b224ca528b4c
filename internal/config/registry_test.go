// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRegistry(t *testing.T) {
	r, err := GetRegistry()
	require.NoError(t, err)

	e, ok := r.Lookup(KeyDisableDepCheck)
	require.True(t, ok)
	assert.Equal(t, KindFlag, e.Kind)
	assert.Equal(t, "JELLYWEB_DISABLE_DEP_CHECK", e.Env)

	_, ok = r.Lookup("webpack")
	assert.False(t, ok)

	for _, f := range r.Features() {
		assert.Equal(t, KindFeature, f.Kind, f.Key)
	}
}

func TestRegistryDefaults(t *testing.T) {
	r, err := GetRegistry()
	require.NoError(t, err)

	assert.Equal(t, Options{
		KeyVerbose:         false,
		KeyDisableDepCheck: false,
		KeyDefaultFeature:  true,
	}, r.Defaults())

	// Fresh map every call.
	d := r.Defaults()
	d[KeyVerbose] = true
	assert.Equal(t, false, r.Defaults()[KeyVerbose])
}

func TestRegistryEntriesKeepDeclarationOrder(t *testing.T) {
	r, err := GetRegistry()
	require.NoError(t, err)

	entries := r.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, KeyVerbose, entries[0].Key)
	assert.Equal(t, "uglify", entries[len(entries)-1].Key)
	assert.Equal(t, StatusDeprecated, entries[len(entries)-1].Status)
	assert.Equal(t, StatusActive, entries[0].Status, "empty status defaults to active")
}

func TestBuildRegistryRejectsDuplicates(t *testing.T) {
	_, err := buildRegistry([]OptionEntry{{Key: "a"}, {Key: "a"}})
	require.ErrorContains(t, err, `duplicate option key "a"`)

	_, err = buildRegistry([]OptionEntry{{Key: "a", Env: "X"}, {Key: "b", Env: "X"}})
	require.ErrorContains(t, err, `duplicate env "X"`)

	_, err = buildRegistry([]OptionEntry{{Env: "X"}})
	require.ErrorContains(t, err, "without key")
}
