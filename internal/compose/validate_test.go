// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package compose

import (
	"testing"

	"github.com/ManuGH/jellyweb/internal/config"
	"github.com/ManuGH/jellyweb/internal/deps"
	"github.com/ManuGH/jellyweb/internal/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DependenciesDeduplicatedInOrder(t *testing.T) {
	var asked []string
	checker := deps.CheckerFunc(func(pkg string) bool {
		asked = append(asked, pkg)
		return true
	})
	features := []feature.Feature{
		{Key: feature.CSS, Dependency: []string{"style-loader", "css-loader"}},
		{Key: feature.Sass, Dependency: []string{"style-loader", "css-loader", "sass-loader"}},
	}
	require.NoError(t, Validate(features, config.Options{}, checker, tsconfigOK))
	assert.Equal(t, []string{"style-loader", "css-loader", "sass-loader", "webpack", "webpack-cli"}, asked)
}

func TestValidate_EssentialsWithoutFeatures(t *testing.T) {
	checker := deps.CheckerFunc(func(pkg string) bool { return pkg != "webpack-cli" })
	err := Validate(nil, config.Options{}, checker, tsconfigOK)

	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, []string{"webpack-cli"}, fatal.Missing)
}

func TestValidate_DependenciesCheckedBeforeTSConfig(t *testing.T) {
	none := deps.CheckerFunc(func(string) bool { return false })
	features := []feature.Feature{{Key: feature.Typescript, Dependency: []string{"typescript"}}}

	err := Validate(features, config.Options{}, none, tsconfigGone)
	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, ReasonMissingDependencies, fatal.Reason)
}

func TestValidate_DisableDepCheckSkipsEverything(t *testing.T) {
	none := deps.CheckerFunc(func(string) bool { return false })
	features := []feature.Feature{{Key: feature.Typescript, Dependency: []string{"typescript"}}}
	opts := config.Options{config.KeyDisableDepCheck: true}

	assert.NoError(t, Validate(features, opts, none, tsconfigGone))
}
