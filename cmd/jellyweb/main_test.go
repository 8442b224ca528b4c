// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ManuGH/jellyweb/internal/log"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	for _, kv := range os.Environ() {
		if k, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, "JELLYWEB_") {
			_ = os.Unsetenv(k)
		}
	}
	code := m.Run()
	log.Reset()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(code)
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// project returns a project root with an options file.
func project(t *testing.T, options string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "jellyweb.yaml", options)
	return dir
}

func decodeJSON(t *testing.T, data string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(data), &out), data)
	return out
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "version")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "jellyweb dev (commit: none")
}

func TestBuild_Stdout(t *testing.T) {
	dir := project(t, "disableDepCheck: true\ncss: true\n")
	raw := writeFile(t, dir, "webpack.base.yaml", "entry:\n  main: ./src/index.js\noutput:\n  path: build\n")

	res := runCLI(t, "build", "-C", dir, "--config", raw)
	require.Equal(t, 0, res.code, res.stderr)

	cfg := decodeJSON(t, res.stdout)
	assert.Equal(t, map[string]any{"main": "./src/index.js"}, cfg["entry"])
	assert.Equal(t, "build", cfg["output"].(map[string]any)["path"])

	rules := cfg["module"].(map[string]any)["rules"].([]any)
	require.Len(t, rules, 1)
	assert.Contains(t, rules[0], "oneOf")
	assert.NotContains(t, res.stdout, "__type")
}

func TestBuild_MissingDependenciesExitZero(t *testing.T) {
	dir := project(t, "css: true\n")

	res := runCLI(t, "build", "-C", dir)
	assert.Equal(t, 0, res.code)
	assert.Empty(t, res.stdout, "no partial output")
	assert.Contains(t, res.stderr, "Some packages are not installed")
	assert.Contains(t, res.stderr, "yarn add babel-loader @babel/core file-loader style-loader css-loader webpack webpack-cli --dev")
}

func installPackages(t *testing.T, dir string, pkgs ...string) {
	t.Helper()
	for _, pkg := range pkgs {
		pkgDir := filepath.Join(dir, "node_modules", pkg)
		require.NoError(t, os.MkdirAll(pkgDir, 0o750))
		writeFile(t, pkgDir, "package.json", "{}")
	}
}

func TestBuild_InstalledDependencies(t *testing.T) {
	dir := project(t, "defaultFeature: false\nsass: true\n")
	installPackages(t, dir, "style-loader", "css-loader", "sass-loader", "sass", "webpack", "webpack-cli")

	res := runCLI(t, "build", "-C", dir, "--format", "yaml")
	require.Equal(t, 0, res.code, res.stderr)

	var cfg map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &cfg))
	rules := cfg["module"].(map[string]any)["rules"].([]any)
	require.Len(t, rules, 1)
	assert.Equal(t, `\.s[ac]ss$`, rules[0].(map[string]any)["test"])
}

func TestBuild_TypescriptWithoutTSConfig(t *testing.T) {
	dir := project(t, "typescript: true\n")
	installPackages(t, dir, "babel-loader", "@babel/core", "file-loader", "typescript", "ts-loader", "webpack", "webpack-cli")

	res := runCLI(t, "build", "-C", dir)
	assert.Equal(t, 0, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "When enabling typescript, tsconfig.json is required!")

	writeFile(t, dir, "tsconfig.json", "{}")
	res = runCLI(t, "build", "-C", dir)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "ts-loader")
}

func TestBuild_DisableDepCheckSkipsTSConfig(t *testing.T) {
	dir := project(t, "disableDepCheck: true\ntypescript: true\n")

	res := runCLI(t, "build", "-C", dir)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "ts-loader")
}

func TestBuild_PolyfillWarning(t *testing.T) {
	dir := project(t, "disableDepCheck: true\npolyfill: true\n")
	raw := writeFile(t, dir, "entry.json", `{"entry": ["./src/index.js"]}`)

	res := runCLI(t, "build", "-C", dir, "-c", raw)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "`babel-polyfill` should be placed in one of your entry config in order to work!")
	assert.NotEmpty(t, decodeJSON(t, res.stdout))
}

func TestBuild_ReplaceAndPatch(t *testing.T) {
	dir := project(t, "disableDepCheck: true\ndefaultFeature: false\n")
	a := writeFile(t, dir, "a.yaml", "entry: [./a.js]\n")
	b := writeFile(t, dir, "b.yaml", "entry: [./b.js]\n")
	patch := writeFile(t, dir, "patch.yaml", "- op: replace\n  path: /mode\n  value: none\n")

	res := runCLI(t, "build", "-C", dir, "-c", a, "-c", b)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []any{"./a.js", "./b.js"}, decodeJSON(t, res.stdout)["entry"])

	res = runCLI(t, "build", "-C", dir, "-c", a, "-c", b, "--replace", "entry", "--patch", patch)
	require.Equal(t, 0, res.code, res.stderr)
	cfg := decodeJSON(t, res.stdout)
	assert.Equal(t, []any{"./b.js"}, cfg["entry"])
	assert.Equal(t, "none", cfg["mode"])
}

func TestBuild_UsageErrors(t *testing.T) {
	dir := project(t, "disableDepCheck: true\n")
	raw := writeFile(t, dir, "raw.yaml", "{}\n")

	res := runCLI(t, "build", "-C", dir, "-c", raw, "-c", raw, "-c", raw)
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "at most 2 --config files")

	res = runCLI(t, "build", "--no-such-flag")
	assert.Equal(t, 2, res.code)

	res = runCLI(t, "build", "-C", dir, "--format", "toml")
	assert.Equal(t, 2, res.code)
}

func TestBuild_BadOptions(t *testing.T) {
	dir := project(t, "disableDepCheck: true\nwebpack5: true\n")
	res := runCLI(t, "build", "-C", dir)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown option")
}

func TestBuildThenCheck(t *testing.T) {
	dir := project(t, "disableDepCheck: true\nnode: true\n")
	out := filepath.Join(dir, "webpack.yaml")

	res := runCLI(t, "build", "-C", dir, "-o", out)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "target: node", "format follows the -o extension")

	res = runCLI(t, "check", "-C", dir, "-o", out)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "is up to date")

	writeFile(t, dir, "jellyweb.yaml", "disableDepCheck: true\nnode: false\n")
	res = runCLI(t, "check", "-C", dir, "-o", out)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "-target: node")
	assert.Contains(t, res.stderr, "is out of date")

	res = runCLI(t, "check", "-C", dir)
	assert.Equal(t, 2, res.code)
}

func TestValidate(t *testing.T) {
	dir := project(t, "css:\n  modules: true\nmedia:\n  dataUrl: 4096\n")
	res := runCLI(t, "validate", "-C", dir)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "is valid (3 features)")

	bad := project(t, "media:\n  dataUrl: lots\n")
	res = runCLI(t, "validate", "-C", bad)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "configuration error in")

	res = runCLI(t, "validate", "--options", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, 1, res.code)
}

func TestFeatures(t *testing.T) {
	res := runCLI(t, "features")
	require.Equal(t, 0, res.code, res.stderr)
	for _, want := range []string{"defaultFeature", "excludeExternals", "JELLYWEB_PRODUCTION", "common", "deprecated"} {
		assert.Contains(t, res.stdout, want)
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	res := runCLI(t, "init", "-C", dir, "--ts")
	require.Equal(t, 0, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(dir, "jellyweb.yaml"))
	assert.FileExists(t, filepath.Join(dir, "tsconfig.json"))

	data, err := os.ReadFile(filepath.Join(dir, "jellyweb.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "typescript: true")

	res = runCLI(t, "validate", "-C", dir)
	assert.Equal(t, 0, res.code, res.stderr)

	res = runCLI(t, "init", "-C", dir)
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "already exists")
}

func TestWatch(t *testing.T) {
	dir := project(t, "disableDepCheck: true\n")
	out := filepath.Join(dir, "webpack.json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan int, 1)
	var stdout, stderr bytes.Buffer
	go func() {
		done <- run(ctx, []string{"watch", "-C", dir, "-o", out, "--debounce", "20ms"}, &stdout, &stderr)
	}()

	contains := func(s string) func() bool {
		return func() bool {
			data, err := os.ReadFile(out)
			return err == nil && strings.Contains(string(data), s)
		}
	}
	require.Eventually(t, contains(`"mode": "development"`), 5*time.Second, 20*time.Millisecond)

	writeFile(t, dir, "jellyweb.yaml", "disableDepCheck: true\nproduction: true\n")
	require.Eventually(t, contains(`"mode": "production"`), 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, 0, code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_NeedsOutput(t *testing.T) {
	res := runCLI(t, "watch")
	assert.Equal(t, 2, res.code)
}

func TestValidate_StrictEnv(t *testing.T) {
	dir := project(t, "css: true\n")
	t.Setenv("JELLYWEB_TYPESCRIP", "true")

	res := runCLI(t, "validate", "-C", dir)
	assert.Equal(t, 0, res.code, res.stderr)

	res = runCLI(t, "validate", "-C", dir, "--strict")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "JELLYWEB_TYPESCRIP")
}

func TestBuild_VerboseEnablesDebugLogging(t *testing.T) {
	dir := project(t, "disableDepCheck: true\nverbose: true\ncss: true\n")

	res := runCLI(t, "build", "-C", dir)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "feature config computed")

	quiet := project(t, "disableDepCheck: true\ncss: true\n")
	res = runCLI(t, "build", "-C", quiet)
	require.Equal(t, 0, res.code, res.stderr)
	assert.NotContains(t, res.stderr, "feature config computed")
}
