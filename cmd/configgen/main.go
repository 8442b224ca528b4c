// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// configgen regenerates the option reference in docs/OPTIONS.md and the
// example options file from internal/config/registry.go.
//
// Usage:
//
//	go run ./cmd/configgen
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManuGH/jellyweb/internal/config"
	"gopkg.in/yaml.v3"
)

const (
	optionsDocPath     = "docs/OPTIONS.md"
	optionsExamplePath = "jellyweb.example.yaml"
)

const (
	docBeginMarker = "<!-- BEGIN GENERATED OPTIONS -->"
	docEndMarker   = "<!-- END GENERATED OPTIONS -->"
)

func main() {
	root, err := os.Getwd()
	if err != nil {
		fail(err)
	}

	registry, err := config.GetRegistry()
	if err != nil {
		fail(fmt.Errorf("get registry: %w", err))
	}
	entries := registry.Entries()

	if err := updateOptionsDoc(root, entries); err != nil {
		fail(err)
	}
	if err := writeExample(root, entries); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "configgen: %v\n", err)
	os.Exit(1)
}

func updateOptionsDoc(root string, entries []config.OptionEntry) error {
	path := filepath.Join(root, optionsDocPath)
	// #nosec G304 -- fixed path below the working directory
	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read options doc: %w", err)
	}
	if len(raw) == 0 {
		raw = []byte("# jellyweb options\n")
	}

	out := replaceGeneratedSection(string(raw), buildOptionsDoc(entries))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create docs dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(out), 0o600); err != nil {
		return fmt.Errorf("write options doc: %w", err)
	}
	return nil
}

func buildOptionsDoc(entries []config.OptionEntry) string {
	var b strings.Builder
	b.WriteString(docBeginMarker)
	b.WriteString("\n## Registry Options (Generated)\n\n")
	b.WriteString("This section is generated from `internal/config/registry.go`. Do not edit by hand.\n\n")

	for _, kind := range []config.Kind{config.KindFlag, config.KindFeature} {
		fmt.Fprintf(&b, "### %ss\n\n", kind)
		b.WriteString("| Key | Env | Default | Status | Summary |\n")
		b.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, entry := range entries {
			if entry.Kind != kind {
				continue
			}
			env := "-"
			if entry.Env != "" {
				env = fmt.Sprintf("`%s`", entry.Env)
			}
			def := "-"
			if entry.Default != nil {
				def = fmt.Sprintf("`%v`", entry.Default)
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n",
				entry.Key, env, def, entry.Status, entry.Summary)
		}
		b.WriteString("\n")
	}
	b.WriteString(docEndMarker)
	return b.String()
}

func replaceGeneratedSection(content string, generated string) string {
	start := strings.Index(content, docBeginMarker)
	end := strings.Index(content, docEndMarker)
	if start == -1 || end == -1 || end < start {
		return strings.TrimRight(content, "\n") + "\n\n" + generated + "\n"
	}
	end += len(docEndMarker)
	return content[:start] + generated + content[end:]
}

// buildExample renders every active option with its default, or false for
// options without one.
func buildExample(entries []config.OptionEntry) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range entries {
		if entry.Status == config.StatusDeprecated {
			continue
		}
		value := entry.Default
		if value == nil {
			value = false
		}
		var node yaml.Node
		if err := node.Encode(value); err != nil {
			return nil, fmt.Errorf("encode %s: %w", entry.Key, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: entry.Key, HeadComment: entry.Summary}
		doc.Content = append(doc.Content, key, &node)
	}

	var b strings.Builder
	b.WriteString("# Generated by cmd/configgen. Do not edit by hand.\n")
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func writeExample(root string, entries []config.OptionEntry) error {
	data, err := buildExample(entries)
	if err != nil {
		return fmt.Errorf("build example: %w", err)
	}
	path := filepath.Join(root, optionsExamplePath)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write example: %w", err)
	}
	return nil
}
