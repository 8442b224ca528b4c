// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package deps checks installed npm packages and project files.
package deps

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ManuGH/jellyweb/internal/platform/fs"
)

// ErrNotFound is returned when a project file does not resolve.
var ErrNotFound = errors.New("file not found in project")

// Checker reports whether an npm package is installed.
type Checker interface {
	Installed(pkg string) bool
}

// Resolver resolves a project-relative path to an existing file.
type Resolver interface {
	Resolve(rel string) (string, error)
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(pkg string) bool

func (f CheckerFunc) Installed(pkg string) bool { return f(pkg) }

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(rel string) (string, error)

func (f ResolverFunc) Resolve(rel string) (string, error) { return f(rel) }

// Essential returns the packages every build needs.
func Essential() []string {
	return []string{"webpack", "webpack-cli"}
}

// Project checks packages and files below one project root.
type Project struct {
	Root string
}

// NewProject returns a Project rooted at the absolute form of root.
func NewProject(root string) (*Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	return &Project{Root: abs}, nil
}

// Installed reports whether node_modules/<pkg>/package.json is a regular
// file inside the project root. Scoped names (@scope/name) are supported.
func (p *Project) Installed(pkg string) bool {
	if pkg == "" || strings.HasPrefix(pkg, "/") || strings.HasPrefix(pkg, ".") {
		return false
	}
	manifest := filepath.Join("node_modules", filepath.FromSlash(pkg), "package.json")
	path, err := fs.ConfineRelPath(p.Root, manifest)
	if err != nil {
		return false
	}
	return fs.IsRegularFile(path) == nil
}

// Resolve returns the absolute path of rel if it is a regular file inside
// the project root.
func (p *Project) Resolve(rel string) (string, error) {
	path, err := fs.ConfineRelPath(p.Root, rel)
	if err != nil {
		return "", err
	}
	if err := fs.IsRegularFile(path); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotFound, rel, err)
	}
	return path, nil
}

// Missing returns the packages in pkgs that c does not report installed,
// keeping order and dropping duplicates.
func Missing(c Checker, pkgs []string) []string {
	seen := make(map[string]struct{}, len(pkgs))
	var out []string
	for _, pkg := range pkgs {
		if _, dup := seen[pkg]; dup {
			continue
		}
		seen[pkg] = struct{}{}
		if !c.Installed(pkg) {
			out = append(out, pkg)
		}
	}
	return out
}
