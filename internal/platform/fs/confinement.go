// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package fs resolves project-relative paths without letting them escape the
// project root.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot classifies paths that resolve outside the project root,
// lexically or through symlinks.
var ErrOutsideRoot = errors.New("path escapes project root")

// ConfineRelPath joins root and relTarget and ensures the result is physically
// underneath the resolved root. relTarget MUST be relative and use forward
// slashes.
func ConfineRelPath(root, relTarget string) (string, error) {
	// Block backslashes to prevent OS-specific bypasses on non-Windows systems
	if strings.Contains(relTarget, "\\") {
		return "", fmt.Errorf("path contains backslash: %s", relTarget)
	}

	cleanRel := filepath.Clean(filepath.FromSlash(relTarget))
	if filepath.IsAbs(cleanRel) {
		return "", fmt.Errorf("target path must be relative: %s", relTarget)
	}
	// Segment-based so ".." inside a file name stays legal.
	if escapes(cleanRel) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, relTarget)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid root path: %w", err)
	}
	realRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return "", err
		}
		realRoot = absRoot
	}

	return resolveAndCheck(realRoot, filepath.Join(realRoot, cleanRel))
}

// resolveAndCheck resolves symlinks of fullPath (or of its parent when it
// does not exist yet) and ensures the result stays within realRoot.
func resolveAndCheck(realRoot, fullPath string) (string, error) {
	realPath := fullPath
	if _, err := os.Lstat(fullPath); err == nil {
		rp, err := filepath.EvalSymlinks(fullPath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path: %w", err)
		}
		realPath = rp
	} else if rp, err := filepath.EvalSymlinks(filepath.Dir(fullPath)); err == nil {
		realPath = filepath.Join(rp, filepath.Base(fullPath))
	}

	rel, err := filepath.Rel(realRoot, realPath)
	if err != nil {
		return "", fmt.Errorf("rel computation failed: %w", err)
	}
	if escapes(rel) {
		return "", fmt.Errorf("%w via symlinks: %s", ErrOutsideRoot, realPath)
	}
	return realPath, nil
}

func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// IsRegularFile checks if path exists and is a regular file (not directory, device, etc).
func IsRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", path)
	}
	return nil
}
