// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/akedrou/textdiff"
)

// Drift returns a unified diff from the file at path to fresh. The diff is
// empty when they match; a missing file diffs against empty content.
func Drift(path string, fresh []byte) (string, error) {
	// #nosec G304 -- paths are provided by the operator via CLI flags
	current, err := os.ReadFile(filepath.Clean(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if string(current) == string(fresh) {
		return "", nil
	}
	return textdiff.Unified(path, path+" (composed)", string(current), string(fresh)), nil
}
