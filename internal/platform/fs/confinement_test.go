// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfineRelPath(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "node_modules"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "tsconfig.json"), []byte("{}"), 0o600))

	// link_outside -> parent of the project root
	require.NoError(t, os.Symlink("..", filepath.Join(tmpDir, "link_outside")))

	tests := []struct {
		name       string
		target     string
		wantErr    bool
		wantEscape bool
		wantSuffix string
	}{
		{name: "existing file", target: "tsconfig.json", wantSuffix: "tsconfig.json"},
		{name: "missing file under existing dir", target: "node_modules/webpack/package.json", wantSuffix: filepath.Join("node_modules", "webpack", "package.json")},
		{name: "scoped package", target: "node_modules/@babel/core/package.json", wantSuffix: filepath.Join("@babel", "core", "package.json")},
		{name: "dots inside a name", target: "a..b", wantSuffix: "a..b"},
		{name: "traversal", target: "../outside.txt", wantErr: true, wantEscape: true},
		{name: "absolute", target: "/etc/passwd", wantErr: true},
		{name: "backslash", target: `node_modules\webpack`, wantErr: true},
		{name: "symlink escape", target: "link_outside/foo", wantErr: true, wantEscape: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConfineRelPath(tmpDir, tt.target)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantEscape {
					assert.ErrorIs(t, err, ErrOutsideRoot)
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(got))
			assert.Equal(t, tt.wantSuffix, got[len(got)-len(tt.wantSuffix):])
		})
	}
}

func TestConfineRelPath_MissingRoot(t *testing.T) {
	_, err := ConfineRelPath(filepath.Join(t.TempDir(), "missing"), "tsconfig.json")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o600))

	require.NoError(t, IsRegularFile(file))
	require.ErrorContains(t, IsRegularFile(dir), "not a regular file")
	require.ErrorIs(t, IsRegularFile(filepath.Join(dir, "nope")), os.ErrNotExist)
}
