// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package output

import (
	"context"
	"fmt"
	"os"

	"github.com/ManuGH/jellyweb/internal/log"
	"github.com/google/renameio/v2"
)

// WriteFile writes data to path atomically: readers see the old file or the
// complete new one, never a partial write.
func WriteFile(ctx context.Context, path string, data []byte) error {
	logger := log.FromContext(ctx)

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write data: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}

	logger.Debug().
		Str(log.FieldEvent, "output.written").
		Str(log.FieldPath, path).
		Int("bytes", len(data)).
		Msg("configuration written")
	return nil
}

// WriteNew writes data to path atomically unless path already exists.
func WriteNew(ctx context.Context, path string, data []byte) (bool, error) {
	if _, err := os.Lstat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := WriteFile(ctx, path, data); err != nil {
		return false, err
	}
	return true, nil
}
