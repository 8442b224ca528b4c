// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ManuGH/jellyweb/internal/log"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce coalesces the burst of events editors emit per save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls back whenever one of a fixed set of files changes.
type Watcher struct {
	paths    []string
	debounce time.Duration
	logger   zerolog.Logger
}

// NewWatcher creates a watcher for paths. A non-positive debounce uses
// DefaultDebounce.
func NewWatcher(paths []string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		paths:    append([]string(nil), paths...),
		debounce: debounce,
		logger:   log.WithComponent("watch"),
	}
}

// Run blocks until ctx is done, calling onChange once per debounced burst of
// changes. onChange errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	if len(w.paths) == 0 {
		return fmt.Errorf("watch: no paths")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Directories are watched instead of files so editors that save through
	// rename keep being observed.
	tracked := make(map[string]struct{}, len(w.paths))
	dirs := make(map[string]struct{})
	for _, p := range w.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		tracked[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, seen := dirs[dir]; seen {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}

	w.logger.Info().
		Str(log.FieldEvent, "watch.started").
		Strs("paths", w.paths).
		Msg("watching for changes")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str(log.FieldEvent, "watch.stopped").Msg("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := tracked[abs]; !ok {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug().
				Str(log.FieldEvent, "watch.file_changed").
				Str(log.FieldPath, abs).
				Str("op", event.Op.String()).
				Msg("file changed")
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				w.logger.Error().
					Err(err).
					Str(log.FieldEvent, "watch.rebuild_failed").
					Msg("rebuild after change failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().
				Err(err).
				Str(log.FieldEvent, "watch.error").
				Msg("watcher error")
		}
	}
}
