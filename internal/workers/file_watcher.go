// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
)

var ErrInvalidDebounce = errors.New("debounce interval must be positive")

// FileWatcher reports changes of a single file. Bursts of events closer than
// the debounce interval collapse into one [ChangeHandler] call.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temporary file keep being observed.
type FileWatcher struct {
	path     string
	debounce time.Duration
	onChange ChangeHandler

	watcher *fsnotify.Watcher
	logger  *logger.Logger
}

// NewFileWatcher starts watching path. Events raised after it returns are
// delivered once [FileWatcher.Run] is running.
func NewFileWatcher(path string, debounce time.Duration, onChange ChangeHandler, logger *logger.Logger) (*FileWatcher, error) {
	if debounce <= 0 {
		return nil, ErrInvalidDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watched path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err = watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &FileWatcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		watcher:  watcher,
		logger:   logger,
	}, nil
}

// Run implements [Worker]. Handler errors are logged and do not stop the
// watcher.
func (f *FileWatcher) Run(ctx context.Context) error {
	defer f.watcher.Close()

	f.logger.Info().Str("path", f.path).Msg("watching site file for changes")

	// fired is written by the debounce timer and drained here, so the
	// handler always runs on this goroutine.
	fired := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			f.logger.Info().Str("path", f.path).Msg("file watcher stopped")
			return nil

		case event, ok := <-f.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != f.path || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}

			f.logger.Debug().Str("op", event.Op.String()).Msg("site file changed")

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(f.debounce, func() {
				select {
				case fired <- struct{}{}:
				default:
				}
			})

		case <-fired:
			if err := f.onChange(ctx, f.path); err != nil {
				f.logger.Err(err).Str("path", f.path).Msg("handling site file change failed")
			}

		case err, ok := <-f.watcher.Errors:
			if !ok {
				return nil
			}
			f.logger.Err(err).Msg("file watcher error")
		}
	}
}
