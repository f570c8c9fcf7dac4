// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"
)

// configMsg carries a freshly reloaded configuration.
type configMsg struct {
	cfg *Config
}

// watchConfig calls load whenever the file at path is written or recreated,
// and sends each loaded configuration as a [configMsg]. Load errors are logged
// and the previous configuration stays in use. It returns when ctx is done.
func watchConfig(
	ctx context.Context,
	logger *slog.Logger,
	path string,
	load func() (*Config, error),
	send func(tea.Msg),
) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	// Watch the directory, not the file, as editors often replace files
	// rather than writing to them.
	if err = watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %q: %w", path, err)
	}

	logger.DebugContext(ctx, "watching config", "path", absPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != filepath.Base(absPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			logger.DebugContext(ctx, "config changed", "path", event.Name, "op", event.Op)

			cfg, err := load()
			if err != nil {
				logger.ErrorContext(ctx, "failed to reload config", "error", err)
				continue
			}
			send(configMsg{cfg: cfg})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WarnContext(ctx, "config watcher error", "error", err)
		}
	}
}
