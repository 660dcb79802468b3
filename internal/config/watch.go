package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for writes to settle.
const DefaultDebounce = 500 * time.Millisecond

// Watch reloads the file at path whenever it is written and passes each
// configuration that loads and validates to onChange. Invalid files are
// logged and skipped. Watch blocks until ctx is cancelled and then returns
// nil.
//
// The parent directory is watched rather than the file so editors that
// replace the file on save keep triggering reloads.
func Watch(ctx context.Context, path string, debounce time.Duration, logger *log.Logger, onChange func(*Config)) error {
	if logger == nil {
		logger = log.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}
	logger.Debug("watching config", "path", path)

	var timer <-chan time.Time
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event, path) {
				continue
			}
			timer = time.After(debounce)

		case <-timer:
			timer = nil
			cfg, err := LoadFile(path)
			if err != nil {
				logger.Warn("config reload failed", "path", path, "err", err)
				continue
			}
			logger.Info("config reloaded", "path", path, "universes", len(cfg.Universes))
			onChange(cfg)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "err", err)

		case <-ctx.Done():
			return nil
		}
	}
}

// relevant reports whether event touches the watched file.
func relevant(event fsnotify.Event, path string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(path)
}
