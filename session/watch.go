package session

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/RyanBlaney/sonido-spectra/logging"
)

// Watch calls onChange after path is written or recreated, coalescing
// bursts of events with a Debouncer of the given delay. It blocks until
// ctx is done.
//
// The parent directory is watched rather than the file so that editors
// which save by renaming a temporary file are still seen.
func Watch(ctx context.Context, path string, delay time.Duration, onChange func()) error {
	logger := logging.WithFields(logging.Fields{
		"component": "session",
		"function":  "Watch",
		"path":      path,
	})

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	debounce := NewDebouncer(delay)
	defer debounce.Stop()

	logger.Info("Watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, target) {
				continue
			}
			logger.Debug("File changed", logging.Fields{"op": event.Op.String()})
			debounce.Trigger(onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", logging.Fields{"error": err.Error()})
		}
	}
}

func relevant(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
