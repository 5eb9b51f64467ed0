package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"ishan.sh/internal/metrics"
)

// Watcher reloads a projects file into a Store whenever it changes on disk.
// A file that fails to parse leaves the previous projects in place
type Watcher struct {
	path     string
	store    *Store
	logger   *zap.Logger
	debounce time.Duration
}

// NewWatcher creates a Watcher for path
func NewWatcher(path string, store *Store, logger *zap.Logger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		store:    store,
		logger:   logger,
		debounce: 200 * time.Millisecond, // editors write in bursts
	}
}

// Reload reads the file once and swaps it into the store on success
func (w *Watcher) Reload() error {
	projects, err := LoadFile(w.path)
	if err != nil {
		metrics.IncrementContentReload("error")
		return err
	}
	w.store.Replace(projects)
	metrics.IncrementContentReload("ok")
	return nil
}

// Run watches the file's directory until ctx is cancelled. The directory is
// watched rather than the file so that atomic renames by editors are seen
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.logger.Info("Watching projects file", zap.String("path", w.path))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := w.Reload(); err != nil {
				w.logger.Warn("Keeping previous projects", zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.logger.Info("Reloaded projects",
				zap.String("path", w.path),
				zap.Int("count", len(w.store.Projects().Projects)))
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}
