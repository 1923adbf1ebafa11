package source

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/fsnotify/fsnotify"
)

// Walker collects file paths under a set of roots as the candidate set
// for serve mode. Watch keeps the set fresh while the service runs.
type Walker struct {
	roots       []string
	includeDirs bool

	mu    sync.RWMutex
	paths []string
}

func NewWalker(roots []string, includeDirs bool) *Walker {
	return &Walker{
		roots:       roots,
		includeDirs: includeDirs,
	}
}

// Walk rebuilds the candidate set from scratch. Roots that do not exist
// are skipped; walk failures inside an existing root are returned.
func (w *Walker) Walk() error {
	start := time.Now()

	conf := fastwalk.Config{
		Follow: true,
	}

	var paths []string

	for _, root := range w.roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}

		err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() && !w.includeDirs {
				return nil
			}

			paths = append(paths, path)

			return nil
		})
		if err != nil {
			return err
		}
	}

	w.mu.Lock()
	w.paths = paths
	w.mu.Unlock()

	slog.Info("source", "files", len(paths), "time", time.Since(start))

	return nil
}

// Paths returns a snapshot of the current candidate set.
func (w *Walker) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]string, len(w.paths))
	copy(out, w.paths)

	return out
}

// Watch re-walks the roots whenever something is created, removed or
// renamed beneath them, until ctx is done. Walk and watch failures while
// running are logged, not fatal.
func (w *Walker) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range w.roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}

		if err := watcher.Add(root); err != nil {
			slog.Warn("source", "watcher_add", err, "dir", root)
		}
	}

	slog.Info("source", "watcher", "started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			w.handleEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("source", "watcher", err)
		}
	}
}

func (w *Walker) handleEvent(event fsnotify.Event) {
	slog.Debug("source", "file_system_event", event)

	switch {
	case event.Op&fsnotify.Create == fsnotify.Create,
		event.Op&fsnotify.Remove == fsnotify.Remove,
		event.Op&fsnotify.Rename == fsnotify.Rename:
		if err := w.Walk(); err != nil {
			slog.Error("source", "walk", err)
		}
	}
}
