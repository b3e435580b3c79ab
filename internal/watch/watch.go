// Package watch re-runs a callback when .view files change on disk.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/grindlemire/viewfmt/internal/errors"
	"github.com/grindlemire/viewfmt/internal/log"
)

// DefaultDebounce is the quiet period after the last event for a file
// before the callback runs.
const DefaultDebounce = 200 * time.Millisecond

// Extension is the file extension the watcher reacts to.
const Extension = ".view"

// Callback is invoked with the path of a changed file.
type Callback func(path string)

// Watcher watches files and directory trees for changes to .view files.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange Callback
	debounce time.Duration
	logger   *zap.SugaredLogger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a Watcher for paths. Directories are watched recursively,
// skipping hidden directories. A debounce of zero uses DefaultDebounce.
func New(paths []string, debounce time.Duration, onChange Callback) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		debounce: debounce,
		logger:   log.Named("watch"),
		timers:   make(map[string]*time.Timer),
	}

	for _, p := range paths {
		if err := w.add(p); err != nil {
			fw.Close()
			return nil, err
		}
	}

	return w, nil
}

// add watches a file, or a directory and every non-hidden directory below it.
func (w *Watcher) add(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Wrapf(err, "watching %s", root)
	}

	if !info.IsDir() {
		return errors.Wrapf(w.watcher.Add(root), "watching %s", root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		w.logger.Debugw("watching directory", "dir", path)
		return errors.Wrapf(w.watcher.Add(path), "watching %s", path)
	})
}

// Run dispatches events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.add(event.Name); err != nil {
				w.logger.Warnw("cannot watch new directory", "dir", event.Name, "error", err)
			}
			return
		}
	}

	if filepath.Ext(event.Name) != Extension {
		return
	}

	w.logger.Debugw("change detected", "file", event.Name, "op", event.Op.String())
	w.schedule(event.Name)
}

// schedule debounces events per path.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		// A newer event may have replaced this timer while it fired.
		if w.timers[path] == timer {
			delete(w.timers, path)
		}
		w.mu.Unlock()

		w.onChange(path)
	})
	w.timers[path] = timer
}

func (w *Watcher) stop() {
	w.mu.Lock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()

	if err := w.watcher.Close(); err != nil {
		w.logger.Warnw("closing watcher", "error", err)
	}
}
