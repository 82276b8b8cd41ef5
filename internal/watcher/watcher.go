// Package watcher reloads unit catalogs when their files change on disk.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/conneroisu/quant/internal/catalog"
	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/internal/logging"
)

// CatalogWatcher watches catalog files with debouncing. Editors often save
// by renaming a temporary file over the original, so the parent directory
// is watched and events are filtered down to the registered catalogs.
type CatalogWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	catalogs  map[string]struct{}
	dirs      map[string]struct{}
	handlers  []ChangeHandler
	logger    logging.Logger
	mutex     sync.RWMutex
}

// ChangeEvent represents a file change event
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
	Size    int64
}

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// ChangeHandler handles a debounced batch of catalog changes.
type ChangeHandler func(ctx context.Context, events []ChangeEvent) error

// New creates a watcher that waits debounceDelay after the last change
// before handing a batch to the handlers.
func New(debounceDelay time.Duration, logger logging.Logger) (*CatalogWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Nop()
	}

	return &CatalogWatcher{
		watcher:   fsw,
		debouncer: NewDebouncer(debounceDelay),
		catalogs:  make(map[string]struct{}),
		dirs:      make(map[string]struct{}),
		logger:    logger.WithComponent("watcher"),
	}, nil
}

// AddHandler adds a change handler
func (w *CatalogWatcher) AddHandler(handler ChangeHandler) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.handlers = append(w.handlers, handler)
}

// AddCatalog starts watching one catalog file. The file does not have to
// exist yet, but its directory does.
func (w *CatalogWatcher) AddCatalog(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid catalog path %q: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if _, ok := w.dirs[dir]; !ok {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		w.dirs[dir] = struct{}{}
	}
	w.catalogs[abs] = struct{}{}
	return nil
}

// Catalogs returns the watched catalog paths, sorted.
func (w *CatalogWatcher) Catalogs() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	paths := make([]string, 0, len(w.catalogs))
	for p := range w.catalogs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Start runs the watcher until ctx is cancelled.
func (w *CatalogWatcher) Start(ctx context.Context) error {
	go w.debouncer.Run(ctx)
	go w.processEvents(ctx)
	go w.watchLoop(ctx)
	return nil
}

// Stop stops the file watcher and cleans up resources
func (w *CatalogWatcher) Stop() error {
	w.debouncer.stop()
	return w.watcher.Close()
}

func (w *CatalogWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if change, keep := w.translate(event); keep {
				w.debouncer.Add(change)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, err, "file watcher error")
		}
	}
}

// translate maps an fsnotify event on a watched catalog to a ChangeEvent.
func (w *CatalogWatcher) translate(event fsnotify.Event) (ChangeEvent, bool) {
	path, err := filepath.Abs(event.Name)
	if err != nil {
		return ChangeEvent{}, false
	}

	w.mutex.RLock()
	_, watched := w.catalogs[path]
	w.mutex.RUnlock()
	if !watched || event.Op == fsnotify.Chmod {
		return ChangeEvent{}, false
	}

	change := ChangeEvent{Path: path}
	switch {
	case event.Has(fsnotify.Create):
		change.Type = EventTypeCreated
	case event.Has(fsnotify.Write):
		change.Type = EventTypeModified
	case event.Has(fsnotify.Remove):
		change.Type = EventTypeDeleted
	case event.Has(fsnotify.Rename):
		change.Type = EventTypeRenamed
	default:
		change.Type = EventTypeModified
	}

	if info, err := os.Stat(path); err == nil {
		change.ModTime = info.ModTime()
		change.Size = info.Size()
	}
	return change, true
}

func (w *CatalogWatcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case events := <-w.debouncer.Output():
			w.mutex.RLock()
			handlers := w.handlers
			w.mutex.RUnlock()

			for _, handler := range handlers {
				if err := handler(ctx, events); err != nil {
					w.logger.Warn(ctx, err, "catalog reload failed")
				}
			}
		}
	}
}

// ReloadHandler returns a handler that reloads changed catalogs into the
// loader's registry. A catalog that disappeared has its units removed.
func ReloadHandler(loader *catalog.Loader, logger logging.Logger) ChangeHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return func(ctx context.Context, events []ChangeEvent) error {
		var errs []error
		for _, event := range events {
			if _, err := os.Stat(event.Path); os.IsNotExist(err) {
				loader.Unload(ctx, event.Path)
				continue
			}
			res, err := loader.Load(ctx, event.Path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			logger.Info(ctx, "catalog reloaded",
				"path", event.Path, "event", event.Type.String(), "units", res.Added)
		}
		return qerrors.CombineErrors(errs...)
	}
}
