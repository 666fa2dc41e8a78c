package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/ytget/galeria/internal/event"
	"github.com/ytget/galeria/internal/logger"
	"github.com/ytget/galeria/internal/scan"
)

// Watcher reports image files appearing in or leaving saved folders
type Watcher struct {
	watcher   *fsnotify.Watcher
	publisher scan.Publisher
	log       *logger.Logger

	mu      sync.Mutex
	folders map[string]struct{}

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New creates a watcher that publishes event.FolderChanged to publisher
func New(publisher scan.Publisher, log *logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.Nop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create folder watcher: %w", err)
	}

	w := &Watcher{
		watcher:   fsw,
		publisher: publisher,
		log:       log,
		folders:   make(map[string]struct{}),
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// SetFolders replaces the watched set. Folders that cannot be watched are
// skipped and reported in the returned error.
func (w *Watcher) SetFolders(folders []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	wanted := make(map[string]struct{}, len(folders))
	for _, folder := range folders {
		wanted[filepath.Clean(folder)] = struct{}{}
	}

	for folder := range w.folders {
		if _, keep := wanted[folder]; keep {
			continue
		}
		if err := w.watcher.Remove(folder); err != nil {
			w.log.Debug("Watcher", "remove watch failed", map[string]interface{}{"path": folder, "error": err.Error()})
		}
		delete(w.folders, folder)
	}

	var errs []error
	for folder := range wanted {
		if _, watched := w.folders[folder]; watched {
			continue
		}
		if err := w.watcher.Add(folder); err != nil {
			w.log.Warning("Watcher", "cannot watch folder", map[string]interface{}{"path": folder, "error": err.Error()})
			errs = append(errs, fmt.Errorf("watch %s: %w", folder, err))
			continue
		}
		w.folders[folder] = struct{}{}
	}

	return errors.Join(errs...)
}

// Folders returns the currently watched folders, sorted
func (w *Watcher) Folders() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	result := make([]string, 0, len(w.folders))
	for folder := range w.folders {
		result = append(result, folder)
	}
	sort.Strings(result)
	return result
}

// Close stops watching and waits for the event loop to exit
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("Watcher", "watch error", err, nil)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}
	if !scan.IsImageFile(ev.Name) {
		return
	}

	w.log.Debug("Watcher", "image changed", map[string]interface{}{"path": ev.Name, "op": ev.Op.String()})
	w.publisher.Publish(event.FolderChanged, event.FolderChangedEvent{
		Folder: filepath.Dir(ev.Name),
		Path:   ev.Name,
	})
}
