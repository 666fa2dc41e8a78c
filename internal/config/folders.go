package config

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/galeria/internal/logger"
)

// ErrEmptyPath is returned when an empty folder path is added
var ErrEmptyPath = errors.New("folder path is empty")

// FolderStore persists the ordered list of saved folders as a JSON array
// under a single preference key.
type FolderStore struct {
	prefs fyne.Preferences
	log   *logger.Logger
	mu    sync.Mutex
}

// NewFolderStore creates a store over prefs
func NewFolderStore(prefs fyne.Preferences, log *logger.Logger) *FolderStore {
	if log == nil {
		log = logger.Nop()
	}
	return &FolderStore{prefs: prefs, log: log}
}

// Load returns the last saved folder list, or an empty list
func (fs *FolderStore) Load() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.load()
}

// Save overwrites the saved folder list
func (fs *FolderStore) Save(folders []string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.save(folders)
}

// Add appends folder unless it is already saved. It reports whether the
// list changed.
func (fs *FolderStore) Add(folder string) (bool, error) {
	folder = normalizeFolder(folder)
	if folder == "" {
		return false, ErrEmptyPath
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	folders := fs.load()
	for _, existing := range folders {
		if existing == folder {
			return false, nil
		}
	}

	if err := fs.save(append(folders, folder)); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes folder from the list. It reports whether the list changed.
func (fs *FolderStore) Remove(folder string) (bool, error) {
	folder = normalizeFolder(folder)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	folders := fs.load()
	kept := make([]string, 0, len(folders))
	for _, existing := range folders {
		if existing != folder {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(folders) {
		return false, nil
	}

	if err := fs.save(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Contains reports whether folder is saved
func (fs *FolderStore) Contains(folder string) bool {
	folder = normalizeFolder(folder)
	for _, existing := range fs.Load() {
		if existing == folder {
			return true
		}
	}
	return false
}

func (fs *FolderStore) load() []string {
	raw := fs.prefs.String(KeySavedFolders)
	if raw == "" {
		return []string{}
	}

	var folders []string
	if err := json.Unmarshal([]byte(raw), &folders); err != nil {
		fs.log.Warning("FolderStore", "ignoring unreadable folder list", map[string]interface{}{
			"error": err.Error(),
		})
		return []string{}
	}

	// stored entries may be uncleaned or repeated
	seen := make(map[string]struct{}, len(folders))
	cleaned := make([]string, 0, len(folders))
	for _, folder := range folders {
		folder = normalizeFolder(folder)
		if folder == "" {
			continue
		}
		if _, ok := seen[folder]; ok {
			continue
		}
		seen[folder] = struct{}{}
		cleaned = append(cleaned, folder)
	}
	return cleaned
}

func (fs *FolderStore) save(folders []string) error {
	if folders == nil {
		folders = []string{}
	}
	data, err := json.Marshal(folders)
	if err != nil {
		return err
	}
	fs.prefs.SetString(KeySavedFolders, string(data))
	fs.log.Debug("FolderStore", "folder list saved", map[string]interface{}{"count": len(folders)})
	return nil
}

func normalizeFolder(folder string) string {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		return ""
	}
	return filepath.Clean(folder)
}
