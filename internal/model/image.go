package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ImageEntry represents a single image file found in a saved folder
type ImageEntry struct {
	ID      string    // stable per scan session
	Path    string    // absolute or user-supplied path to the file
	Name    string    // base file name including extension
	Folder  string    // directory containing the file
	Root    string    // saved folder the entry was found under
	Size    int64     // file size in bytes
	ModTime time.Time // last modification time
}

// NewImageEntry builds an entry from a path, deriving Name and Folder
func NewImageEntry(root, path string, size int64, modTime time.Time) ImageEntry {
	return ImageEntry{
		Path:    path,
		Name:    filepath.Base(path),
		Folder:  filepath.Dir(path),
		Root:    root,
		Size:    size,
		ModTime: modTime,
	}
}

// FolderName returns the base name of the containing folder
func (e ImageEntry) FolderName() string {
	return filepath.Base(e.Folder)
}

// GetDisplayTitle returns the file name without its extension
func (e ImageEntry) GetDisplayTitle() string {
	name := e.Name
	if name == "" {
		name = filepath.Base(e.Path)
	}
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// GetSizeString returns the file size formatted with binary units
func (e ImageEntry) GetSizeString() string {
	const unit = 1024
	if e.Size < unit {
		return fmt.Sprintf("%d B", e.Size)
	}

	div, exp := int64(unit), 0
	for n := e.Size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(e.Size)/float64(div), "KMGTPE"[exp])
}
