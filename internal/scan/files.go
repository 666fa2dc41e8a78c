package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/galeria/internal/model"
)

// ErrFolderNotFound is returned when a saved folder does not exist or is not a directory
var ErrFolderNotFound = errors.New("folder does not exist")

// ImageExtensions is the allow-list of file extensions shown in the gallery
var ImageExtensions = []string{".png", ".jpg", ".jpeg"}

// IsImageFile reports whether name ends with an allowed image extension, ignoring case
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range ImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ListImages lists the image files directly inside folder in directory order
// (sorted by file name).
// Subdirectories are not descended into.
func ListImages(ctx context.Context, folder string) ([]model.ImageEntry, error) {
	info, err := os.Stat(folder)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folder)
		}
		return nil, fmt.Errorf("stat %s: %w", folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFolderNotFound, folder)
	}

	dirEntries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", folder, err)
	}

	entries := make([]model.ImageEntry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if err := ctx.Err(); err != nil {
			return entries, err
		}
		if dirEntry.IsDir() || !IsImageFile(dirEntry.Name()) {
			continue
		}

		fileInfo, err := dirEntry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}

		path := filepath.Join(folder, dirEntry.Name())
		entries = append(entries, model.NewImageEntry(folder, path, fileInfo.Size(), fileInfo.ModTime()))
	}
	return entries, nil
}
