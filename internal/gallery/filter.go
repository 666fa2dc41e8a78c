package gallery

import (
	"strings"

	"github.com/ytget/galeria/internal/model"
)

// Filter returns the entries whose file name or containing folder name
// contains query, ignoring case. An empty or whitespace-only query returns
// entries unchanged.
func Filter(entries []model.ImageEntry, query string) []model.ImageEntry {
	needle, ok := Needle(query)
	if !ok {
		return entries
	}

	result := make([]model.ImageEntry, 0, len(entries))
	for _, entry := range entries {
		if Matches(entry, needle) {
			result = append(result, entry)
		}
	}
	return result
}

// Needle lower-cases query for Matches. It reports false when query is empty
// or only whitespace.
func Needle(query string) (string, bool) {
	if strings.TrimSpace(query) == "" {
		return "", false
	}
	return strings.ToLower(query), true
}

// Matches reports whether entry matches an already lower-cased needle
func Matches(entry model.ImageEntry, needle string) bool {
	if strings.Contains(strings.ToLower(entry.Name), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(entry.FolderName()), needle)
}
