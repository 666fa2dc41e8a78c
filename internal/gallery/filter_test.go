package gallery

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/galeria/internal/model"
)

func sampleEntries() []model.ImageEntry {
	now := time.Now()
	return []model.ImageEntry{
		model.NewImageEntry("/p", filepath.Join("/p", "Holidays", "beach.jpg"), 10, now),
		model.NewImageEntry("/p", filepath.Join("/p", "Holidays", "Sunset.PNG"), 10, now),
		model.NewImageEntry("/w", filepath.Join("/w", "work", "diagram.jpeg"), 10, now),
	}
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	entries := sampleEntries()

	assert.Equal(t, entries, Filter(entries, ""))
	assert.Equal(t, entries, Filter(entries, "   "))
}

func TestFilter_NoMatchReturnsEmpty(t *testing.T) {
	result := Filter(sampleEntries(), "zebra")

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilter_MatchesFileNameIgnoringCase(t *testing.T) {
	result := Filter(sampleEntries(), "SUN")

	if assert.Len(t, result, 1) {
		assert.Equal(t, "Sunset.PNG", result[0].Name)
	}
}

func TestFilter_MatchesFolderName(t *testing.T) {
	result := Filter(sampleEntries(), "holi")

	assert.Len(t, result, 2)
	for _, entry := range result {
		assert.Equal(t, "Holidays", entry.FolderName())
	}
}

func TestFilter_DoesNotMatchParentOfFolder(t *testing.T) {
	// "/p" is the grandparent of the images, not the containing folder
	result := Filter(sampleEntries(), "p/")

	assert.Empty(t, result)
}

func TestFilter_PreservesOrder(t *testing.T) {
	entries := sampleEntries()
	result := Filter(entries, "a")

	var names []string
	for _, entry := range result {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{"beach.jpg", "Sunset.PNG", "diagram.jpeg"}, names)
}

func TestFilter_KeepsSurroundingSpacesInQuery(t *testing.T) {
	now := time.Now()
	entries := []model.ImageEntry{
		model.NewImageEntry("/p", filepath.Join("/p", "pets", "cat.png"), 10, now),
		model.NewImageEntry("/p", filepath.Join("/p", "pets", "cat and dog.png"), 10, now),
	}

	result := Filter(entries, "cat ")

	if assert.Len(t, result, 1) {
		assert.Equal(t, "cat and dog.png", result[0].Name)
	}
}

func TestNeedle(t *testing.T) {
	needle, ok := Needle(" Cat ")
	assert.True(t, ok)
	assert.Equal(t, " cat ", needle)

	_, ok = Needle(" \t ")
	assert.False(t, ok)
}
