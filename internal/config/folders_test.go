package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *FolderStore {
	return NewFolderStore(test.NewApp().Preferences(), nil)
}

func TestFolderStore_LoadEmpty(t *testing.T) {
	store := newTestStore()

	folders := store.Load()
	assert.NotNil(t, folders)
	assert.Empty(t, folders)
}

func TestFolderStore_SaveLoadRoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{"/photos"},
		{"/b", "/a", "/c"},
		{`C:\Users\me\Pictures`, "/mnt/zdjęcia", "/with space/and \"quotes\""},
	}

	for _, folders := range cases {
		store := newTestStore()
		require.NoError(t, store.Save(folders))
		assert.Equal(t, folders, store.Load())
	}
}

func TestFolderStore_SaveOverwrites(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.Save([]string{"/a", "/b"}))
	require.NoError(t, store.Save([]string{"/c"}))

	assert.Equal(t, []string{"/c"}, store.Load())
}

func TestFolderStore_AddDeduplicates(t *testing.T) {
	store := newTestStore()
	first := filepath.Join("/", "photos")

	added, err := store.Add(first)
	require.NoError(t, err)
	assert.True(t, added)

	before := store.Load()
	added, err = store.Add(first)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, before, store.Load())

	// cleaned paths compare equal
	added, err = store.Add(first + string(filepath.Separator))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Len(t, store.Load(), 1)
}

func TestFolderStore_AddKeepsInsertionOrder(t *testing.T) {
	store := newTestStore()
	for _, folder := range []string{"/z", "/a", "/m"} {
		_, err := store.Add(folder)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{filepath.Clean("/z"), filepath.Clean("/a"), filepath.Clean("/m")}, store.Load())
}

func TestFolderStore_AddEmpty(t *testing.T) {
	store := newTestStore()

	_, err := store.Add("   ")
	assert.ErrorIs(t, err, ErrEmptyPath)
	assert.Empty(t, store.Load())
}

func TestFolderStore_Remove(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.Save([]string{"/a", "/b", "/c"}))

	removed, err := store.Remove("/b")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"/a", "/c"}, store.Load())
	assert.False(t, store.Contains("/b"))
	assert.True(t, store.Contains("/a"))

	removed, err = store.Remove("/missing")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, []string{"/a", "/c"}, store.Load())
}

func TestFolderStore_CorruptValueLoadsEmpty(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(KeySavedFolders, "{not json")
	store := NewFolderStore(app.Preferences(), nil)

	assert.Empty(t, store.Load())

	added, err := store.Add("/recovered")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{filepath.Clean("/recovered")}, store.Load())
}

func TestFolderStore_PersistsAsJSONArray(t *testing.T) {
	app := test.NewApp()
	store := NewFolderStore(app.Preferences(), nil)
	require.NoError(t, store.Save([]string{"/a", "/b"}))

	assert.JSONEq(t, `["/a","/b"]`, app.Preferences().String(KeySavedFolders))
}

func TestFolderStore_LoadCleansStoredEntries(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(KeySavedFolders, `["/photos/trip/","/photos/trip","","/photos/./home"]`)
	store := NewFolderStore(app.Preferences(), nil)

	trip := filepath.Clean(filepath.FromSlash("/photos/trip"))
	home := filepath.Clean(filepath.FromSlash("/photos/home"))
	assert.Equal(t, []string{trip, home}, store.Load())
	assert.True(t, store.Contains("/photos/trip/"))

	added, err := store.Add("/photos/trip")
	require.NoError(t, err)
	assert.False(t, added)

	removed, err := store.Remove("/photos/trip/")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{home}, store.Load())
}
