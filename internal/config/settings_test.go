package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}

	if settings.Folders() == nil {
		t.Error("Settings should expose a folder store")
	}
}

func TestMinThumbnailSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	// Test default value
	size := settings.GetMinThumbnailSize()
	if size != DefaultMinThumbnailSize {
		t.Errorf("Expected default min thumbnail size %d, got %d", DefaultMinThumbnailSize, size)
	}

	// Test setting custom value
	settings.SetMinThumbnailSize(240)
	if settings.GetMinThumbnailSize() != 240 {
		t.Errorf("Expected min thumbnail size 240, got %d", settings.GetMinThumbnailSize())
	}

	// Test boundary values
	settings.SetMinThumbnailSize(10)
	if settings.GetMinThumbnailSize() != MinThumbnailSizeLower {
		t.Errorf("Min thumbnail size should be clamped to %d", MinThumbnailSizeLower)
	}

	settings.SetMinThumbnailSize(5000)
	if settings.GetMinThumbnailSize() != MinThumbnailSizeUpper {
		t.Errorf("Min thumbnail size should be clamped to %d", MinThumbnailSizeUpper)
	}
}

func TestThumbnailWorkers(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	// Test default value
	workers := settings.GetThumbnailWorkers()
	if workers != DefaultThumbnailWorkers {
		t.Errorf("Expected default workers %d, got %d", DefaultThumbnailWorkers, workers)
	}

	settings.SetThumbnailWorkers(4)
	if settings.GetThumbnailWorkers() != 4 {
		t.Errorf("Expected workers 4, got %d", settings.GetThumbnailWorkers())
	}

	settings.SetThumbnailWorkers(0) // Should be clamped to 1
	if settings.GetThumbnailWorkers() != 1 {
		t.Error("Workers should be clamped to minimum 1")
	}

	settings.SetThumbnailWorkers(64)
	if settings.GetThumbnailWorkers() != MaxThumbnailWorkers {
		t.Errorf("Workers should be clamped to maximum %d", MaxThumbnailWorkers)
	}
}

func TestThumbnailCacheSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if settings.GetThumbnailCacheSize() != DefaultThumbnailCacheSize {
		t.Errorf("Expected default cache size %d, got %d", DefaultThumbnailCacheSize, settings.GetThumbnailCacheSize())
	}

	settings.SetThumbnailCacheSize(1)
	if settings.GetThumbnailCacheSize() != MinThumbnailCacheSize {
		t.Errorf("Cache size should be clamped to %d", MinThumbnailCacheSize)
	}
}

func TestWatchFolders(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if settings.GetWatchFolders() != DefaultWatchFolders {
		t.Errorf("Expected default watch folders %v", DefaultWatchFolders)
	}

	settings.SetWatchFolders(false)
	if settings.GetWatchFolders() {
		t.Error("Expected watch folders to be disabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pl")
	if settings.GetLanguage() != "pl" {
		t.Errorf("Expected language 'pl', got %s", settings.GetLanguage())
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if settings.GetLogLevel() != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, settings.GetLogLevel())
	}

	settings.SetLogLevel("debug")
	if settings.GetLogLevel() != "debug" {
		t.Errorf("Expected log level 'debug', got %s", settings.GetLogLevel())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "pl", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestGettersClampStoredValues(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	app.Preferences().SetInt(KeyThumbnailWorkers, 50)
	if got := settings.GetThumbnailWorkers(); got != MaxThumbnailWorkers {
		t.Errorf("Expected stored workers 50 to read as %d, got %d", MaxThumbnailWorkers, got)
	}

	app.Preferences().SetInt(KeyMinThumbnailSize, 2000)
	if got := settings.GetMinThumbnailSize(); got != MinThumbnailSizeUpper {
		t.Errorf("Expected stored size 2000 to read as %d, got %d", MinThumbnailSizeUpper, got)
	}

	app.Preferences().SetInt(KeyMinThumbnailSize, 20)
	if got := settings.GetMinThumbnailSize(); got != MinThumbnailSizeLower {
		t.Errorf("Expected stored size 20 to read as %d, got %d", MinThumbnailSizeLower, got)
	}

	app.Preferences().SetInt(KeyThumbnailCacheSize, 10)
	if got := settings.GetThumbnailCacheSize(); got != MinThumbnailCacheSize {
		t.Errorf("Expected stored cache size 10 to read as %d, got %d", MinThumbnailCacheSize, got)
	}
}
