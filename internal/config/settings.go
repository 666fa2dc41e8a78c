package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/galeria/internal/logger"
)

// Settings keys for Fyne preferences
const (
	KeySavedFolders       = "saved_folders"
	KeyMinThumbnailSize   = "min_thumbnail_size"
	KeyThumbnailWorkers   = "thumbnail_workers"
	KeyThumbnailCacheSize = "thumbnail_cache_size"
	KeyWatchFolders       = "watch_folders"
	KeyLanguage           = "app_language"
	KeyLogLevel           = "log_level"
)

// Default values
const (
	DefaultMinThumbnailSize   = 190
	DefaultThumbnailWorkers   = 2
	DefaultThumbnailCacheSize = 512
	DefaultWatchFolders       = true
	DefaultLanguage           = "system"
	DefaultLogLevel           = logger.LevelInfo
)

// Limits
const (
	MinThumbnailSizeLower = 96
	MinThumbnailSizeUpper = 512
	MaxThumbnailWorkers   = 8
	MinThumbnailCacheSize = 64
	MaxThumbnailCacheSize = 4096
)

// Settings manages application configuration
type Settings struct {
	app     fyne.App
	folders *FolderStore
}

// NewSettings creates a new settings manager. log may be nil.
func NewSettings(app fyne.App, log *logger.Logger) *Settings {
	return &Settings{
		app:     app,
		folders: NewFolderStore(app.Preferences(), log),
	}
}

// Folders returns the saved folder list store backed by the same preferences
func (s *Settings) Folders() *FolderStore {
	return s.folders
}

// GetMinThumbnailSize returns the minimum thumbnail cell size in pixels
func (s *Settings) GetMinThumbnailSize() int {
	value := s.app.Preferences().Int(KeyMinThumbnailSize)
	if value <= 0 {
		s.SetMinThumbnailSize(DefaultMinThumbnailSize)
		return DefaultMinThumbnailSize
	}
	return clamp(value, MinThumbnailSizeLower, MinThumbnailSizeUpper)
}

// SetMinThumbnailSize sets the minimum thumbnail cell size
func (s *Settings) SetMinThumbnailSize(size int) {
	s.app.Preferences().SetInt(KeyMinThumbnailSize, clamp(size, MinThumbnailSizeLower, MinThumbnailSizeUpper))
}

// GetThumbnailWorkers returns how many thumbnails may be decoded in parallel
func (s *Settings) GetThumbnailWorkers() int {
	value := s.app.Preferences().Int(KeyThumbnailWorkers)
	if value <= 0 {
		s.SetThumbnailWorkers(DefaultThumbnailWorkers)
		return DefaultThumbnailWorkers
	}
	return clamp(value, 1, MaxThumbnailWorkers)
}

// SetThumbnailWorkers sets the number of parallel thumbnail decoders
func (s *Settings) SetThumbnailWorkers(count int) {
	s.app.Preferences().SetInt(KeyThumbnailWorkers, clamp(count, 1, MaxThumbnailWorkers))
}

// GetThumbnailCacheSize returns how many decoded thumbnails are kept in memory
func (s *Settings) GetThumbnailCacheSize() int {
	value := s.app.Preferences().Int(KeyThumbnailCacheSize)
	if value <= 0 {
		s.SetThumbnailCacheSize(DefaultThumbnailCacheSize)
		return DefaultThumbnailCacheSize
	}
	return clamp(value, MinThumbnailCacheSize, MaxThumbnailCacheSize)
}

// SetThumbnailCacheSize sets the thumbnail cache capacity
func (s *Settings) SetThumbnailCacheSize(size int) {
	s.app.Preferences().SetInt(KeyThumbnailCacheSize, clamp(size, MinThumbnailCacheSize, MaxThumbnailCacheSize))
}

// GetWatchFolders returns whether saved folders are watched for changes
func (s *Settings) GetWatchFolders() bool {
	return s.app.Preferences().BoolWithFallback(KeyWatchFolders, DefaultWatchFolders)
}

// SetWatchFolders sets whether saved folders are watched for changes
func (s *Settings) SetWatchFolders(watch bool) {
	s.app.Preferences().SetBool(KeyWatchFolders, watch)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level name
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pl":     "Polski",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
