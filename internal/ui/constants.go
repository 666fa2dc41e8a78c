package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconFolder   = "📁"
	IconClose    = "✕"
	IconRemove   = "×"
	IconError    = "❌"
	IconMissing  = "⚠"
	IconPrev     = "‹"
	IconNext     = "›"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DimensionsFormat   = "%d×%d"
	CountFormat        = "%d"
)

// Layout sizing
const (
	FolderPanelWidth float32 = 220
	FolderRowHeight  float32 = 36

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	ViewerPadding     float32 = 16
	ViewerInfoHeight  float32 = 40
	ErrorGlyphSize    float32 = 32
	ThumbnailTextSize float32 = 11
)

// ThumbnailOversample is the render size relative to the minimum cell size.
// Cells never grow past twice the minimum.
const ThumbnailOversample = 2

// Colors
var (
	PlaceholderColor    = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
	ViewerBackdropColor = color.NRGBA{A: 0xd9}
	ViewerTextColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Notification behavior
const (
	NotificationAutoHide = 5 * time.Second
)

// Debounce durations
const (
	RescanDebounce = 500 * time.Millisecond
)
