// Package ui contains the Fyne user interface of the gallery: the folder
// panel, the responsive thumbnail grid, the full-screen viewer, notifications
// and settings. All UI strings are localized via Localization.
package ui
