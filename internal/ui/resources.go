package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "galeria.png"
)

// LoadAppIcon loads the window icon from AppIcon next to the binary, falling
// back to the theme's image icon
func LoadAppIcon() fyne.Resource {
	if res, err := fyne.LoadResourceFromPath(AppIcon); err == nil {
		return res
	}
	return theme.FileImageIcon()
}
