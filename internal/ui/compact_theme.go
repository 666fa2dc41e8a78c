package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNamePlaceholderCell is the fill of a thumbnail cell before its image arrives
const ColorNamePlaceholderCell fyne.ThemeColorName = "placeholderCell"

// GalleryTheme tightens padding around the thumbnail grid and adds the
// gallery's own colors on top of the default theme
type GalleryTheme struct{}

// NewGalleryTheme creates the gallery theme
func NewGalleryTheme() fyne.Theme {
	return &GalleryTheme{}
}

// Color returns theme colors
func (t *GalleryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNamePlaceholderCell:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}
		}
		return PlaceholderColor
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// placeholderCellColor is the placeholder cell fill of the current theme.
// Themes other than GalleryTheme do not know the color and get
// PlaceholderColor.
func placeholderCellColor() color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return PlaceholderColor
	}
	if th, ok := app.Settings().Theme().(*GalleryTheme); ok {
		return th.Color(ColorNamePlaceholderCell, app.Settings().ThemeVariant())
	}
	return PlaceholderColor
}

// Font returns theme fonts
func (t *GalleryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GalleryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *GalleryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return ThumbnailTextSize
	}

	return theme.DefaultTheme().Size(name)
}
