package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI adapts the gallery layout to phones and tablets
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// ArrangeMain places the folder panel beside the grid on desktops and in
// landscape, and above it in portrait on mobile
func (m *MobileUI) ArrangeMain(folders, grid fyne.CanvasObject) fyne.CanvasObject {
	if m.IsMobileDevice() && !m.IsLandscape() {
		split := container.NewVSplit(folders, grid)
		split.Offset = 0.25
		return split
	}

	split := container.NewHSplit(folders, grid)
	split.Offset = 0.2
	return split
}

// ToolbarButton creates a button that keeps the minimum touch target size on
// mobile devices
func (m *MobileUI) ToolbarButton(text string, onTapped func()) fyne.CanvasObject {
	btn := widget.NewButton(text, onTapped)
	btn.Importance = widget.LowImportance
	if !m.IsMobileDevice() {
		return btn
	}
	return container.NewGridWrap(fyne.NewSquareSize(MinTouchTargetSize), btn)
}
