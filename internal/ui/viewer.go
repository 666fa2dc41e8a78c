package ui

import (
	"fmt"
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/galeria/internal/logger"
	"github.com/ytget/galeria/internal/model"
	"github.com/ytget/galeria/internal/thumbnail"
)

// Viewer shows one image at a time over the whole window
type Viewer struct {
	window       fyne.Window
	renderer     thumbnail.Renderer
	localization *Localization
	log          *logger.Logger
	dispatch     func(func())

	entries    []model.ImageEntry
	index      int
	generation int
	open       bool

	popup    *widget.PopUp
	frame    *viewerFrame
	fitted   fyne.Size
	image    *canvas.Image
	info     *canvas.Text
	message  *canvas.Text
	progress *widget.ProgressBarInfinite

	closeBtn  *widget.Button
	prevBtn   *widget.Button
	nextBtn   *widget.Button
	openBtn   *widget.Button
	revealBtn *widget.Button

	previousKeyHandler func(*fyne.KeyEvent)

	onOpen   func(path string)
	onReveal func(path string)
}

// NewViewer creates a viewer for window. dispatch runs image loads' results
// on the UI goroutine.
func NewViewer(window fyne.Window, renderer thumbnail.Renderer, localization *Localization, log *logger.Logger, dispatch func(func())) *Viewer {
	if log == nil {
		log = logger.Nop()
	}
	if dispatch == nil {
		dispatch = fyne.Do
	}

	v := &Viewer{
		window:       window,
		renderer:     renderer,
		localization: localization,
		log:          log,
		dispatch:     dispatch,
	}
	v.createUI()
	return v
}

// SetActions sets the callbacks of the Open and Reveal buttons
func (v *Viewer) SetActions(onOpen, onReveal func(path string)) {
	v.onOpen = onOpen
	v.onReveal = onReveal
}

func (v *Viewer) createUI() {
	backdrop := canvas.NewRectangle(ViewerBackdropColor)

	v.image = canvas.NewImageFromImage(nil)
	v.image.FillMode = canvas.ImageFillContain

	v.info = canvas.NewText("", ViewerTextColor)
	v.info.Alignment = fyne.TextAlignCenter

	v.message = canvas.NewText("", ViewerTextColor)
	v.message.Alignment = fyne.TextAlignCenter
	v.message.Hide()

	v.progress = widget.NewProgressBarInfinite()
	v.progress.Hide()

	v.closeBtn = widget.NewButton(IconClose, v.Close)
	v.closeBtn.Importance = widget.LowImportance
	v.prevBtn = widget.NewButton(IconPrev, v.Previous)
	v.prevBtn.Importance = widget.LowImportance
	v.nextBtn = widget.NewButton(IconNext, v.Next)
	v.nextBtn.Importance = widget.LowImportance
	v.openBtn = widget.NewButton(v.localization.GetText(KeyOpen), func() { v.runAction(v.onOpen) })
	v.revealBtn = widget.NewButton(v.localization.GetText(KeyReveal), func() { v.runAction(v.onReveal) })

	picture := NewSwipeArea(container.NewStack(
		v.image,
		container.NewCenter(container.NewVBox(v.message, v.progress)),
	), v.onGesture)

	topBar := container.NewHBox(layout.NewSpacer(), v.closeBtn)
	bottomBar := container.NewBorder(nil, nil,
		container.NewHBox(v.prevBtn, v.nextBtn),
		container.NewHBox(v.openBtn, v.revealBtn),
		v.info,
	)
	body := container.NewBorder(topBar, bottomBar,
		nil, nil,
		container.NewPadded(picture),
	)

	v.frame = newViewerFrame(container.NewStack(backdrop, body), func() {
		if v.open {
			v.fitToCanvas()
		}
	})
	v.popup = widget.NewModalPopUp(v.frame, v.window.Canvas())
}

// fitToCanvas sizes the overlay to the window canvas
func (v *Viewer) fitToCanvas() {
	size := v.window.Canvas().Size()
	if size == v.fitted {
		return
	}
	v.fitted = size
	v.popup.Resize(size)
}

// RefreshTexts re-reads localized button labels
func (v *Viewer) RefreshTexts() {
	v.openBtn.SetText(v.localization.GetText(KeyOpen))
	v.revealBtn.SetText(v.localization.GetText(KeyReveal))
}

// Show opens the viewer on entries[index]. entries is the list prev/next
// move through.
func (v *Viewer) Show(entries []model.ImageEntry, index int) {
	if index < 0 || index >= len(entries) {
		return
	}
	v.entries = entries
	v.index = index

	c := v.window.Canvas()
	if !v.open {
		v.previousKeyHandler = c.OnTypedKey()
		c.SetOnTypedKey(v.handleKey)
		v.open = true
	}
	v.fitToCanvas()
	v.popup.Show()
	v.load()
}

// Close hides the viewer and restores the window's key handler
func (v *Viewer) Close() {
	if !v.open {
		return
	}
	v.open = false
	v.generation++
	v.progress.Stop()
	v.popup.Hide()
	v.window.Canvas().SetOnTypedKey(v.previousKeyHandler)
	v.previousKeyHandler = nil
	v.image.Image = nil
	v.entries = nil
}

// IsOpen reports whether the viewer is showing
func (v *Viewer) IsOpen() bool {
	return v.open
}

// Current returns the entry being shown
func (v *Viewer) Current() (model.ImageEntry, bool) {
	if !v.IsOpen() || v.index < 0 || v.index >= len(v.entries) {
		return model.ImageEntry{}, false
	}
	return v.entries[v.index], true
}

// Index returns the position of the shown entry
func (v *Viewer) Index() int {
	return v.index
}

// Next moves to the following entry; it stops at the last one
func (v *Viewer) Next() {
	if !v.IsOpen() || v.index >= len(v.entries)-1 {
		return
	}
	v.index++
	v.load()
}

// Previous moves to the preceding entry; it stops at the first one
func (v *Viewer) Previous() {
	if !v.IsOpen() || v.index <= 0 {
		return
	}
	v.index--
	v.load()
}

func (v *Viewer) handleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		v.Close()
	case fyne.KeyLeft:
		v.Previous()
	case fyne.KeyRight:
		v.Next()
	}
}

func (v *Viewer) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		v.Next()
	case GestureSwipeRight:
		v.Previous()
	case GestureSwipeDown:
		v.Close()
	}
}

func (v *Viewer) runAction(action func(path string)) {
	if entry, ok := v.Current(); ok && action != nil {
		action(entry.Path)
	}
}

func (v *Viewer) load() {
	entry := v.entries[v.index]
	v.generation++
	generation := v.generation

	v.updateButtons()
	v.image.Image = nil
	v.image.Refresh()
	v.message.Hide()
	v.progress.Show()
	v.progress.Start()
	v.info.Text = entry.Name
	v.info.Refresh()

	size := v.window.Canvas().Size()
	maxWidth := int(size.Width - 2*ViewerPadding)
	maxHeight := int(size.Height - 2*ViewerPadding - ViewerInfoHeight)

	go func() {
		img, info, err := v.renderer.LoadFull(entry.Path, maxWidth, maxHeight)
		v.dispatch(func() {
			// a newer image was requested or the viewer closed
			if generation != v.generation {
				return
			}
			v.showLoaded(entry, img, info, err)
		})
	}()
}

func (v *Viewer) showLoaded(entry model.ImageEntry, img image.Image, info *thumbnail.ExifInfo, err error) {
	v.progress.Stop()
	v.progress.Hide()

	if err != nil {
		v.log.Warning("Viewer", "image load failed", map[string]interface{}{
			"path":  entry.Path,
			"error": err.Error(),
		})
		v.message.Text = v.localization.GetText(KeyErrorLoadingImage) + ": " + entry.Name
		v.message.Show()
		v.message.Refresh()
		return
	}

	v.image.Image = img
	v.image.Refresh()
	v.info.Text = infoLine(entry, info)
	v.info.Refresh()
}

func (v *Viewer) updateButtons() {
	if v.index > 0 {
		v.prevBtn.Enable()
	} else {
		v.prevBtn.Disable()
	}
	if v.index < len(v.entries)-1 {
		v.nextBtn.Enable()
	} else {
		v.nextBtn.Disable()
	}
}

// infoLine joins the name, pixel size, capture date and camera of an image
func infoLine(entry model.ImageEntry, info *thumbnail.ExifInfo) string {
	parts := []string{entry.Name}
	if info != nil {
		if info.Width > 0 && info.Height > 0 {
			parts = append(parts, fmt.Sprintf(DimensionsFormat, info.Width, info.Height))
		}
		if !info.Taken.IsZero() {
			parts = append(parts, info.Taken.Format("2006-01-02 15:04"))
		}
		if info.Camera != "" {
			parts = append(parts, info.Camera)
		}
	}
	parts = append(parts, entry.GetSizeString())
	return strings.Join(parts, MiddleDotSeparator)
}

// viewerFrame holds the overlay content. A modal popup refreshes its content
// when the canvas is resized, so onRefresh sees every resize.
type viewerFrame struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	onRefresh func()
}

func newViewerFrame(content fyne.CanvasObject, onRefresh func()) *viewerFrame {
	f := &viewerFrame{content: content, onRefresh: onRefresh}
	f.ExtendBaseWidget(f)
	return f
}

// CreateRenderer creates the widget renderer
func (f *viewerFrame) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(f.content)
}

// Refresh follows the canvas size before redrawing
func (f *viewerFrame) Refresh() {
	if f.onRefresh != nil {
		f.onRefresh()
	}
	f.BaseWidget.Refresh()
}
