package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/galeria/internal/gallery"
	"github.com/ytget/galeria/internal/model"
	"github.com/ytget/galeria/internal/thumbnail"
)

// gridIndexed is implemented by cells that sit at a fixed grid index rather
// than at their position in the container
type gridIndexed interface {
	GridIndex() int
}

// GalleryLayout arranges objects as square cells in as many columns of at
// least the minimum cell size as the width allows
type GalleryLayout struct {
	minCellSize float32
	margin      float32
	width       float32
	items       int
}

var _ fyne.Layout = (*GalleryLayout)(nil)

// NewGalleryLayout creates a grid layout
func NewGalleryLayout(minCellSize, margin float32) *GalleryLayout {
	return &GalleryLayout{minCellSize: minCellSize, margin: margin, items: -1}
}

// SetMinCellSize changes the minimum cell size
func (l *GalleryLayout) SetMinCellSize(size float32) {
	l.minCellSize = size
}

// SetWidth tells the layout the width it will be given before the next
// MinSize call
func (l *GalleryLayout) SetWidth(width float32) {
	l.width = width
}

// SetItemCount sets the number of cells the content height is computed for.
// A negative count uses the number of visible objects.
func (l *GalleryLayout) SetItemCount(count int) {
	l.items = count
}

// Metrics returns the grid for the last known width
func (l *GalleryLayout) Metrics() gallery.GridMetrics {
	return gallery.ComputeGrid(l.width, l.minCellSize, l.margin)
}

// Layout positions visible objects cell by cell
func (l *GalleryLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	l.width = size.Width
	metrics := l.Metrics()
	cell := fyne.NewSquareSize(metrics.CellSize)

	slot := 0
	for _, object := range objects {
		if !object.Visible() {
			continue
		}
		index := slot
		if indexed, ok := object.(gridIndexed); ok {
			index = indexed.GridIndex()
		}
		x, y := metrics.CellOrigin(index)
		object.Move(fyne.NewPos(x, y))
		object.Resize(cell)
		slot++
	}
}

// MinSize is tall enough for every row at the current width. Its width
// only covers the outer margins so that the grid can always be narrowed.
func (l *GalleryLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	count := l.items
	if count < 0 {
		count = 0
		for _, object := range objects {
			if object.Visible() {
				count++
			}
		}
	}
	metrics := l.Metrics()
	return fyne.NewSize(2*l.margin+1, metrics.ContentHeight(count))
}

// Thumbnail is a tappable grid cell showing one image
type Thumbnail struct {
	widget.BaseWidget

	index    int
	entry    model.ImageEntry
	hasEntry bool

	background *canvas.Rectangle
	image      *canvas.Image
	errorGlyph *canvas.Text

	OnTapped func(index int)
}

var _ fyne.Tappable = (*Thumbnail)(nil)

// NewThumbnail creates an empty cell
func NewThumbnail(onTapped func(index int)) *Thumbnail {
	t := &Thumbnail{
		background: canvas.NewRectangle(placeholderCellColor()),
		image:      canvas.NewImageFromImage(nil),
		errorGlyph: canvas.NewText(IconError, theme.Color(theme.ColorNameError)),
		OnTapped:   onTapped,
	}
	t.image.FillMode = canvas.ImageFillStretch
	t.errorGlyph.TextSize = ErrorGlyphSize
	t.errorGlyph.Hide()
	t.ExtendBaseWidget(t)
	return t
}

// CreateRenderer creates the widget renderer
func (t *Thumbnail) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(
		t.background,
		t.image,
		container.NewCenter(t.errorGlyph),
	))
}

// GridIndex returns the index of the entry shown
func (t *Thumbnail) GridIndex() int {
	return t.index
}

// Entry returns the entry shown
func (t *Thumbnail) Entry() model.ImageEntry {
	return t.entry
}

// Shows reports whether the cell currently shows entry
func (t *Thumbnail) Shows(entry model.ImageEntry) bool {
	return t.hasEntry && t.entry.Path == entry.Path && t.entry.ModTime.Equal(entry.ModTime)
}

// SetEntry points the cell at entry. It returns true when the image changed
// and the cell went back to its placeholder.
func (t *Thumbnail) SetEntry(index int, entry model.ImageEntry) bool {
	t.index = index
	if t.Shows(entry) {
		return false
	}

	t.entry = entry
	t.hasEntry = true
	t.image.Image = nil
	t.image.Refresh()
	t.errorGlyph.Hide()
	return true
}

// SetImage shows a rendered thumbnail
func (t *Thumbnail) SetImage(img image.Image) {
	t.image.Image = img
	t.errorGlyph.Hide()
	t.image.Refresh()
}

// SetFailed shows the error glyph instead of the image
func (t *Thumbnail) SetFailed() {
	t.image.Image = nil
	t.image.Refresh()
	t.errorGlyph.Show()
}

// HasImage reports whether a thumbnail is shown
func (t *Thumbnail) HasImage() bool {
	return t.image.Image != nil
}

// IsFailed reports whether the error glyph is shown
func (t *Thumbnail) IsFailed() bool {
	return t.errorGlyph.Visible()
}

// Tapped opens the entry
func (t *Thumbnail) Tapped(*fyne.PointEvent) {
	if t.OnTapped != nil && t.hasEntry {
		t.OnTapped(t.index)
	}
}

// ThumbnailGrid is a vertically scrolling grid of thumbnails. Only cells in
// or near the viewport exist; they are reused as the grid scrolls.
type ThumbnailGrid struct {
	widget.BaseWidget

	layout  *GalleryLayout
	content *fyne.Container
	scroll  *container.Scroll
	empty   *widget.Label

	entries    []model.ImageEntry
	cells      []*Thumbnail
	renderer   thumbnail.Renderer
	renderSize int
	dispatch   func(func())
	refreshing bool

	OnSelected func(index int)
}

// NewThumbnailGrid creates a grid that renders thumbnails with renderer.
// dispatch runs thumbnail callbacks on the UI goroutine.
func NewThumbnailGrid(renderer thumbnail.Renderer, minCellSize float32, dispatch func(func())) *ThumbnailGrid {
	if dispatch == nil {
		dispatch = fyne.Do
	}

	g := &ThumbnailGrid{
		layout:   NewGalleryLayout(minCellSize, gallery.DefaultCellMargin),
		empty:    widget.NewLabel(""),
		renderer: renderer,
		dispatch: dispatch,
	}
	g.renderSize = renderSizeFor(minCellSize)
	g.content = container.New(g.layout)
	g.scroll = container.NewVScroll(g.content)
	g.scroll.OnScrolled = func(fyne.Position) { g.refreshVisible() }
	g.empty.Alignment = fyne.TextAlignCenter
	g.empty.Wrapping = fyne.TextWrapWord
	g.ExtendBaseWidget(g)
	return g
}

func renderSizeFor(minCellSize float32) int {
	return int(minCellSize) * ThumbnailOversample
}

// CreateRenderer creates the widget renderer
func (g *ThumbnailGrid) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(g.scroll, container.NewCenter(g.empty)))
}

// Resize lays the grid out for size
func (g *ThumbnailGrid) Resize(size fyne.Size) {
	g.layout.SetWidth(size.Width)
	g.BaseWidget.Resize(size)
	g.refreshVisible()
}

// SetEntries replaces the shown entries, keeping the scroll position
func (g *ThumbnailGrid) SetEntries(entries []model.ImageEntry) {
	g.entries = entries
	g.refreshVisible()
}

// Entries returns the shown entries
func (g *ThumbnailGrid) Entries() []model.ImageEntry {
	return g.entries
}

// ScrollToTop scrolls back to the first row
func (g *ThumbnailGrid) ScrollToTop() {
	g.scroll.ScrollToTop()
	g.refreshVisible()
}

// SetEmptyText sets the message shown when there are no entries
func (g *ThumbnailGrid) SetEmptyText(text string) {
	g.empty.SetText(text)
}

// SetMinCellSize changes the minimum cell size and re-renders thumbnails
func (g *ThumbnailGrid) SetMinCellSize(size float32) {
	g.layout.SetMinCellSize(size)
	newSize := renderSizeFor(size)
	if newSize != g.renderSize {
		g.renderSize = newSize
		for _, cell := range g.cells {
			cell.hasEntry = false
		}
	}
	g.refreshVisible()
}

// Metrics returns the current grid metrics
func (g *ThumbnailGrid) Metrics() gallery.GridMetrics {
	return g.layout.Metrics()
}

// VisibleRange returns the half-open range of entry indexes in the viewport
func (g *ThumbnailGrid) VisibleRange() (first, last int) {
	metrics := g.layout.Metrics()
	height := g.scroll.Size().Height
	if height <= 0 {
		height = g.Size().Height
	}
	if height <= 0 || len(g.entries) == 0 {
		return 0, 0
	}

	stride := metrics.CellSize + metrics.Margin
	top := g.scroll.Offset.Y
	firstRow := int((top - metrics.Margin) / stride)
	if firstRow < 0 {
		firstRow = 0
	}
	lastRow := int((top + height) / stride)

	first = firstRow * metrics.Columns
	last = (lastRow + 1) * metrics.Columns
	if last > len(g.entries) {
		last = len(g.entries)
	}
	if first > last {
		first = last
	}
	return first, last
}

// Cells returns the cells currently in use
func (g *ThumbnailGrid) Cells() []*Thumbnail {
	var used []*Thumbnail
	for _, cell := range g.cells {
		if cell.Visible() {
			used = append(used, cell)
		}
	}
	return used
}

func (g *ThumbnailGrid) refreshVisible() {
	if g.refreshing {
		return
	}
	g.refreshing = true
	defer func() { g.refreshing = false }()

	if len(g.entries) == 0 {
		g.empty.Show()
	} else {
		g.empty.Hide()
	}

	g.layout.SetItemCount(len(g.entries))
	g.scroll.Refresh()

	first, last := g.VisibleRange()
	for len(g.cells) < last-first {
		cell := NewThumbnail(g.onCellTapped)
		g.cells = append(g.cells, cell)
		g.content.Add(cell)
	}

	for i, cell := range g.cells {
		index := first + i
		if index >= last {
			cell.Hide()
			continue
		}
		entry := g.entries[index]
		if cell.SetEntry(index, entry) {
			g.requestThumbnail(cell, entry)
		}
		cell.Show()
	}
	g.content.Refresh()
}

func (g *ThumbnailGrid) requestThumbnail(cell *Thumbnail, entry model.ImageEntry) {
	if g.renderer == nil {
		return
	}
	g.renderer.Thumbnail(entry, g.renderSize, func(img image.Image, err error) {
		g.dispatch(func() {
			// the cell may have been reused while rendering
			if !cell.Shows(entry) {
				return
			}
			if err != nil {
				cell.SetFailed()
				return
			}
			cell.SetImage(img)
		})
	})
}

func (g *ThumbnailGrid) onCellTapped(index int) {
	if g.OnSelected != nil && index >= 0 && index < len(g.entries) {
		g.OnSelected(index)
	}
}
