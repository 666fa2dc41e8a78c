package ui

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/galeria/internal/gallery"
)

func TestGalleryLayout_PlacesSquareCells(t *testing.T) {
	test.NewApp()

	objects := make([]fyne.CanvasObject, 6)
	for i := range objects {
		objects[i] = canvas.NewRectangle(PlaceholderColor)
	}
	grid := container.New(NewGalleryLayout(gallery.DefaultMinCellSize, gallery.DefaultCellMargin), objects...)
	grid.Resize(fyne.NewSize(800, 600))

	for _, object := range objects {
		assert.Equal(t, fyne.NewSquareSize(192.5), object.Size())
	}
	assert.Equal(t, fyne.NewPos(6, 6), objects[0].Position())
	assert.Equal(t, fyne.NewPos(204.5, 6), objects[1].Position())
	assert.Equal(t, fyne.NewPos(601.5, 6), objects[3].Position())
	assert.Equal(t, fyne.NewPos(6, 204.5), objects[4].Position())
}

func TestGalleryLayout_SkipsHiddenObjects(t *testing.T) {
	test.NewApp()

	first := canvas.NewRectangle(PlaceholderColor)
	hidden := canvas.NewRectangle(PlaceholderColor)
	hidden.Hide()
	second := canvas.NewRectangle(PlaceholderColor)

	l := NewGalleryLayout(190, 6)
	grid := container.New(l, first, hidden, second)
	grid.Resize(fyne.NewSize(800, 600))

	assert.Equal(t, fyne.NewPos(204.5, 6), second.Position())
	assert.Equal(t, float32(204.5), l.MinSize(grid.Objects).Height)
}

func TestGalleryLayout_NarrowWidthKeepsOneColumn(t *testing.T) {
	l := NewGalleryLayout(190, 6)
	l.SetWidth(100)
	l.SetItemCount(3)

	metrics := l.Metrics()
	assert.Equal(t, 1, metrics.Columns)
	assert.Equal(t, float32(88), metrics.CellSize)
	assert.Equal(t, float32(3*94+6), l.MinSize(nil).Height)
}

func TestGalleryLayout_MinWidthDoesNotFollowWidth(t *testing.T) {
	l := NewGalleryLayout(190, 6)

	for _, width := range []float32{800, 370, 250, 100} {
		l.SetWidth(width)
		assert.Equal(t, float32(13), l.MinSize(nil).Width)
	}
}

func TestThumbnailGrid_ShrinksInsideSplit(t *testing.T) {
	test.NewApp()

	grid := NewThumbnailGrid(newFakeRenderer(), 190, direct)
	grid.SetEntries(sampleEntries("a.jpg", "b.jpg", "c.jpg"))
	split := container.NewHSplit(widget.NewLabel("folders"), grid)
	split.Resize(fyne.NewSize(800, 600))

	split.SetOffset(0.55)
	wide := grid.Size().Width
	require.Greater(t, wide, float32(300))
	assert.Equal(t, 1, grid.Metrics().Columns)

	split.SetOffset(0.9)
	narrow := grid.Size().Width
	assert.Less(t, narrow, wide)
	assert.Less(t, narrow, float32(100))
	assert.Less(t, grid.MinSize().Width, narrow)

	split.SetOffset(0.2)
	assert.Equal(t, 3, grid.Metrics().Columns)
}

func TestThumbnail_PlaceholderFallsBackOutsideGalleryTheme(t *testing.T) {
	test.NewApp()
	assert.Equal(t, PlaceholderColor, NewThumbnail(nil).background.FillColor)

	app := test.NewApp()
	app.Settings().SetTheme(NewGalleryTheme())
	want := NewGalleryTheme().Color(ColorNamePlaceholderCell, app.Settings().ThemeVariant())
	assert.Equal(t, want, NewThumbnail(nil).background.FillColor)
}

func TestThumbnailGrid_CreatesCellsForViewportOnly(t *testing.T) {
	test.NewApp()

	names := make([]string, 100)
	for i := range names {
		names[i] = fmt.Sprintf("img_%03d.jpg", i)
	}
	renderer := newFakeRenderer()
	grid := NewThumbnailGrid(renderer, 190, direct)
	grid.Resize(fyne.NewSize(800, 400))
	grid.SetEntries(sampleEntries(names...))

	first, last := grid.VisibleRange()
	assert.Equal(t, 0, first)
	assert.Equal(t, 12, last)

	cells := grid.Cells()
	require.Len(t, cells, 12)
	for i, cell := range cells {
		assert.Equal(t, i, cell.GridIndex())
		assert.True(t, cell.HasImage(), "cell %d has no image", i)
	}
	assert.Equal(t, 4, grid.Metrics().Columns)
}

func TestThumbnailGrid_TapSelectsEntry(t *testing.T) {
	test.NewApp()

	grid := NewThumbnailGrid(newFakeRenderer(), 190, direct)
	grid.Resize(fyne.NewSize(800, 600))
	grid.SetEntries(sampleEntries("a.png", "b.png", "c.png"))

	selected := -1
	grid.OnSelected = func(index int) { selected = index }

	cells := grid.Cells()
	require.Len(t, cells, 3)
	test.Tap(cells[2])
	assert.Equal(t, 2, selected)
}

func TestThumbnailGrid_FailedRenderShowsErrorGlyph(t *testing.T) {
	test.NewApp()

	entries := sampleEntries("good.jpg", "broken.jpg")
	renderer := newFakeRenderer()
	renderer.fail(entries[1].Path)

	grid := NewThumbnailGrid(renderer, 190, direct)
	grid.Resize(fyne.NewSize(800, 600))
	grid.SetEntries(entries)

	cells := grid.Cells()
	require.Len(t, cells, 2)
	assert.False(t, cells[0].IsFailed())
	assert.True(t, cells[1].IsFailed())
	assert.False(t, cells[1].HasImage())
}

func TestThumbnailGrid_ReusesCellsWithoutRerendering(t *testing.T) {
	test.NewApp()

	entries := sampleEntries("a.png", "b.png")
	renderer := newFakeRenderer()
	grid := NewThumbnailGrid(renderer, 190, direct)
	grid.Resize(fyne.NewSize(800, 600))

	grid.SetEntries(entries)
	grid.SetEntries(entries)
	assert.Equal(t, 1, renderer.requests[entries[0].Path])

	grid.SetEntries(entries[1:])
	cells := grid.Cells()
	require.Len(t, cells, 1)
	assert.True(t, cells[0].Shows(entries[1]))
}

func TestThumbnailGrid_EmptyTextShownWithoutEntries(t *testing.T) {
	test.NewApp()

	grid := NewThumbnailGrid(newFakeRenderer(), 190, direct)
	grid.Resize(fyne.NewSize(400, 400))
	grid.SetEmptyText("nothing here")
	grid.SetEntries(nil)

	assert.True(t, grid.empty.Visible())
	assert.Equal(t, "nothing here", grid.empty.Text)
	assert.Empty(t, grid.Cells())

	grid.SetEntries(sampleEntries("a.png"))
	assert.False(t, grid.empty.Visible())
}

func TestThumbnailGrid_MinCellSizeChangesColumns(t *testing.T) {
	test.NewApp()

	grid := NewThumbnailGrid(newFakeRenderer(), 190, direct)
	grid.Resize(fyne.NewSize(800, 600))
	grid.SetMinCellSize(256)

	assert.Equal(t, 3, grid.Metrics().Columns)
	assert.Equal(t, 512, grid.renderSize)
}
