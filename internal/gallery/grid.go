package gallery

import "math"

// Grid sizing defaults
const (
	DefaultMinCellSize float32 = 190
	DefaultCellMargin  float32 = 6
)

// GridMetrics describes how thumbnails are laid out for a given width
type GridMetrics struct {
	Columns  int
	CellSize float32
	Margin   float32
}

// ComputeGrid returns the column count and square cell size for a container
// of the given width. Columns are floor(width/minSize) with a minimum of one,
// and the remaining width is shared so that columns+1 margins fit exactly.
func ComputeGrid(width, minSize, margin float32) GridMetrics {
	if minSize <= 0 {
		minSize = DefaultMinCellSize
	}
	if margin < 0 {
		margin = 0
	}
	if width <= 0 {
		return GridMetrics{Columns: 1, CellSize: minSize, Margin: margin}
	}

	columns := int(math.Floor(float64(width / minSize)))
	if columns < 1 {
		columns = 1
	}

	cell := (width - float32(columns+1)*margin) / float32(columns)
	if cell < 1 {
		cell = 1
	}

	return GridMetrics{Columns: columns, CellSize: cell, Margin: margin}
}

// Rows returns how many rows are needed for count cells
func (m GridMetrics) Rows(count int) int {
	if count <= 0 || m.Columns <= 0 {
		return 0
	}
	return (count + m.Columns - 1) / m.Columns
}

// CellOrigin returns the top-left corner of the cell at index
func (m GridMetrics) CellOrigin(index int) (x, y float32) {
	if m.Columns <= 0 {
		return m.Margin, m.Margin
	}
	col := index % m.Columns
	row := index / m.Columns
	x = m.Margin + float32(col)*(m.CellSize+m.Margin)
	y = m.Margin + float32(row)*(m.CellSize+m.Margin)
	return x, y
}

// ContentHeight returns the height required to show count cells
func (m GridMetrics) ContentHeight(count int) float32 {
	rows := m.Rows(count)
	if rows == 0 {
		return 0
	}
	return float32(rows)*(m.CellSize+m.Margin) + m.Margin
}
