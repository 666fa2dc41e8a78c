package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGrid(t *testing.T) {
	tests := []struct {
		width    float32
		columns  int
		cellSize float32
	}{
		{800, 4, 192.5},
		{190, 1, 178},
		{100, 1, 88},
		{380, 2, 181},
		{1920, 10, 185.4},
	}

	for _, test := range tests {
		m := ComputeGrid(test.width, DefaultMinCellSize, DefaultCellMargin)
		assert.Equal(t, test.columns, m.Columns, "columns for width %v", test.width)
		assert.InDelta(t, test.cellSize, m.CellSize, 0.001, "cell size for width %v", test.width)
	}
}

func TestComputeGrid_NonPositiveWidth(t *testing.T) {
	m := ComputeGrid(0, 190, 6)
	assert.Equal(t, 1, m.Columns)
	assert.Equal(t, float32(190), m.CellSize)

	m = ComputeGrid(-10, 0, 6)
	assert.Equal(t, 1, m.Columns)
	assert.Equal(t, DefaultMinCellSize, m.CellSize)
}

func TestGridMetrics_CellsSpanFullWidth(t *testing.T) {
	m := ComputeGrid(800, 190, 6)

	x, y := m.CellOrigin(3)
	assert.InDelta(t, 800, x+m.CellSize+m.Margin, 0.001)
	assert.Equal(t, float32(6), y)

	x, y = m.CellOrigin(4)
	assert.Equal(t, float32(6), x)
	assert.InDelta(t, 6+192.5+6, y, 0.001)
}

func TestGridMetrics_Rows(t *testing.T) {
	m := GridMetrics{Columns: 4, CellSize: 100, Margin: 6}

	assert.Equal(t, 0, m.Rows(0))
	assert.Equal(t, 1, m.Rows(1))
	assert.Equal(t, 1, m.Rows(4))
	assert.Equal(t, 2, m.Rows(5))
	assert.Equal(t, float32(0), m.ContentHeight(0))
	assert.Equal(t, float32(2*106+6), m.ContentHeight(5))
}
