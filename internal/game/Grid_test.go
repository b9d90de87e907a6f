package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborRespectsGridEdges(t *testing.T) {
	grid := NewGrid(3, 3)

	// Top-left corner
	_, ok := grid.Neighbor(0, Up)
	assert.False(t, ok)
	_, ok = grid.Neighbor(0, Left)
	assert.False(t, ok)

	next, ok := grid.Neighbor(0, Right)
	assert.True(t, ok)
	assert.Equal(t, 1, next)

	next, ok = grid.Neighbor(0, Down)
	assert.True(t, ok)
	assert.Equal(t, 3, next)

	// Center cell has all four neighbors
	for dir, want := range map[Direction]int{Up: 1, Down: 7, Left: 3, Right: 5} {
		next, ok := grid.Neighbor(4, dir)
		assert.True(t, ok, "direction %s", dir)
		assert.Equal(t, want, next)
	}

	// Bottom-right corner
	_, ok = grid.Neighbor(8, Down)
	assert.False(t, ok)
	_, ok = grid.Neighbor(8, Right)
	assert.False(t, ok)
}

func TestOpenWallClearsMatchedPair(t *testing.T) {
	grid := NewGrid(2, 2)

	grid.OpenWall(0, 1, Right)
	assert.False(t, grid.Cells[0].East)
	assert.False(t, grid.Cells[1].West)
	assert.True(t, grid.Cells[0].North)
	assert.True(t, grid.Cells[1].East)

	grid.OpenWall(1, 3, Down)
	assert.False(t, grid.Cells[1].South)
	assert.False(t, grid.Cells[3].North)

	assert.False(t, grid.HasWall(0, Right))
	assert.False(t, grid.HasWall(1, Left))
	assert.True(t, grid.HasWall(0, Up))
}

func TestFitCellSizeCentersTheMaze(t *testing.T) {
	grid := NewGrid(3, 3)

	size, offsetX, offsetY := grid.FitCellSize(600, 600, 40)
	assert.Equal(t, 173, size)
	assert.Equal(t, (600-3*173)/2, offsetX)
	assert.Equal(t, (600-3*173)/2, offsetY)

	x, y := grid.CellOrigin(4, size, offsetX, offsetY)
	assert.Equal(t, offsetX+size, x)
	assert.Equal(t, offsetY+size, y)

	x, y = grid.CellOrigin(0, size, offsetX, offsetY)
	assert.Equal(t, offsetX, x)
	assert.Equal(t, offsetY, y)
}

func TestFitCellSizeWideGrid(t *testing.T) {
	grid := NewGrid(2, 10)

	size, _, _ := grid.FitCellSize(600, 600, 40)
	// The column count constrains the size here.
	assert.Equal(t, (600-80)/10, size)
}
