package game

// Cell is a single square of the level grid. A wall flag set to true means
// the wall on that side is still standing.
type Cell struct {
	North bool
	South bool
	East  bool
	West  bool

	// visited belongs to the generator and means nothing once carving
	// has finished.
	visited bool
}

// Grid holds Rows*Cols cells in row-major order, so the flat index of a
// cell is row*Cols+col. A grid is owned by one Session for the lifetime of
// one level and replaced wholesale on every level transition.
type Grid struct {
	Rows  int
	Cols  int
	Cells []*Cell
}

// NewGrid allocates a fully walled grid.
func NewGrid(rows, cols int) *Grid {
	cells := make([]*Cell, rows*cols)
	for i := range cells {
		cells[i] = &Cell{North: true, South: true, East: true, West: true}
	}

	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: cells,
	}
}

func (g *Grid) CellCount() int {
	return g.Rows * g.Cols
}

// Neighbor returns the flat index of the adjacent cell in the given
// direction, or false when the step would cross the grid edge.
func (g *Grid) Neighbor(cell int, dir Direction) (int, bool) {
	row, col := cell/g.Cols, cell%g.Cols

	switch dir {
	case Up:
		if row > 0 {
			return cell - g.Cols, true
		}
	case Down:
		if row < g.Rows-1 {
			return cell + g.Cols, true
		}
	case Left:
		if col > 0 {
			return cell - 1, true
		}
	case Right:
		if col < g.Cols-1 {
			return cell + 1, true
		}
	}

	return 0, false
}

// HasWall reports whether the wall on the given side of the cell is up.
func (g *Grid) HasWall(cell int, dir Direction) bool {
	c := g.Cells[cell]
	switch dir {
	case Up:
		return c.North
	case Down:
		return c.South
	case Left:
		return c.West
	case Right:
		return c.East
	}
	return true
}

// OpenWall knocks down the matched wall pair between a cell and its
// neighbor in the given direction.
func (g *Grid) OpenWall(cell, neighbor int, dir Direction) {
	switch dir {
	case Up:
		g.Cells[cell].North = false
		g.Cells[neighbor].South = false
	case Down:
		g.Cells[cell].South = false
		g.Cells[neighbor].North = false
	case Left:
		g.Cells[cell].West = false
		g.Cells[neighbor].East = false
	case Right:
		g.Cells[cell].East = false
		g.Cells[neighbor].West = false
	}
}

// FitCellSize picks the largest square cell size that fits the grid inside
// a viewport with the given margin on every side, and the offsets that
// center the maze. Renderers derive every cell's position from this.
func (g *Grid) FitCellSize(viewportWidth, viewportHeight, margin int) (size, offsetX, offsetY int) {
	size = min((viewportWidth-margin*2)/g.Cols, (viewportHeight-margin*2)/g.Rows)
	offsetX = (viewportWidth - g.Cols*size) / 2
	offsetY = (viewportHeight - g.Rows*size) / 2
	return size, offsetX, offsetY
}

// CellOrigin returns the top-left corner of a cell for the given layout.
func (g *Grid) CellOrigin(cell, size, offsetX, offsetY int) (x, y int) {
	row, col := cell/g.Cols, cell%g.Cols
	return col*size + offsetX, row*size + offsetY
}
