package life

// Grid stores a square board of cell states indexed as cells[row][col].
// Reads outside the board report dead cells, which gives the board an open
// (non-wrapping) boundary.
type Grid struct {
	size  int
	cells [][]bool
}

// NewGrid allocates an all-dead grid with the given side length.
func NewGrid(size int) *Grid {
	if size < 1 {
		size = 1
	}
	cells := make([][]bool, size)
	backing := make([]bool, size*size)
	for r := range cells {
		cells[r] = backing[r*size : (r+1)*size : (r+1)*size]
	}
	return &Grid{size: size, cells: cells}
}

// NewGridFromRows builds a grid from a square literal. Rows shorter than the
// row count are padded with dead cells; longer rows are truncated.
func NewGridFromRows(rows [][]bool) *Grid {
	g := NewGrid(len(rows))
	for r, row := range rows {
		copy(g.cells[r], row)
	}
	return g
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (row, col) addresses a cell on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Get returns the state of the cell at (row, col), or false when the
// coordinates fall outside the board.
func (g *Grid) Get(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// Set writes the cell at (row, col). Out-of-range writes are ignored and
// reported by returning false.
func (g *Grid) Set(row, col int, alive bool) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[row][col] = alive
	return true
}

// Resize returns a new grid of side newSize. Overlapping cells keep their
// state at the same coordinates and cells outside the old board start dead.
// The receiver is left untouched.
func (g *Grid) Resize(newSize int) *Grid {
	next := NewGrid(newSize)
	for r := 0; r < next.size; r++ {
		row := next.cells[r]
		for c := range row {
			row[c] = g.Get(r, c)
		}
	}
	return next
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return g.Resize(g.size)
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.size != other.size {
		return false
	}
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Alive counts the live cells on the board.
func (g *Grid) Alive() int {
	n := 0
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Rows returns a copy of the cell matrix.
func (g *Grid) Rows() [][]bool {
	return g.Clone().cells
}
