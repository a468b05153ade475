package life

// NeighborCount returns how many of the eight Moore neighbors of (row, col)
// are alive. Positions off the board count as dead.
func NeighborCount(g *Grid, row, col int) int {
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Get(row+dr, col+dc) {
				neighbors++
			}
		}
	}
	return neighbors
}

// NextState applies Conway's rules to a single cell: a dead cell with exactly
// three neighbors is born, a live cell with fewer than two or more than three
// neighbors dies, and everything else keeps its state.
func NextState(alive bool, neighbors int) bool {
	if !alive && neighbors == 3 {
		return true
	}
	if alive && neighbors != 2 && neighbors != 3 {
		return false
	}
	return alive
}

// Advance computes the next generation of g. Every cell is evaluated against
// g as it was before the call; the result is written into a fresh grid and g
// is not modified.
func Advance(g *Grid) *Grid {
	next := NewGrid(g.size)
	for r := 0; r < g.size; r++ {
		row := next.cells[r]
		for c := range row {
			row[c] = NextState(g.cells[r][c], NeighborCount(g, r, c))
		}
	}
	return next
}

// ResizeGrid is the functional form of (*Grid).Resize.
func ResizeGrid(g *Grid, newSize int) *Grid {
	return g.Resize(newSize)
}
