package life

import "life-ca/pkg/core"

// RandomGrid builds a grid where each cell is independently alive with
// probability one half, drawing one value from src per cell in row-major order.
func RandomGrid(size int, src core.RandomSource) *Grid {
	g := NewGrid(size)
	for _, row := range g.cells {
		for c := range row {
			row[c] = src.Bool()
		}
	}
	return g
}
