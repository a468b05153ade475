package render

import (
	"strings"

	"life-ca/pkg/sims/life"
)

// Glyphs used by Text.
const (
	GlyphAlive = '#'
	GlyphDead  = '.'
)

// Text renders g as one line per row, live cells as GlyphAlive.
func Text(g *life.Grid) string {
	var b strings.Builder
	size := g.Size()
	b.Grow(size * (size + 1))
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if g.Get(r, c) {
				b.WriteByte(GlyphAlive)
			} else {
				b.WriteByte(GlyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
