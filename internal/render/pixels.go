package render

import (
	"image/color"

	"life-ca/pkg/sims/life"
)

// Style describes how a board is painted: every cell is a CellPx square with
// a Gap-pixel margin of Background around a Border-pixel Edge frame. The
// interior is On for live cells and Off for dead ones.
type Style struct {
	CellPx int
	Gap    int
	Border int

	On         color.Color
	Off        color.Color
	Edge       color.Color
	Background color.Color
}

// DefaultStyle returns white live cells in dark slate frames.
func DefaultStyle() Style {
	return Style{
		CellPx:     28,
		Gap:        2,
		Border:     2,
		On:         color.White,
		Off:        color.RGBA{R: 15, G: 23, B: 42, A: 255},
		Edge:       color.RGBA{R: 30, G: 41, B: 59, A: 255},
		Background: color.RGBA{R: 15, G: 23, B: 42, A: 255},
	}
}

// BoardPx returns the side length in pixels of a size x size board.
func (s Style) BoardPx(size int) int { return size * s.CellPx }

type rgba [4]uint8

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBoardRGBA paints g into buf, which must hold BoardPx(g.Size())^2 RGBA
// pixels. It reports false and leaves buf alone when the length is wrong.
func fillBoardRGBA(buf []byte, g *life.Grid, s Style) bool {
	side := s.BoardPx(g.Size())
	if s.CellPx <= 0 || len(buf) != 4*side*side {
		return false
	}
	on, off := toRGBA(s.On), toRGBA(s.Off)
	edge, bg := toRGBA(s.Edge), toRGBA(s.Background)

	for y := 0; y < side; y++ {
		row, oy := y/s.CellPx, y%s.CellPx
		for x := 0; x < side; x++ {
			col, ox := x/s.CellPx, x%s.CellPx
			var px rgba
			switch d := min(ox, oy, s.CellPx-1-ox, s.CellPx-1-oy); {
			case d < s.Gap:
				px = bg
			case d < s.Gap+s.Border:
				px = edge
			case g.Get(row, col):
				px = on
			default:
				px = off
			}
			copy(buf[(y*side+x)*4:], px[:])
		}
	}
	return true
}
