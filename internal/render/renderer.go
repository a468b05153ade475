//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"life-ca/pkg/sims/life"
)

// GridPainter keeps an RGBA image of the board in sync with the grid it is
// handed each frame, reallocating when the board size changes.
type GridPainter struct {
	style Style
	size  int
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter using style.
func NewGridPainter(style Style) *GridPainter {
	return &GridPainter{style: style}
}

// Blit uploads g into the painter image and draws it at (x, y) on dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, x, y int) {
	if g.Size() != gp.size || gp.img == nil {
		gp.resize(g.Size())
	}
	if !fillBoardRGBA(gp.buf, g, gp.style) {
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.img, op)
}

func (gp *GridPainter) resize(size int) {
	if gp.img != nil {
		gp.img.Dispose()
	}
	side := gp.style.BoardPx(size)
	gp.size = size
	gp.img = ebiten.NewImage(side, side)
	gp.buf = make([]byte, 4*side*side)
}

// Size returns the pixel dimensions of a board of n cells per side.
func (gp *GridPainter) Size(n int) (int, int) {
	side := gp.style.BoardPx(n)
	return side, side
}
