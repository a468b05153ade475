//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"life-ca/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusHeight is the pixel height of the status bar below the board.
const StatusHeight = 20

// Overlay draws the status bar and, when toggled with G, neighbor counts on
// top of the board.
type Overlay struct {
	engine        *life.Engine
	cellPx        int
	showNeighbors bool
	bar           *ebiten.Image
	lastBarW      int
}

// NewOverlay constructs an overlay for engine drawn over cells of cellPx.
func NewOverlay(engine *life.Engine, cellPx int) *Overlay {
	return &Overlay{engine: engine, cellPx: cellPx}
}

// Update handles overlay key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showNeighbors = !o.showNeighbors
	}
}

// Draw paints the neighbor counts over the board and the status bar at y.
func (o *Overlay) Draw(screen *ebiten.Image, width, y int) {
	face := basicfont.Face7x13
	if o.showNeighbors && o.cellPx >= 14 {
		g := o.engine.Grid()
		for r := 0; r < g.Size(); r++ {
			for c := 0; c < g.Size(); c++ {
				n := life.NeighborCount(g, r, c)
				if n == 0 {
					continue
				}
				clr := color.RGBA{R: 250, G: 160, B: 60, A: 255}
				x := c*o.cellPx + o.cellPx/2 - 3
				ty := r*o.cellPx + o.cellPx/2 + 5
				text.Draw(screen, fmt.Sprint(n), face, x, ty, clr)
			}
		}
	}

	if width <= 0 {
		return
	}
	if o.bar == nil || o.lastBarW != width {
		if o.bar != nil {
			o.bar.Dispose()
		}
		o.bar = ebiten.NewImage(width, StatusHeight)
		o.lastBarW = width
	}
	o.bar.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})
	text.Draw(o.bar, o.status(), face, 8, 14, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(o.bar, op)
}

func (o *Overlay) status() string {
	state := "running"
	if !o.engine.Running() {
		state = "paused"
	}
	return fmt.Sprintf("gen %d  live %d/%d  %s  %dms",
		o.engine.Generation(), o.engine.Grid().Alive(), o.engine.Size()*o.engine.Size(),
		state, o.engine.IntervalMs())
}
