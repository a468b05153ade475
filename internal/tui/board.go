// Package tui runs the simulator inside a terminal using termloop.
package tui

import (
	"fmt"
	"time"

	tl "github.com/JoelOtter/termloop"

	"life-ca/internal/driver"
	"life-ca/pkg/sims/life"
)

// Board is a termloop entity that renders the engine and forwards key
// presses to the driver. termloop calls Tick and Draw from its single game
// goroutine, which is also where the frame scheduler fires.
type Board struct {
	driver *driver.Driver
	sched  *driver.FrameScheduler
	x, y   int
}

// NewBoard wires a driver to a frame scheduler and returns the entity
// drawing it with its top-left corner at (x, y).
func NewBoard(cfg life.Config, x, y int) *Board {
	sched := driver.NewFrameScheduler()
	d := driver.New(life.New(cfg), sched)
	d.Start()
	return &Board{driver: d, sched: sched, x: x, y: y}
}

// Driver exposes the board's driver.
func (b *Board) Driver() *driver.Driver { return b.driver }

// Tick handles input and advances the simulation when a step is due.
func (b *Board) Tick(ev tl.Event) {
	if ev.Type == tl.EventKey {
		handleKey(b.driver, ev)
	}
	b.sched.Poll()
}

// Draw renders each cell two columns wide so the board looks square.
func (b *Board) Draw(s *tl.Screen) {
	e := b.driver.Engine()
	g := e.Grid()
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			cell := deadCell
			if g.Get(r, c) {
				cell = aliveCell
			}
			s.RenderCell(b.x+2*c, b.y+r, &cell)
			s.RenderCell(b.x+2*c+1, b.y+r, &cell)
		}
	}
	printAt(s, b.x, b.y+g.Size()+1, statusLine(e), tl.ColorWhite)
	printAt(s, b.x, b.y+g.Size()+2, helpLine, tl.ColorBlue)
}

var (
	aliveCell = tl.Cell{Bg: tl.ColorWhite, Fg: tl.ColorWhite, Ch: ' '}
	deadCell  = tl.Cell{Bg: tl.ColorBlack, Fg: tl.ColorBlue, Ch: '·'}
)

const helpLine = "space pause  n step  r randomize  s reseed  +/- size  [/] speed  ctrl-c quit"

func statusLine(e *life.Engine) string {
	state := "running"
	if !e.Running() {
		state = "paused "
	}
	return fmt.Sprintf("gen %-5d live %3d/%-3d %s %3dms",
		e.Generation(), e.Grid().Alive(), e.Size()*e.Size(), state, e.IntervalMs())
}

func printAt(s *tl.Screen, x, y int, text string, fg tl.Attr) {
	i := 0
	for _, ch := range text {
		s.RenderCell(x+i, y, &tl.Cell{Fg: fg, Bg: tl.ColorBlack, Ch: ch})
		i++
	}
}

// handleKey applies the control bound to ev and reports whether one matched.
func handleKey(d *driver.Driver, ev tl.Event) bool {
	e := d.Engine()
	switch ev.Key {
	case tl.KeySpace:
		d.TogglePause()
		return true
	case tl.KeyEnter:
		d.SetRunning(true)
		return true
	case tl.KeyArrowUp:
		d.SetSize(e.Size() + 1)
		return true
	case tl.KeyArrowDown:
		d.SetSize(e.Size() - 1)
		return true
	case tl.KeyArrowRight:
		d.SetIntervalMs(e.IntervalMs() + life.IntervalStepMs)
		return true
	case tl.KeyArrowLeft:
		d.SetIntervalMs(e.IntervalMs() - life.IntervalStepMs)
		return true
	}
	switch ev.Ch {
	case 'n':
		d.StepOnce()
	case 'r':
		d.Randomize()
	case 's':
		d.Reset(time.Now().UnixNano())
	case '+', '=':
		d.SetSize(e.Size() + 1)
	case '-':
		d.SetSize(e.Size() - 1)
	case ']':
		d.SetIntervalMs(e.IntervalMs() + life.IntervalStepMs)
	case '[':
		d.SetIntervalMs(e.IntervalMs() - life.IntervalStepMs)
	default:
		return false
	}
	return true
}

// Run opens the terminal UI and blocks until the user quits.
func Run(cfg life.Config, fps float64) {
	game := tl.NewGame()
	game.Screen().SetFps(fps)
	level := tl.NewBaseLevel(tl.Cell{Bg: tl.ColorBlack, Fg: tl.ColorWhite, Ch: ' '})
	board := NewBoard(cfg, 2, 1)
	level.AddEntity(board)
	game.Screen().SetLevel(level)
	game.Start()
	board.Driver().Close()
}
