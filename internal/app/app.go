//go:build ebiten

package app

import (
	"time"

	"life-ca/internal/driver"
	"life-ca/internal/render"
	"life-ca/internal/ui"
	"life-ca/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a driven Life engine to the ebiten.Game interface. All engine
// calls happen inside Update, on ebiten's game goroutine.
type Game struct {
	driver  *driver.Driver
	sched   *driver.FrameScheduler
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	style   render.Style
}

// New constructs a Game from the command-line configuration.
func New(cfg *Config) *Game {
	style := render.DefaultStyle()
	if cfg.CellPx > 0 {
		style.CellPx = cfg.CellPx
	}
	engine := life.New(cfg.LifeConfig())
	sched := driver.NewFrameScheduler()
	d := driver.New(engine, sched)
	d.Start()

	g := &Game{
		driver:  d,
		sched:   sched,
		painter: render.NewGridPainter(style),
		overlay: ui.NewOverlay(engine, style.CellPx),
		style:   style,
	}
	if cfg.HUDWidth > 0 {
		g.hud = ui.NewHUD(d, cfg.HUDWidth)
	}
	return g
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.driver.Close()
		return ebiten.Termination
	}
	e := g.driver.Engine()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.driver.SetRunning(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.driver.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.driver.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.driver.SetSize(e.Size() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.driver.SetSize(e.Size() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.driver.SetIntervalMs(e.IntervalMs() + life.IntervalStepMs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.driver.SetIntervalMs(e.IntervalMs() - life.IntervalStepMs)
	}

	g.overlay.Update()
	g.hud.Update(g.boardPx())

	// Control changes above land before the tick, so a resize is always
	// visible to the step that follows it.
	g.sched.Poll()
	return nil
}

// Draw renders the board, status bar and control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	board := g.boardPx()
	g.painter.Blit(screen, g.driver.Engine().Grid(), 0, 0)
	g.overlay.Draw(screen, board+g.hud.Width(), board)
	g.hud.Draw(screen, board, board+ui.StatusHeight)
}

// Layout returns the logical screen size, which follows the board size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	board := g.boardPx()
	return board + g.hud.Width(), board + ui.StatusHeight
}

func (g *Game) boardPx() int {
	return g.style.BoardPx(g.driver.Engine().Size())
}
