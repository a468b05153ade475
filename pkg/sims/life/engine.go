package life

import (
	"time"

	"life-ca/pkg/core"
)

// Engine holds a Game of Life board together with its run state and step
// interval. It performs no locking: callers must serialize every call made
// against one Engine.
type Engine struct {
	grid       *Grid
	running    bool
	intervalMs int
	generation int

	seed int64
	rng  *core.RNG
	src  core.RandomSource
}

// New returns an Engine configured from cfg with a randomized board drawn
// from a generator seeded with cfg.Seed.
func New(cfg Config) *Engine {
	rng := core.NewRNG(cfg.Seed)
	e := NewWithSource(cfg, rng)
	e.rng = rng
	return e
}

// NewWithSource returns an Engine that draws randomness from src.
func NewWithSource(cfg Config, src core.RandomSource) *Engine {
	e := &Engine{
		running:    cfg.Running,
		intervalMs: ClampIntervalMs(cfg.IntervalMs),
		seed:       cfg.Seed,
		src:        src,
	}
	e.grid = RandomGrid(ClampSize(cfg.Size), src)
	return e
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the current side length of the board.
func (e *Engine) Size() int { return e.grid.Size() }

// Grid exposes the current board. Callers must treat it as read-only; use
// Snapshot for a copy that may be kept across steps.
func (e *Engine) Grid() *Grid { return e.grid }

// Snapshot returns a deep copy of the current board.
func (e *Engine) Snapshot() *Grid { return e.grid.Clone() }

// Running reports whether the stepping loop should be active.
func (e *Engine) Running() bool { return e.running }

// IntervalMs returns the time between generations in milliseconds.
func (e *Engine) IntervalMs() int { return e.intervalMs }

// Interval returns the time between generations.
func (e *Engine) Interval() time.Duration {
	return time.Duration(e.intervalMs) * time.Millisecond
}

// Generation returns how many steps were applied since the board was last
// randomized.
func (e *Engine) Generation() int { return e.generation }

// Seed returns the seed the engine's generator was last rewound to.
func (e *Engine) Seed() int64 { return e.seed }

// Step advances the board by one generation. It does not consult the running
// flag; gating steps on it is the caller's job.
func (e *Engine) Step() {
	e.grid = Advance(e.grid)
	e.generation++
}

// Randomize replaces the board with a fresh random one of the current size.
func (e *Engine) Randomize() {
	e.grid = RandomGrid(e.grid.Size(), e.src)
	e.generation = 0
}

// Reset rewinds the built-in generator to seed and randomizes the board.
// Engines built with NewWithSource keep their source and only randomize.
func (e *Engine) Reset(seed int64) {
	if e.rng != nil {
		e.rng.Seed(seed)
		e.seed = seed
	}
	e.Randomize()
}

// SetSize clamps size to [MinSize, MaxSize] and resizes the board when the
// result differs from the current size. Overlapping cells keep their state.
func (e *Engine) SetSize(size int) {
	size = ClampSize(size)
	if size == e.grid.Size() {
		return
	}
	e.grid = e.grid.Resize(size)
}

// SetRunning starts or pauses the simulation. The board is not touched.
func (e *Engine) SetRunning(running bool) { e.running = running }

// SetIntervalMs clamps and stores the step interval. The board is not touched.
func (e *Engine) SetIntervalMs(ms int) { e.intervalMs = ClampIntervalMs(ms) }
