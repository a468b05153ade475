// Package driver connects a life.Engine to a clock and to the controls that
// mutate it. Every Driver method must be called from one goroutine, the same
// one the Scheduler delivers ticks on.
package driver

import (
	"time"

	"life-ca/internal/core"
	"life-ca/pkg/sims/life"
)

// Scheduler invokes a callback about once per interval until stopped.
// Calling Start again replaces the previous callback and interval.
type Scheduler interface {
	Start(callback func(), interval time.Duration)
	Stop()
}

// Driver gates engine steps on the running flag and relays control changes.
type Driver struct {
	engine *life.Engine
	sched  Scheduler
	onStep func(*life.Engine)
}

// New returns a Driver for engine. The scheduler stays idle until Start.
func New(engine *life.Engine, sched Scheduler) *Driver {
	return &Driver{engine: engine, sched: sched}
}

// Engine exposes the driven engine for read-only use such as rendering.
func (d *Driver) Engine() *life.Engine { return d.engine }

// OnStep registers fn to run after every generation the driver applies.
func (d *Driver) OnStep(fn func(*life.Engine)) { d.onStep = fn }

// Start arms the scheduler if the engine is running.
func (d *Driver) Start() {
	if d.engine.Running() {
		d.sched.Start(d.Tick, d.engine.Interval())
	}
}

// Close stops the scheduler.
func (d *Driver) Close() { d.sched.Stop() }

// Tick is the scheduler callback. It advances one generation unless the
// engine is paused.
func (d *Driver) Tick() {
	if !d.engine.Running() {
		return
	}
	d.step()
}

// StepOnce advances one generation regardless of the running flag.
func (d *Driver) StepOnce() { d.step() }

func (d *Driver) step() {
	d.engine.Step()
	if d.onStep != nil {
		d.onStep(d.engine)
	}
}

// SetRunning pauses or resumes stepping. Pausing stops the scheduler before
// returning, so no further tick reaches the engine.
func (d *Driver) SetRunning(running bool) {
	if running == d.engine.Running() {
		return
	}
	d.engine.SetRunning(running)
	if running {
		d.sched.Start(d.Tick, d.engine.Interval())
		return
	}
	d.sched.Stop()
}

// TogglePause flips the running flag.
func (d *Driver) TogglePause() { d.SetRunning(!d.engine.Running()) }

// SetIntervalMs changes the step interval and re-arms a running scheduler.
func (d *Driver) SetIntervalMs(ms int) {
	before := d.engine.IntervalMs()
	d.engine.SetIntervalMs(ms)
	if d.engine.IntervalMs() == before || !d.engine.Running() {
		return
	}
	d.sched.Start(d.Tick, d.engine.Interval())
}

// SetSize resizes the board immediately; the next tick sees the new size.
func (d *Driver) SetSize(size int) { d.engine.SetSize(size) }

// Randomize replaces the board with a random one of the current size.
func (d *Driver) Randomize() { d.engine.Randomize() }

// Reset reseeds the engine's generator and randomizes the board.
func (d *Driver) Reset(seed int64) { d.engine.Reset(seed) }

// Parameters reports the engine's parameters.
func (d *Driver) Parameters() core.ParameterSnapshot { return d.engine.Parameters() }

// ParameterControls lists the HUD-adjustable controls.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return d.engine.ParameterControls()
}

// SetIntParameter routes HUD integer changes through the driver so the
// scheduler follows interval changes.
func (d *Driver) SetIntParameter(key string, value int) bool {
	switch key {
	case life.ParamSize:
		d.SetSize(value)
	case life.ParamIntervalMs:
		d.SetIntervalMs(value)
	default:
		return false
	}
	return true
}

// SetBoolParameter routes HUD boolean changes through the driver.
func (d *Driver) SetBoolParameter(key string, value bool) bool {
	if key != life.ParamRunning {
		return false
	}
	d.SetRunning(value)
	return true
}

// Name returns the engine's simulation name.
func (d *Driver) Name() string { return d.engine.Name() }
