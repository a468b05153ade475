package core

import "time"

// FixedStep paces simulation updates at a steady interval from inside a frame
// loop that runs faster than the interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller firing once per interval.
// The first tick is due one full interval after the first poll.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick interval. It is safe to call from the main loop;
// time already accumulated counts toward the new interval.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
}

// Interval returns the configured tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset drops accumulated time so the next tick is a full interval away.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick at
// time now. At most one tick is reported per call and a long stall does not
// queue up a burst of catch-up ticks.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator >= f.step {
		f.accumulator = 0
	}
	return true
}
