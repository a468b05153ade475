package driver

import (
	"time"

	"life-ca/internal/core"
)

// FrameScheduler is a Scheduler driven by a host frame loop. The host calls
// Poll once per frame and the callback runs inside Poll when an interval has
// elapsed, so ticks share the frame loop's goroutine.
type FrameScheduler struct {
	timer    *core.FixedStep
	callback func()
	active   bool
	now      func() time.Time
}

// NewFrameScheduler returns an idle FrameScheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{timer: core.NewFixedStep(0), now: time.Now}
}

// Start arms the scheduler. The first callback is due one interval later.
func (s *FrameScheduler) Start(callback func(), interval time.Duration) {
	s.callback = callback
	s.timer.SetInterval(interval)
	s.timer.Reset()
	s.active = callback != nil
}

// Stop disarms the scheduler.
func (s *FrameScheduler) Stop() {
	s.active = false
	s.callback = nil
}

// Active reports whether a callback is armed.
func (s *FrameScheduler) Active() bool { return s.active }

// Poll runs the callback if it is due.
func (s *FrameScheduler) Poll() { s.PollAt(s.now()) }

// PollAt runs the callback if it is due at time now.
func (s *FrameScheduler) PollAt(now time.Time) {
	if !s.active {
		return
	}
	if s.timer.ShouldStep(now) {
		s.callback()
	}
}
