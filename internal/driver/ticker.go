package driver

import (
	"sync"
	"time"
)

// TickerScheduler is a Scheduler backed by time.Ticker. Ticks are posted to a
// Loop instead of being run on the ticker goroutine, so the callback shares
// the loop's goroutine with every other driver call.
type TickerScheduler struct {
	loop *Loop

	mu    sync.Mutex
	stop  chan struct{}
	epoch uint64
}

// NewTickerScheduler returns an idle scheduler that delivers ticks to loop.
func NewTickerScheduler(loop *Loop) *TickerScheduler {
	return &TickerScheduler{loop: loop}
}

// Start begins posting callback every interval, replacing any earlier run.
func (s *TickerScheduler) Start(callback func(), interval time.Duration) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.epoch++
	epoch := s.epoch
	stop := make(chan struct{})
	s.stop = stop

	tick := func() {
		// A tick posted just before Stop or a restart may still be queued.
		if s.current() != epoch {
			return
		}
		callback()
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-s.loop.Done():
				return
			case <-t.C:
				if !s.loop.post(tick, stop) {
					return
				}
			}
		}
	}()
}

// Stop halts the ticker. Ticks already queued on the loop become no-ops.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.epoch++
}

func (s *TickerScheduler) stopLocked() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

func (s *TickerScheduler) current() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}
