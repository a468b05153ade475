package driver

import (
	"context"
	"sync"
)

// Loop runs posted functions one at a time on the goroutine that calls Run.
// It is the serialization point for headless drivers: ticks and control
// commands are both posted here.
type Loop struct {
	queue    chan func()
	done     chan struct{}
	doneOnce sync.Once
}

// NewLoop returns a Loop whose queue holds up to buffer pending functions.
func NewLoop(buffer int) *Loop {
	if buffer < 0 {
		buffer = 0
	}
	return &Loop{queue: make(chan func(), buffer), done: make(chan struct{})}
}

// Post queues fn. It blocks while the queue is full and reports false if the
// loop has stopped.
func (l *Loop) Post(fn func()) bool {
	return l.post(fn, nil)
}

func (l *Loop) post(fn func(), cancel <-chan struct{}) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	case <-cancel:
		return false
	}
}

// Run executes posted functions until ctx is done and returns ctx.Err().
// Functions still queued when ctx ends are dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer l.doneOnce.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			if fn != nil {
				fn()
			}
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} { return l.done }
