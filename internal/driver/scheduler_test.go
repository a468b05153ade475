package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"life-ca/pkg/sims/life"
)

func TestFrameSchedulerPolling(t *testing.T) {
	s := NewFrameScheduler()
	calls := 0
	start := time.Unix(0, 0)

	s.PollAt(start)
	s.Start(func() { calls++ }, 100*time.Millisecond)
	if !s.Active() {
		t.Fatal("scheduler should be active after Start")
	}

	for ms := 0; ms <= 500; ms += 20 {
		s.PollAt(start.Add(time.Duration(ms) * time.Millisecond))
	}
	if calls != 5 {
		t.Fatalf("calls = %d, expected 5", calls)
	}

	s.Stop()
	s.PollAt(start.Add(2 * time.Second))
	if calls != 5 {
		t.Fatal("stopped scheduler should not fire")
	}
}

func TestFrameSchedulerDrivesEngine(t *testing.T) {
	s := NewFrameScheduler()
	d := New(life.New(life.Config{Size: 8, IntervalMs: 50, Running: true, Seed: 4}), s)
	d.Start()

	start := time.Unix(0, 0)
	for ms := 0; ms <= 200; ms += 10 {
		s.PollAt(start.Add(time.Duration(ms) * time.Millisecond))
	}
	if got := d.Engine().Generation(); got != 4 {
		t.Fatalf("generation = %d, expected 4", got)
	}

	d.SetRunning(false)
	for ms := 210; ms <= 400; ms += 10 {
		s.PollAt(start.Add(time.Duration(ms) * time.Millisecond))
	}
	if got := d.Engine().Generation(); got != 4 {
		t.Fatalf("paused engine advanced to generation %d", got)
	}
}

func TestLoopRunsInOrder(t *testing.T) {
	l := NewLoop(8)
	ctx, cancel := context.WithCancel(context.Background())

	var order []int
	for i := 0; i < 5; i++ {
		l.Post(func() { order = append(order, i) })
	}
	l.Post(cancel)

	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, expected context.Canceled", err)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, expected ascending", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("ran %d functions, expected 5", len(order))
	}
	if l.Post(func() {}) {
		t.Fatal("Post after Run returned should fail")
	}
}

func TestTickerSchedulerPostsToLoop(t *testing.T) {
	l := NewLoop(4)
	s := NewTickerScheduler(l)
	d := New(life.New(life.Config{Size: 6, IntervalMs: 50, Running: true, Seed: 2}), s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	d.OnStep(func(e *life.Engine) {
		if e.Generation() == 3 {
			d.SetRunning(false)
			cancel()
		}
	})
	l.Post(d.Start)

	err := l.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v before three generations", err)
	}
	if got := d.Engine().Generation(); got != 3 {
		t.Fatalf("generation = %d, expected 3", got)
	}
	s.Stop()
}

func TestTickerSchedulerStopDropsQueuedTicks(t *testing.T) {
	l := NewLoop(1)
	s := NewTickerScheduler(l)
	calls := 0
	s.Start(func() { calls++ }, time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	s.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_ = l.Run(ctx)

	if calls != 0 {
		t.Fatalf("%d ticks ran after Stop", calls)
	}
}
