package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	start := time.Unix(0, 0)

	if fs.ShouldStep(start) {
		t.Fatal("first poll should not fire")
	}
	fired := 0
	for ms := 10; ms <= 1000; ms += 10 {
		if fs.ShouldStep(start.Add(time.Duration(ms) * time.Millisecond)) {
			fired++
		}
	}
	if fired != 10 {
		t.Fatalf("fired %d times over one second, expected 10", fired)
	}
}

func TestFixedStepNoBurstAfterStall(t *testing.T) {
	fs := NewFixedStep(50 * time.Millisecond)
	start := time.Unix(0, 0)
	fs.ShouldStep(start)

	if !fs.ShouldStep(start.Add(time.Second)) {
		t.Fatal("poll after a stall should fire")
	}
	if fs.ShouldStep(start.Add(time.Second + time.Millisecond)) {
		t.Fatal("stall should not queue catch-up ticks")
	}
}

func TestFixedStepSetIntervalAndReset(t *testing.T) {
	fs := NewFixedStep(200 * time.Millisecond)
	start := time.Unix(0, 0)
	fs.ShouldStep(start)
	fs.ShouldStep(start.Add(60 * time.Millisecond))

	fs.SetInterval(50 * time.Millisecond)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}
	if !fs.ShouldStep(start.Add(61 * time.Millisecond)) {
		t.Fatal("accumulated time should count toward a shorter interval")
	}

	fs.Reset()
	now := start.Add(500 * time.Millisecond)
	if fs.ShouldStep(now) {
		t.Fatal("first poll after Reset should not fire")
	}
	if !fs.ShouldStep(now.Add(50 * time.Millisecond)) {
		t.Fatal("tick should be due one interval after Reset")
	}
}

func TestFixedStepDefaultInterval(t *testing.T) {
	if got := NewFixedStep(0).Interval(); got != time.Second/60 {
		t.Fatalf("interval = %v, expected 1/60s", got)
	}
}
