package life

import "strconv"

// Domain bounds for the engine's tunables.
const (
	MinSize = 5
	MaxSize = 20

	MinIntervalMs  = 50
	MaxIntervalMs  = 300
	IntervalStepMs = 25
)

// Config holds the starting state of an Engine.
type Config struct {
	Size       int
	IntervalMs int
	Running    bool
	Seed       int64
}

// DefaultConfig returns the default configuration: a 10x10 board stepping
// every 200ms, running from the start.
func DefaultConfig() Config {
	return Config{Size: 10, IntervalMs: 200, Running: true, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = ClampSize(parsed)
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.IntervalMs = ClampIntervalMs(parsed)
		}
	}
	if v, ok := cfg["running"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Running = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ClampSize limits a board side length to [MinSize, MaxSize].
func ClampSize(size int) int {
	return min(max(size, MinSize), MaxSize)
}

// ClampIntervalMs limits a step interval to [MinIntervalMs, MaxIntervalMs]
// and snaps it to the nearest multiple of IntervalStepMs.
func ClampIntervalMs(ms int) int {
	ms = min(max(ms, MinIntervalMs), MaxIntervalMs)
	return (ms + IntervalStepMs/2) / IntervalStepMs * IntervalStepMs
}
