package core

import "math/rand/v2"

// RandomSource yields independent uniform booleans. Implementations need not be
// safe for concurrent use.
type RandomSource interface {
	Bool() bool
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Seed rewinds the generator onto a new deterministic stream.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// SourceFunc adapts a plain function to RandomSource.
type SourceFunc func() bool

// Bool calls f.
func (f SourceFunc) Bool() bool { return f() }
