package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 256; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestRNGSeedRewinds(t *testing.T) {
	r := NewRNG(3)
	first := make([]bool, 64)
	for i := range first {
		first[i] = r.Bool()
	}
	r.Seed(3)
	for i := range first {
		if got := r.Bool(); got != first[i] {
			t.Fatalf("draw %d after reseed = %v, expected %v", i, got, first[i])
		}
	}
}

func TestSourceFunc(t *testing.T) {
	calls := 0
	var src RandomSource = SourceFunc(func() bool {
		calls++
		return calls%2 == 0
	})
	if src.Bool() {
		t.Fatal("first call should report false")
	}
	if !src.Bool() {
		t.Fatal("second call should report true")
	}
}
