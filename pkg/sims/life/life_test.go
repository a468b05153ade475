package life

import (
	"testing"

	"life-ca/pkg/core"
)

func gridWith(size int, alive ...[2]int) *Grid {
	g := NewGrid(size)
	for _, rc := range alive {
		g.Set(rc[0], rc[1], true)
	}
	return g
}

func expectAlive(t *testing.T, g *Grid, expects map[[2]int]bool, stage string) {
	t.Helper()
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			alive := g.Get(r, c)
			_, shouldBeAlive := expects[[2]int{r, c}]
			if shouldBeAlive != alive {
				t.Fatalf("%s cell (%d,%d) alive=%v, expected %v", stage, r, c, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridWith(5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	g = Advance(g)
	expectAlive(t, g, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "after first step")

	g = Advance(g)
	expectAlive(t, g, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "after second step")
}

func TestAdvanceReadsSnapshot(t *testing.T) {
	// An in-place update would count cells already rewritten in this step and
	// the blinker would not rotate.
	g := gridWith(5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	before := g.Clone()

	next := Advance(g)

	if !g.Equal(before) {
		t.Fatal("Advance must not modify its input")
	}
	expectAlive(t, next, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "after step")
}

func TestAdvanceDeterministic(t *testing.T) {
	g := RandomGrid(12, core.NewRNG(5))
	a := Advance(g)
	b := Advance(g)
	if !a.Equal(b) {
		t.Fatal("Advance returned different results for the same input")
	}
}

func TestBirthWithThreeNeighbors(t *testing.T) {
	g := gridWith(3, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0})

	if n := NeighborCount(g, 1, 1); n != 3 {
		t.Fatalf("neighbor count of (1,1) = %d, expected 3", n)
	}

	next := Advance(g)
	if !next.Get(1, 1) {
		t.Fatal("dead cell with three live neighbors should be born")
	}
	expectAlive(t, next, map[[2]int]bool{
		{0, 0}: true,
		{0, 1}: true,
		{1, 0}: true,
		{1, 1}: true,
	}, "after step")
}

func TestIsolatedCellDies(t *testing.T) {
	g := gridWith(5, [2]int{2, 2})
	next := Advance(g)
	if next.Alive() != 0 {
		t.Fatalf("isolated cell should die, %d cells alive", next.Alive())
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	g := gridWith(5, [2]int{2, 2}, [2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 1})
	if n := NeighborCount(g, 2, 2); n != 4 {
		t.Fatalf("neighbor count of (2,2) = %d, expected 4", n)
	}
	if Advance(g).Get(2, 2) {
		t.Fatal("live cell with four neighbors should die")
	}
}

func TestBlockIsStillLife(t *testing.T) {
	for _, size := range []int{4, 6, 10} {
		g := gridWith(size, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
		if next := Advance(g); !next.Equal(g) {
			t.Fatalf("block on %dx%d board changed after a step", size, size)
		}
	}
}

func TestNoWraparound(t *testing.T) {
	const n = 5
	g := gridWith(n, [2]int{n - 1, n - 1}, [2]int{n - 1, 0}, [2]int{0, n - 1})

	if got := NeighborCount(g, 0, 0); got != 0 {
		t.Fatalf("corner (0,0) counted %d neighbors across the edge", got)
	}
	if Advance(g).Get(0, 0) {
		t.Fatal("corner cell born from wrapped neighbors")
	}
}

func TestCornerNeighborCount(t *testing.T) {
	g := NewGrid(5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			g.Set(r, c, true)
		}
	}
	tests := []struct {
		row, col int
		want     int
	}{
		{0, 0, 3},
		{0, 4, 3},
		{4, 0, 3},
		{4, 4, 3},
		{0, 2, 5},
		{2, 0, 5},
		{2, 2, 8},
	}
	for _, tc := range tests {
		if got := NeighborCount(g, tc.row, tc.col); got != tc.want {
			t.Fatalf("NeighborCount(%d,%d) = %d, expected %d", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := NextState(false, n), n == 3; got != want {
			t.Fatalf("dead cell with %d neighbors -> %v, expected %v", n, got, want)
		}
		if got, want := NextState(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("live cell with %d neighbors -> %v, expected %v", n, got, want)
		}
	}
}
