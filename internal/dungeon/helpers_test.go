package dungeon

import (
	"testing"
)

// lowerBound always returns the low end of the requested range.
type lowerBound struct{}

func (lowerBound) IntRange(lo, hi int) int { return lo }

// countingSource wraps a source and records how many values were drawn.
type countingSource struct {
	src   RandomSource
	calls int
}

func (c *countingSource) IntRange(lo, hi int) int {
	c.calls++
	return c.src.IntRange(lo, hi)
}

// gridFromRows builds a grid from the ASCII form produced by Grid.Rows.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func assertBorderWalls(t *testing.T, g *Grid) {
	t.Helper()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x != 0 && x != g.Width-1 && y != 0 && y != g.Height-1 {
				continue
			}
			if c, _ := g.ComponentAt(x, y); c != Wall {
				t.Fatalf("border cell (%d,%d) is %s, want wall", x, y, c)
			}
		}
	}
}

func assertRows(t *testing.T, g *Grid, want []string) {
	t.Helper()
	got := g.Rows()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d\n%s", len(got), len(want), g)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}
