package snake

import "testing"

func TestGridContains(t *testing.T) {
	g := Grid{W: 10, H: 6}

	inside := []Cell{{0, 0}, {9, 5}, {5, 3}}
	for _, c := range inside {
		if !g.Contains(c) {
			t.Errorf("%v should be inside the grid", c)
		}
	}

	outside := []Cell{{-1, 0}, {0, -1}, {10, 0}, {0, 6}}
	for _, c := range outside {
		if g.Contains(c) {
			t.Errorf("%v should be outside the grid", c)
		}
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{W: 10, H: 6}

	cases := []struct {
		in, want Cell
	}{
		{Cell{10, 3}, Cell{0, 3}},
		{Cell{-1, 3}, Cell{9, 3}},
		{Cell{4, 6}, Cell{4, 0}},
		{Cell{4, -1}, Cell{4, 5}},
		{Cell{4, 3}, Cell{4, 3}}, // Interior cells pass through
	}
	for _, c := range cases {
		if got := g.Wrap(c.in); got != c.want {
			t.Errorf("Wrap(%v) should be %v, got %v", c.in, c.want, got)
		}
	}
}

func TestGridCenter(t *testing.T) {
	g := Grid{W: 36, H: 18}
	want := Cell{X: 18, Y: 9}
	if g.Center() != want {
		t.Errorf("Center should be %v, got %v", want, g.Center())
	}
}

func TestDirectionDeltaAndOpposite(t *testing.T) {
	cases := []struct {
		dir      Direction
		dx, dy   int
		opposite Direction
	}{
		{DirRight, 1, 0, DirLeft},
		{DirLeft, -1, 0, DirRight},
		{DirUp, 0, -1, DirDown},
		{DirDown, 0, 1, DirUp},
	}
	for _, c := range cases {
		dx, dy := c.dir.Delta()
		if dx != c.dx || dy != c.dy {
			t.Errorf("Delta(%v) should be (%d,%d), got (%d,%d)", c.dir, c.dx, c.dy, dx, dy)
		}
		if c.dir.Opposite() != c.opposite {
			t.Errorf("Opposite(%v) should be %v, got %v", c.dir, c.opposite, c.dir.Opposite())
		}
	}
}

func TestChebyshev(t *testing.T) {
	cases := []struct {
		a, b Cell
		want int
	}{
		{Cell{0, 0}, Cell{0, 0}, 0},
		{Cell{0, 0}, Cell{3, 1}, 3},
		{Cell{0, 0}, Cell{1, 4}, 4},
		{Cell{5, 5}, Cell{2, 8}, 3},
	}
	for _, c := range cases {
		if got := chebyshev(c.a, c.b); got != c.want {
			t.Errorf("chebyshev(%v, %v) should be %d, got %d", c.a, c.b, c.want, got)
		}
	}
}
