package snake

import "testing"

func TestNewSnakeBodyLayout(t *testing.T) {
	s := NewSnake(Cell{X: 10, Y: 5}, 3, DirRight)

	want := []Cell{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}}
	if s.Len() != len(want) {
		t.Fatalf("Expected length %d, got %d", len(want), s.Len())
	}
	for i, c := range want {
		if s.Cells()[i] != c {
			t.Errorf("Cell %d should be %v, got %v", i, c, s.Cells()[i])
		}
	}
	if s.Head() != want[0] {
		t.Errorf("Head should be %v, got %v", want[0], s.Head())
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	pairs := []struct {
		dir, opposite Direction
	}{
		{DirRight, DirLeft},
		{DirLeft, DirRight},
		{DirUp, DirDown},
		{DirDown, DirUp},
	}

	for _, p := range pairs {
		s := NewSnake(Cell{X: 10, Y: 5}, 3, p.dir)
		s.SetDirection(p.opposite)
		if s.Direction() != p.dir {
			t.Errorf("Reversal %v -> %v should be ignored, direction became %v",
				p.dir, p.opposite, s.Direction())
		}

		// Perpendicular turns are accepted
		perp := DirUp
		if p.dir == DirUp || p.dir == DirDown {
			perp = DirLeft
		}
		s.SetDirection(perp)
		if s.Direction() != perp {
			t.Errorf("Turn %v -> %v should be accepted, got %v", p.dir, perp, s.Direction())
		}
	}
}

func TestSingleCellSnakeMayReverse(t *testing.T) {
	s := NewSnake(Cell{X: 10, Y: 5}, 1, DirRight)
	s.SetDirection(DirLeft)
	if s.Direction() != DirLeft {
		t.Error("A single-cell snake has no neck and may reverse")
	}
}

func TestAdvanceMovesWithoutGrowth(t *testing.T) {
	s := NewSnake(Cell{X: 10, Y: 5}, 3, DirRight)

	s.Advance(s.NextHead())

	if s.Len() != 3 {
		t.Errorf("Length should stay 3 after a plain move, got %d", s.Len())
	}
	if s.Head() != (Cell{X: 11, Y: 5}) {
		t.Errorf("Head should be (11,5), got %v", s.Head())
	}
	if s.Occupies(Cell{X: 8, Y: 5}) {
		t.Error("Old tail cell should be vacated")
	}
}

func TestGrowthIsDeferred(t *testing.T) {
	s := NewSnake(Cell{X: 10, Y: 5}, 3, DirRight)

	s.Grow(2)
	if s.Len() != 3 {
		t.Errorf("Grow should not change length immediately, got %d", s.Len())
	}

	s.Advance(s.NextHead())
	if s.Len() != 4 {
		t.Errorf("Length should be 4 after first growth move, got %d", s.Len())
	}

	s.Advance(s.NextHead())
	if s.Len() != 5 {
		t.Errorf("Length should be 5 after second growth move, got %d", s.Len())
	}

	s.Advance(s.NextHead())
	if s.Len() != 5 {
		t.Errorf("Length should hold at 5 once growth drains, got %d", s.Len())
	}
}

func TestHitsSelfExcludesVacatingTail(t *testing.T) {
	// A 2x2 loop: the head may move into the tail cell because the tail
	// vacates in the same move.
	s := &Snake{
		cells: []Cell{
			{X: 5, Y: 5}, // Head
			{X: 6, Y: 5},
			{X: 6, Y: 6},
			{X: 5, Y: 6}, // Tail
		},
		dir: DirDown,
	}

	tail := Cell{X: 5, Y: 6}
	if s.HitsSelf(tail) {
		t.Error("Moving into the vacating tail cell should not count as self collision")
	}

	// With growth pending the tail holds, so the same move collides
	s.Grow(1)
	if !s.HitsSelf(tail) {
		t.Error("Tail cell is lethal while growth is pending")
	}

	if !s.HitsSelf(Cell{X: 6, Y: 5}) {
		t.Error("Moving into a mid-body cell should collide")
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(Cell{X: 10, Y: 5}, 3, DirRight)

	for _, c := range s.Cells() {
		if !s.Occupies(c) {
			t.Errorf("Occupies should report body cell %v", c)
		}
	}
	if s.Occupies(Cell{X: 0, Y: 0}) {
		t.Error("Occupies should not report an empty cell")
	}
}
