package snake

// Snake is the player body: an ordered list of cells with the head first,
// a movement direction, and a pending growth counter. Moves skip the tail
// removal while the counter drains, so length only ever increases.
type Snake struct {
	cells   []Cell
	dir     Direction
	pending int // Pending growth: moves that skip the tail pop
}

// NewSnake creates a snake of the given length with its head at start,
// moving in dir. The body extends behind the head, opposite to dir.
func NewSnake(start Cell, length int, dir Direction) *Snake {
	if length < 1 {
		length = 1
	}
	dx, dy := dir.Delta()
	cells := make([]Cell, length)
	for i := range cells {
		cells[i] = Cell{X: start.X - dx*i, Y: start.Y - dy*i}
	}
	return &Snake{
		cells: cells,
		dir:   dir,
	}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.cells[0]
}

// Cells returns the body cells, head first. The slice is owned by the
// snake; callers must not mutate it.
func (s *Snake) Cells() []Cell {
	return s.cells
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.cells)
}

// Direction returns the current movement direction.
func (s *Snake) Direction() Direction {
	return s.dir
}

// SetDirection requests a direction change. A request that would reverse
// the snake into its own neck is silently ignored; the direction simply
// does not change this tick.
func (s *Snake) SetDirection(d Direction) {
	if len(s.cells) > 1 && d == s.dir.Opposite() {
		return
	}
	s.dir = d
}

// NextHead returns the cell the head would move into this step, before any
// boundary rule is applied. The session wraps or rejects it depending on
// Ghost Mode.
func (s *Snake) NextHead() Cell {
	dx, dy := s.dir.Delta()
	head := s.cells[0]
	return Cell{X: head.X + dx, Y: head.Y + dy}
}

// HitsSelf reports whether moving the head into c would collide with the
// body. The tail cell is excluded when no growth is pending, since it
// vacates in the same move.
func (s *Snake) HitsSelf(c Cell) bool {
	checkLen := len(s.cells)
	if s.pending == 0 && checkLen > 0 {
		checkLen-- // Tail will be removed this move
	}
	for i := 0; i < checkLen; i++ {
		if s.cells[i] == c {
			return true
		}
	}
	return false
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Advance commits a move: pushes the new head and pops the tail unless
// growth is pending, in which case the counter is decremented instead and
// the snake gains one cell.
func (s *Snake) Advance(head Cell) {
	s.cells = append([]Cell{head}, s.cells...)
	if s.pending > 0 {
		s.pending--
		return
	}
	if len(s.cells) > 1 {
		s.cells = s.cells[:len(s.cells)-1]
	}
}

// Grow schedules n cells of growth, applied over the next n moves.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.pending += n
	}
}
