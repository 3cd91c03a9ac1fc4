package snake

// Cell is a grid coordinate. Equality is by value.
type Cell struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is the playfield. Its functions are pure; boundary behavior depends
// on whether Ghost Mode is active, which the session decides per move.
type Grid struct {
	W, H int
}

// Contains reports whether the cell lies inside the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Wrap maps the cell onto the grid torus: moving past an edge re-enters
// from the opposite edge. Used while Ghost Mode is active.
func (g Grid) Wrap(c Cell) Cell {
	x := c.X % g.W
	if x < 0 {
		x += g.W
	}
	y := c.Y % g.H
	if y < 0 {
		y += g.H
	}
	return Cell{X: x, Y: y}
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Cell {
	return Cell{X: g.W / 2, Y: g.H / 2}
}

// chebyshev returns the Chebyshev (chessboard) distance between two cells.
func chebyshev(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
