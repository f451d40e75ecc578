// Package grid defines core types and sentinel errors for occupancy grids:
// the Occupancy enumeration, Coordinate and Path value types.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Occupancy is the two-valued state of a cell: Walkable or Blocked.
// The zero value is Walkable, so a freshly allocated matrix is fully open.
type Occupancy uint8

const (
	// Walkable marks a cell that movement may pass through.
	Walkable Occupancy = iota
	// Blocked marks a cell occupied by an obstacle.
	Blocked
)

// String returns "walkable" or "blocked".
func (o Occupancy) String() string {
	if o == Blocked {
		return "blocked"
	}

	return "walkable"
}

// Coordinate identifies a grid cell by (Row, Col), zero-based.
// It is a plain value type: compared by structural equality and usable
// as a map or set key.
type Coordinate struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ManhattanTo returns the Manhattan distance |Δrow| + |Δcol| to other.
// It is an admissible and consistent heuristic for unit-cost
// 4-directional movement.
// Complexity: O(1).
func (c Coordinate) ManhattanTo(other Coordinate) int {
	return abs(c.Row-other.Row) + abs(c.Col-other.Col)
}

// AdjacentTo reports whether other differs from c by exactly one unit
// in exactly one axis (a single 4-directional step).
// Complexity: O(1).
func (c Coordinate) AdjacentTo(other Coordinate) bool {
	return c.ManhattanTo(other) == 1
}

// Path is an ordered sequence of coordinates from start to goal inclusive.
// Consecutive entries differ by exactly one 4-directional step.
type Path []Coordinate

// Valid reports whether p is a well-formed walkable path on g from start
// to goal: non-empty, correct endpoints, every consecutive pair
// axis-adjacent, every cell walkable.
// Complexity: O(len(p)).
func (p Path) Valid(g *Grid, start, goal Coordinate) bool {
	if g == nil || len(p) == 0 {
		return false
	}
	if p[0] != start || p[len(p)-1] != goal {
		return false
	}
	for i, c := range p {
		if !g.Walkable(c) {
			return false
		}
		if i > 0 && !p[i-1].AdjacentTo(c) {
			return false
		}
	}

	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
