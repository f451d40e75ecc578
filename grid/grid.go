// Package grid provides the immutable Grid type: a rectangular occupancy
// matrix borrowed read-only by search algorithms.
package grid

// neighborOffsets lists the 4-directional steps in the fixed expansion
// order down, up, right, left. The order is part of the package contract:
// deterministic searches tie-break by insertion order and therefore
// depend on it.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rectangular matrix of Occupancy values, indexed by
// (row, col) with 0 ≤ row < Rows(), 0 ≤ col < Cols().
// It is immutable once built: constructors deep-copy their input and no
// method mutates the receiver.
type Grid struct {
	rows, cols int
	cells      [][]Occupancy
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(cells [][]Occupancy) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	copied := make([][]Occupancy, rows)
	for r := 0; r < rows; r++ {
		if len(cells[r]) != cols {
			return nil, ErrNonRectangular
		}
		copied[r] = make([]Occupancy, cols)
		copy(copied[r], cells[r])
	}

	return &Grid{rows: rows, cols: cols, cells: copied}, nil
}

// NewFromInts constructs a Grid from an integer matrix using the common
// encoding 0 = walkable, any non-zero value = blocked.
// Returns the same sentinel errors as New.
// Complexity: O(R×C) time and memory.
func NewFromInts(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([][]Occupancy, rows)
	for r := 0; r < rows; r++ {
		if len(values[r]) != cols {
			return nil, ErrNonRectangular
		}
		cells[r] = make([]Occupancy, cols)
		for c := 0; c < cols; c++ {
			if values[r][c] != 0 {
				cells[r][c] = Blocked
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns C.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the occupancy of cell c. Callers must ensure c is in bounds;
// use InBounds or Walkable for boundary-tolerant queries.
// Complexity: O(1).
func (g *Grid) At(c Coordinate) Occupancy {
	return g.cells[c.Row][c.Col]
}

// Walkable reports whether c is in bounds and not blocked.
// Out-of-bounds coordinates are never walkable.
// Complexity: O(1).
func (g *Grid) Walkable(c Coordinate) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == Walkable
}

// Neighbors returns the in-bounds, walkable 4-neighbors of c in the fixed
// order down, up, right, left.
// Complexity: O(1), at most 4 candidates.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 4)
	for _, d := range neighborOffsets {
		nb := Coordinate{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.Walkable(nb) {
			out = append(out, nb)
		}
	}

	return out
}

// Clone returns a deep copy of the grid. Useful when a caller wants to
// run concurrent searches over logically identical snapshots.
// Complexity: O(R×C) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([][]Occupancy, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]Occupancy, g.cols)
		copy(cells[r], g.cells[r])
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}
