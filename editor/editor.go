// Package editor implements the mutable grid draft behind interactive
// grid authoring: wall toggling, endpoint placement, immutable snapshots.
package editor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
)

// Sentinel errors for editor operations.
var (
	// ErrBadDimensions indicates rows or cols below 1.
	ErrBadDimensions = errors.New("editor: rows and cols must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the draft.
	ErrOutOfBounds = errors.New("editor: coordinate out of bounds")
	// ErrCellBlocked indicates an endpoint placement on a blocked cell.
	ErrCellBlocked = errors.New("editor: cell is blocked")
	// ErrCellReserved indicates a conflict with the start or goal marker.
	ErrCellReserved = errors.New("editor: cell is reserved by start or goal")
	// ErrEndpointsUnset indicates Snapshot was called before both
	// endpoints were placed.
	ErrEndpointsUnset = errors.New("editor: start and goal must both be set")
)

// Editor is a mutable draft of an occupancy grid plus optional start and
// goal markers. The zero value is not usable; construct with New.
type Editor struct {
	rows, cols int
	cells      [][]grid.Occupancy
	start      grid.Coordinate
	goal       grid.Coordinate
	hasStart   bool
	hasGoal    bool
}

// New returns an all-walkable rows×cols draft with no endpoints placed.
// Returns ErrBadDimensions if either dimension is below 1.
// Complexity: O(rows×cols).
func New(rows, cols int) (*Editor, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	cells := make([][]grid.Occupancy, rows)
	for r := range cells {
		cells[r] = make([]grid.Occupancy, cols)
	}

	return &Editor{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows in the draft.
func (e *Editor) Rows() int { return e.rows }

// Cols returns the number of columns in the draft.
func (e *Editor) Cols() int { return e.cols }

// At returns the occupancy of cell c, or Blocked with ErrOutOfBounds for
// coordinates outside the draft.
func (e *Editor) At(c grid.Coordinate) (grid.Occupancy, error) {
	if !e.inBounds(c) {
		return grid.Blocked, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	return e.cells[c.Row][c.Col], nil
}

// ToggleWall flips cell c between walkable and blocked.
// Refused with ErrCellReserved when c holds the start or goal marker,
// mirroring the rule that endpoints always stay walkable.
func (e *Editor) ToggleWall(c grid.Coordinate) error {
	if !e.inBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if e.reserved(c) {
		return fmt.Errorf("%w: %v", ErrCellReserved, c)
	}
	if e.cells[c.Row][c.Col] == grid.Blocked {
		e.cells[c.Row][c.Col] = grid.Walkable
	} else {
		e.cells[c.Row][c.Col] = grid.Blocked
	}

	return nil
}

// PlaceStart positions the start marker at c, moving it if already placed.
// Refused on out-of-bounds or blocked cells, or on the goal marker.
func (e *Editor) PlaceStart(c grid.Coordinate) error {
	if err := e.placeable(c, e.hasGoal, e.goal); err != nil {
		return err
	}
	e.start = c
	e.hasStart = true

	return nil
}

// PlaceGoal positions the goal marker at c, moving it if already placed.
// Refused on out-of-bounds or blocked cells, or on the start marker.
func (e *Editor) PlaceGoal(c grid.Coordinate) error {
	if err := e.placeable(c, e.hasStart, e.start); err != nil {
		return err
	}
	e.goal = c
	e.hasGoal = true

	return nil
}

// Start returns the start marker and whether it has been placed.
func (e *Editor) Start() (grid.Coordinate, bool) { return e.start, e.hasStart }

// Goal returns the goal marker and whether it has been placed.
func (e *Editor) Goal() (grid.Coordinate, bool) { return e.goal, e.hasGoal }

// ClearEndpoints removes both markers, leaving the cells untouched.
func (e *Editor) ClearEndpoints() {
	e.hasStart = false
	e.hasGoal = false
}

// Reset restores the all-walkable draft and removes both markers.
// Complexity: O(rows×cols).
func (e *Editor) Reset() {
	for r := range e.cells {
		for c := range e.cells[r] {
			e.cells[r][c] = grid.Walkable
		}
	}
	e.ClearEndpoints()
}

// Snapshot freezes the draft into an immutable grid plus the endpoint
// pair. Returns ErrEndpointsUnset when either marker is missing.
// The returned grid satisfies the search precondition by construction:
// both endpoints are in bounds and walkable.
// Complexity: O(rows×cols).
func (e *Editor) Snapshot() (*grid.Grid, grid.Coordinate, grid.Coordinate, error) {
	if !e.hasStart || !e.hasGoal {
		return nil, grid.Coordinate{}, grid.Coordinate{}, ErrEndpointsUnset
	}
	g, err := grid.New(e.cells)
	if err != nil {
		// New validated dimensions already; only a programming error
		// could surface here.
		return nil, grid.Coordinate{}, grid.Coordinate{}, err
	}

	return g, e.start, e.goal, nil
}

// inBounds reports whether c lies within the draft.
func (e *Editor) inBounds(c grid.Coordinate) bool {
	return c.Row >= 0 && c.Row < e.rows && c.Col >= 0 && c.Col < e.cols
}

// reserved reports whether c currently holds the start or goal marker.
func (e *Editor) reserved(c grid.Coordinate) bool {
	return (e.hasStart && e.start == c) || (e.hasGoal && e.goal == c)
}

// placeable validates an endpoint placement at c against the draft and
// the other marker (otherSet, other).
func (e *Editor) placeable(c grid.Coordinate, otherSet bool, other grid.Coordinate) error {
	if !e.inBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if e.cells[c.Row][c.Col] == grid.Blocked {
		return fmt.Errorf("%w: %v", ErrCellBlocked, c)
	}
	if otherSet && other == c {
		return fmt.Errorf("%w: %v", ErrCellReserved, c)
	}

	return nil
}
