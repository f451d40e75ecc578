// Package astar defines the sentinel errors shared by the A* search
// implementation.
package astar

import "errors"

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNoPath indicates that no walkable 4-directional route connects
	// start to goal. Queries whose start or goal is blocked or out of
	// bounds yield the same result by design; they are not a distinct
	// error kind.
	ErrNoPath = errors.New("astar: no path between start and goal")
)
