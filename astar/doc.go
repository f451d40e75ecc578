// Package astar provides a precise, deterministic implementation of the A*
// shortest-path algorithm on 2D occupancy grids with unit step cost and
// 4-directional movement.
//
// Overview:
//
//   - FindPath computes a minimum-step path between two walkable cells of a
//     grid.Grid in O(N log N) time, where N = Rows×Cols.
//   - It relies on a min-heap (priority queue) keyed by f = g + h, where h
//     is the Manhattan distance to the goal: admissible and consistent for
//     unit-cost 4-directional movement, so the returned path is optimal.
//   - Equal f values are tie-broken by insertion order: each push receives a
//     strictly increasing per-call sequence number, and earlier pushes pop
//     first. Identical inputs therefore always yield the identical path.
//
// When to use:
//
//   - Tile-based games, maze solvers, any planner over a static binary grid.
//   - As a drop-in "route or no route" primitive beneath editors and
//     renderers that own the grid and consume the path.
//
// Key properties:
//
//   - Optimality: path length equals the true shortest 4-directional
//     walkable distance (unit edge cost ⇒ cost-optimal = step-optimal).
//   - Determinism: byte-identical results for byte-identical inputs.
//   - Completeness: a path is returned iff one exists.
//   - start == goal yields the single-element path [start].
//
// Performance and complexity:
//
//   - Time:  O(N log N)
//   - Each cell is finalized at most once (the visited set bounds expansion).
//   - Each relaxation may push one new entry; stale duplicates are popped
//     and discarded ("lazy deletion") instead of a decrease-key operation.
//   - Space: O(N) for the cost map, predecessor map, visited set, and heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *grid.Grid to FindPath.
//   - ErrNoPath:
//     Returned when the goal is unreachable from the start through walkable
//     cells. A blocked or out-of-bounds start or goal is folded into this
//     same outcome rather than reported as a distinct failure; callers that
//     need the distinction should validate with grid.Grid.Walkable (or use
//     editor.Editor, which enforces the preconditions) before calling.
//     ErrNoPath is an expected result to branch on with errors.Is, never a
//     panic.
//
// Concurrency:
//
//   - One call runs synchronously to completion; all bookkeeping is private
//     to the invocation and nothing persists across calls.
//   - The grid must not be mutated concurrently with an in-flight search.
//     Clone the grid per goroutine or serialize access externally.
//   - No cancellation or timeout is built in; wrap the call externally if
//     you need bounded search time.
//
// See also:
//
//   - grid.Grid: construction, bounds and walkability queries.
//   - editor.Editor: validated authoring of grids and start/goal pairs.
//   - render.Sketch: ASCII visualization of a grid with an overlaid path.
package astar
