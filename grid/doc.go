// Package grid models a rectangular 2D occupancy matrix as the input to
// grid-based search algorithms.
//
// What:
//
//   - Grid wraps a rectangular matrix of Occupancy values (Walkable/Blocked).
//   - Coordinate is a plain (Row, Col) value type, safe to use as a map key.
//   - Path is an ordered coordinate sequence with a validity check.
//   - Neighbors enumerates in-bounds walkable 4-neighbors in a fixed order.
//
// Why:
//
//   - Game maps: tile worlds where units move between orthogonal cells.
//   - Robotics / planning toys: occupancy grids from discretized floor plans.
//   - A deterministic, read-only snapshot for search algorithms to borrow.
//
// Complexity:
//
//   - New / NewFromInts / Clone: O(R×C) time and memory (deep copy).
//   - InBounds / Walkable / At:  O(1).
//   - Neighbors:                 O(1) (at most 4 candidates).
//
// Determinism:
//
//   - Neighbors always yields candidates in the fixed order
//     down, up, right, left. Search algorithms that tie-break by insertion
//     order rely on this ordering being stable across calls and runs.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// See: astar for shortest-path search over a Grid.
package grid
