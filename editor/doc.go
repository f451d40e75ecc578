// Package editor provides a mutable draft of an occupancy grid with
// validated wall toggling and start/goal placement, producing immutable
// grid snapshots for search.
//
// What:
//
//   - Editor owns a rows×cols draft, initially all walkable.
//   - ToggleWall flips a cell between walkable and blocked.
//   - PlaceStart / PlaceGoal position the endpoints; re-placement moves them.
//   - Snapshot freezes the draft into a *grid.Grid plus the endpoint pair,
//     guaranteeing the precondition search callers rely on: both endpoints
//     in bounds and walkable.
//
// Why:
//
//   - Level editors and interactive demos need a place to put the "you
//     cannot wall the start cell" rules; keeping them here keeps the search
//     core free of input diagnostics.
//   - The search core treats malformed endpoints as plain unreachability;
//     the editor is where a caller gets the distinct, actionable error.
//
// Placement rules (validated eagerly, sentinel errors, no panics):
//
//   - ErrOutOfBounds: the coordinate lies outside the draft.
//   - ErrCellBlocked: an endpoint may not sit on a blocked cell.
//   - ErrCellReserved: a wall may not cover an endpoint, and the two
//     endpoints may not share a cell.
//   - ErrEndpointsUnset: Snapshot requires both endpoints placed.
//
// Complexity: every operation is O(1) except Snapshot, which deep-copies
// the draft in O(rows×cols).
//
// Concurrency: an Editor is a plain mutable value; guard it externally if
// shared. Snapshots are immutable and safe to share.
package editor
