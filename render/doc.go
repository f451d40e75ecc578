// Package render sketches occupancy grids as ASCII text, optionally
// overlaying a path and the start/goal markers.
//
// What:
//
//   - Sketch draws one grid row per line, cells separated by single spaces.
//   - Default glyphs: S start, G goal, * path, # blocked, . walkable.
//   - WithGlyphs substitutes a custom glyph set.
//
// Why:
//
//   - Test failure output, terminal demos, and doc examples all want a
//     human-readable picture of "where did the route go".
//
// Glyph precedence per cell: start, then goal, then blocked, then path,
// then open. Path membership is looked up by coordinate, so a path that
// crosses a marker renders the marker.
//
// Errors:
//
//   - ErrNilGrid: Sketch received a nil grid.
//   - ErrBadGlyphs: a custom glyph set contains an empty glyph.
//
// Complexity: O(R×C) time and output size.
package render
