// Package gridastar is a small toolkit for shortest-path search on 2D
// occupancy grids: build a grid, run A*, and inspect or sketch the result.
//
// 🚀 What is gridastar?
//
//	A focused, almost-zero-dependency library that brings together:
//		• grid/   : immutable occupancy matrices, coordinates and paths
//		• astar/  : A* search with Manhattan heuristic and deterministic tie-breaking
//		• editor/ : a mutable grid draft with validated wall/start/goal placement
//		• render/ : ASCII sketches of grids with an overlaid path
//
// ✨ Why choose gridastar?
//
//   - Deterministic – identical inputs always yield byte-identical paths
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – "no path" is a sentinel value you branch on, never a panic
//
// Quick ASCII example:
//
//	S . .
//	* # .
//	* * G
//
// The star cells form the path found by astar.FindPath on a 3×3 grid with a
// single wall. See each subpackage's doc.go for the full contract, and the
// examples/ directory for runnable demos.
package gridastar
