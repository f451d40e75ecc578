package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
)

// BenchmarkFindPath_OpenGrid measures a corner-to-corner search on a fully
// walkable 1000×1000 grid, the worst case for frontier size because every
// diagonal band ties on f.
// Complexity: O(N log N)
func BenchmarkFindPath_OpenGrid(b *testing.B) {
	const n = 1000
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
	}
	g, err := grid.NewFromInts(values)
	if err != nil {
		b.Fatalf("setup NewFromInts failed: %v", err)
	}
	start := grid.Coordinate{Row: 0, Col: 0}
	goal := grid.Coordinate{Row: n - 1, Col: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = astar.FindPath(g, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPath_RandomObstacles measures search on a deterministic
// random 1000×1000 grid with ~20% blocked cells. The route may or may not
// exist; both outcomes are representative workloads.
// Complexity: O(N log N)
func BenchmarkFindPath_RandomObstacles(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			if rng.Intn(100) < 20 {
				values[r][c] = 1
			}
		}
	}
	values[0][0] = 0
	values[n-1][n-1] = 0
	g, err := grid.NewFromInts(values)
	if err != nil {
		b.Fatalf("setup NewFromInts failed: %v", err)
	}
	start := grid.Coordinate{Row: 0, Col: 0}
	goal := grid.Coordinate{Row: n - 1, Col: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, start, goal)
	}
}
