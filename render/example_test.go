// Package render_test provides a runnable example of sketching a search
// result.
package render_test

import (
	"fmt"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/render"
)

// ExampleSketch runs A* on a small grid and prints the route overlay.
func ExampleSketch() {
	g, err := grid.NewFromInts([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start := grid.Coordinate{Row: 0, Col: 0}
	goal := grid.Coordinate{Row: 2, Col: 2}

	path, err := astar.FindPath(g, start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := render.Sketch(g, path, start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// S . .
	// * # .
	// * * G
}
