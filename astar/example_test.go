package astar_test

import (
	"fmt"

	"github.com/katalvlaran/mazerunner/astar"
	"github.com/katalvlaran/mazerunner/gridgraph"
	"github.com/katalvlaran/mazerunner/maze"
)

// ExamplePathFinder searches corner to corner across a seeded 4×4 maze.
func ExamplePathFinder() {
	g, _ := gridgraph.New(4)
	c, _ := maze.New(g, maze.WithSeed(42))
	c.Run()

	p := astar.New()
	p.Initialize(gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Coordinate{X: 3, Y: 3})
	for !p.IsFinished() {
		p.GeneratePath(g)
	}
	fmt.Println("steps:", p.Steps())
	fmt.Println(p.Path())

	// Output:
	// steps: 16
	// [(0,0) (0,1) (0,2) (0,3) (1,3) (2,3) (2,2) (2,1) (2,0) (3,0) (3,1) (3,2) (3,3)]
}
