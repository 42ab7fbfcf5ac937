package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazerunner/gridgraph"
	"github.com/katalvlaran/mazerunner/maze"
)

// BenchmarkCarve measures carving a full 100×100 maze.
// Complexity: O(N), N = size².
func BenchmarkCarve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, err := gridgraph.New(100)
		if err != nil {
			b.Fatal(err)
		}
		c, err := maze.New(g, maze.WithSeed(int64(i+1)))
		if err != nil {
			b.Fatal(err)
		}
		c.Run()
	}
}
