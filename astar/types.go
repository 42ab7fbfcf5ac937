package astar

import "github.com/katalvlaran/mazerunner/gridgraph"

// priorityBase keeps priorities positive for any grid that fits in memory.
const priorityBase = 100_000_000

// Graph is the view of a maze the search needs: the cells reachable from c
// through open passages. *gridgraph.Graph satisfies it.
type Graph interface {
	Connections(c gridgraph.Coordinate) []gridgraph.Coordinate
}
