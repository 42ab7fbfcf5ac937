package gridgraph

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidSize indicates a non-positive grid size.
	ErrInvalidSize = errors.New("gridgraph: grid size must be positive")
	// ErrCoordinateOutOfRange indicates a coordinate outside [0,size)².
	ErrCoordinateOutOfRange = errors.New("gridgraph: coordinate out of range")
	// ErrNoPath indicates no chain of passages joins two cells.
	ErrNoPath = errors.New("gridgraph: no path between coordinates")
)

// Coordinate identifies a grid cell. X grows to the east, Y to the south.
type Coordinate struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by (dx,dy).
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// neighborOffsets lists the 4-neighborhood in N, E, S, W order.
// Neighbor slices inherit this order, which keeps seeded maze generation
// reproducible.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Cell holds the adjacency data of one coordinate.
// neighbors is fixed at construction; connections is always a subset of it.
type Cell struct {
	neighbors   []Coordinate
	connections mapset.Set[Coordinate]
}

func newCell() *Cell {
	return &Cell{
		neighbors:   make([]Coordinate, 0, len(neighborOffsets)),
		connections: mapset.New[Coordinate](),
	}
}

func (c *Cell) isNeighbor(other Coordinate) bool {
	for _, n := range c.neighbors {
		if n == other {
			return true
		}
	}

	return false
}

// Graph is a size×size grid of cells. Cells and their neighbor lists are
// created once by New; only connections change afterwards.
// A Graph is not safe for concurrent mutation.
type Graph struct {
	size  int
	cells map[Coordinate]*Cell
}
