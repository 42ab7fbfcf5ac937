package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/mazerunner/gridgraph"
)

// Carver incrementally carves a perfect maze into a Graph.
// A Carver is not safe for concurrent use, and the graph must not be
// mutated by anyone else while carving is in progress.
type Carver struct {
	graph    *gridgraph.Graph
	rng      *rand.Rand
	visited  mapset.Set[gridgraph.Coordinate]
	stack    *stack.Stack[gridgraph.Coordinate]
	current  gridgraph.Coordinate
	finished bool
	steps    int
}

// New binds a Carver to g. No passages are opened until Advance is called.
//
// Returns ErrGraphNil if g is nil, ErrStartOutOfRange if the configured
// start cell is not inside the grid.
func New(g *gridgraph.Graph, opts ...Option) (*Carver, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.IsValidCoordinate(o.Start) {
		return nil, ErrStartOutOfRange
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	return &Carver{
		graph:   g,
		rng:     rng,
		visited: mapset.New[gridgraph.Coordinate](),
		stack:   stack.New[gridgraph.Coordinate](),
		current: o.Start,
	}, nil
}

// Advance performs one carving step, in priority order:
//
//  1. Mark the current cell visited.
//  2. Pick a random unvisited neighbor; open a two-way passage to it, push
//     the current cell and move there.
//  3. Otherwise pop the stack and backtrack to the popped cell.
//  4. Otherwise the maze is complete and the carver finishes.
//
// Advance is a no-op once IsFinished reports true.
func (c *Carver) Advance() {
	if c.finished {
		return
	}
	c.steps++
	c.visited.Put(c.current)

	if next, ok := c.pickUnvisited(); ok {
		c.graph.AddConnection(c.current, next)
		c.graph.AddConnection(next, c.current)
		c.stack.Push(c.current)
		c.current = next
		return
	}
	if c.stack.Size() > 0 {
		c.current = c.stack.Pop()
		return
	}
	c.finished = true
}

// pickUnvisited samples neighbors of the current cell uniformly at random,
// discarding visited ones, until an unvisited neighbor turns up or none is
// left. Discarded candidates keep the remaining order intact, which makes
// the scan equivalent to walking a random permutation.
func (c *Carver) pickUnvisited() (gridgraph.Coordinate, bool) {
	candidates := c.graph.Neighbors(c.current)
	for len(candidates) > 0 {
		i := c.rng.Intn(len(candidates))
		if n := candidates[i]; !c.visited.Has(n) {
			return n, true
		}
		candidates = append(candidates[:i], candidates[i+1:]...)
	}

	return gridgraph.Coordinate{}, false
}

// Run advances until the maze is complete and returns the number of
// Advance calls it made.
func (c *Carver) Run() int {
	calls := 0
	for !c.finished {
		c.Advance()
		calls++
	}

	return calls
}

// Current returns the cell the carver is standing on.
func (c *Carver) Current() gridgraph.Coordinate { return c.current }

// IsFinished reports whether every reachable cell has been carved.
func (c *Carver) IsFinished() bool { return c.finished }

// Steps returns the number of Advance calls that did work.
func (c *Carver) Steps() int { return c.steps }

// Depth returns the size of the backtracking stack.
func (c *Carver) Depth() int { return c.stack.Size() }

// Visited reports whether the carver has entered cell p.
func (c *Carver) Visited(p gridgraph.Coordinate) bool { return c.visited.Has(p) }

// Graph returns the graph being carved.
func (c *Carver) Graph() *gridgraph.Graph { return c.graph }
