package astar

import (
	"math"

	"github.com/katalvlaran/mazerunner/gridgraph"
)

// PathFinder runs one incremental A* search at a time.
// The zero value is not usable; call New.
type PathFinder struct {
	start, goal, current gridgraph.Coordinate

	open     *openSet
	cameFrom map[gridgraph.Coordinate]gridgraph.Coordinate
	gScore   map[gridgraph.Coordinate]int
	hScore   map[gridgraph.Coordinate]int
	path     []gridgraph.Coordinate

	initialized bool
	finished    bool
	found       bool
	steps       int
}

// New returns an idle PathFinder. It reports IsFinished until Initialize
// starts a search.
func New() *PathFinder {
	return &PathFinder{
		open:     newOpenSet(),
		cameFrom: map[gridgraph.Coordinate]gridgraph.Coordinate{},
		gScore:   map[gridgraph.Coordinate]int{},
		hScore:   map[gridgraph.Coordinate]int{},
		path:     []gridgraph.Coordinate{},
		finished: true,
	}
}

// Initialize discards any previous search and starts a new one from start
// to goal. Scores, predecessors, open set, path and counters are all reset.
func (p *PathFinder) Initialize(start, goal gridgraph.Coordinate) {
	p.start, p.goal, p.current = start, goal, start
	p.open = newOpenSet()
	p.cameFrom = map[gridgraph.Coordinate]gridgraph.Coordinate{}
	p.gScore = map[gridgraph.Coordinate]int{start: 0}
	p.hScore = map[gridgraph.Coordinate]int{}
	p.path = []gridgraph.Coordinate{}
	p.initialized = true
	p.finished = false
	p.found = false
	p.steps = 0
	p.open.push(start, p.priority(start))
}

// GeneratePath expands one cell of the search over g's connections.
//
// Behavior:
//  1. Pop the highest-priority cell; an empty open set finishes the search
//     without a path.
//  2. If it is the goal, rebuild the path from predecessors and finish.
//  3. Otherwise relax every open passage: a neighbor reached more cheaply
//     gets a new g-score and predecessor, and is queued if not already
//     queued. Queued neighbors keep their old priority.
//
// GeneratePath is a no-op while IsFinished reports true.
func (p *PathFinder) GeneratePath(g Graph) {
	if p.finished {
		return
	}
	p.steps++

	cur, ok := p.open.pop()
	if !ok {
		p.finished = true
		return
	}
	p.current = cur
	if cur == p.goal {
		p.path = p.reconstructPath()
		p.found = true
		p.finished = true
		return
	}

	base := p.gScore[cur]
	for _, n := range g.Connections(cur) {
		tentative := base + gridgraph.Manhattan(cur, n)
		if tentative >= p.g(n) {
			continue
		}
		p.cameFrom[n] = cur
		p.gScore[n] = tentative
		if !p.open.has(n) {
			p.open.push(n, p.priority(n))
		}
	}
}

// Run steps the search until it finishes and returns the path, which is
// empty when the goal is unreachable. Run on an idle PathFinder returns the
// last path.
func (p *PathFinder) Run(g Graph) []gridgraph.Coordinate {
	for !p.finished {
		p.GeneratePath(g)
	}

	return p.Path()
}

// priority ranks n in the open set. See the package doc for the formula.
func (p *PathFinder) priority(n gridgraph.Coordinate) int {
	return priorityBase - p.gScore[n] + p.h(n)
}

// g returns the best known cost to n, or math.MaxInt if n is unreached.
func (p *PathFinder) g(n gridgraph.Coordinate) int {
	if v, ok := p.gScore[n]; ok {
		return v
	}

	return math.MaxInt
}

// h returns the memoized Manhattan distance from n to the goal.
func (p *PathFinder) h(n gridgraph.Coordinate) int {
	if v, ok := p.hScore[n]; ok {
		return v
	}
	v := gridgraph.Manhattan(n, p.goal)
	p.hScore[n] = v

	return v
}

// reconstructPath walks predecessors back from the goal, then reverses in
// place to get start→goal order.
func (p *PathFinder) reconstructPath() []gridgraph.Coordinate {
	path := []gridgraph.Coordinate{p.goal}
	for at := p.goal; at != p.start; {
		prev, ok := p.cameFrom[at]
		if !ok {
			break
		}
		path = append(path, prev)
		at = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Start returns the start cell of the current search.
func (p *PathFinder) Start() gridgraph.Coordinate { return p.start }

// Goal returns the goal cell of the current search.
func (p *PathFinder) Goal() gridgraph.Coordinate { return p.goal }

// Current returns the most recently expanded cell, or the start cell
// before the first expansion.
func (p *PathFinder) Current() gridgraph.Coordinate { return p.current }

// OpenSet returns the queued cells in row-major order.
func (p *PathFinder) OpenSet() []gridgraph.Coordinate { return p.open.snapshot() }

// OpenSetSize returns the number of queued cells.
func (p *PathFinder) OpenSetSize() int { return p.open.size() }

// Path returns a copy of the start→goal path, empty until one is found.
func (p *PathFinder) Path() []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, len(p.path))
	copy(out, p.path)

	return out
}

// IsFinished reports whether no search is in progress.
func (p *PathFinder) IsFinished() bool { return p.finished }

// Found reports whether the last search reached its goal.
func (p *PathFinder) Found() bool { return p.found }

// Initialized reports whether Initialize has been called at least once.
func (p *PathFinder) Initialized() bool { return p.initialized }

// Steps returns the number of GeneratePath calls in the current search.
func (p *PathFinder) Steps() int { return p.steps }

// GScore returns the best known cost from start to c.
func (p *PathFinder) GScore(c gridgraph.Coordinate) (int, bool) {
	v, ok := p.gScore[c]
	return v, ok
}

// HScore returns the memoized heuristic for c, if it has been computed.
func (p *PathFinder) HScore(c gridgraph.Coordinate) (int, bool) {
	v, ok := p.hScore[c]
	return v, ok
}
