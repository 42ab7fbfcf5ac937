package astar

import (
	"sort"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/gridgraph"
)

// entry is one queued cell. seq records insertion order for tie-breaks.
type entry struct {
	coord    gridgraph.Coordinate
	priority int
	seq      uint64
}

// higher orders entries by descending priority, then ascending seq.
func higher(a, b entry) bool {
	if a.priority != b.priority {
		return a.priority > b.priority
	}

	return a.seq < b.seq
}

// openSet is a max-priority queue with O(1) membership tests.
type openSet struct {
	heap    *heap.Heap[entry]
	members mapset.Set[gridgraph.Coordinate]
	seq     uint64
}

func newOpenSet() *openSet {
	return &openSet{
		heap:    heap.New[entry](higher),
		members: mapset.New[gridgraph.Coordinate](),
	}
}

// push queues c with the given priority unless it is already queued.
// It reports whether c was inserted.
func (q *openSet) push(c gridgraph.Coordinate, priority int) bool {
	if q.members.Has(c) {
		return false
	}
	q.heap.Push(entry{coord: c, priority: priority, seq: q.seq})
	q.seq++
	q.members.Put(c)

	return true
}

// pop removes the highest-priority cell.
func (q *openSet) pop() (gridgraph.Coordinate, bool) {
	e, ok := q.heap.Pop()
	if !ok {
		return gridgraph.Coordinate{}, false
	}
	q.members.Remove(e.coord)

	return e.coord, true
}

func (q *openSet) has(c gridgraph.Coordinate) bool { return q.members.Has(c) }

func (q *openSet) size() int { return q.heap.Size() }

// snapshot lists queued cells in row-major order.
func (q *openSet) snapshot() []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, 0, q.members.Size())
	q.members.Each(func(c gridgraph.Coordinate) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}
