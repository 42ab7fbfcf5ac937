package gridgraph

// ShortestPath finds a minimum-length route from `from` to `to` that moves
// only through open passages, using breadth-first search. The returned slice
// starts at `from` and ends at `to`; a path from a cell to itself is that
// single cell.
//
// Behavior:
//  1. Validate both endpoints (ErrCoordinateOutOfRange).
//  2. BFS over Connections, recording each cell's predecessor.
//  3. Stop when `to` is dequeued, or return ErrNoPath when the queue drains.
//  4. Reconstruct the path by walking predecessors back to `from`.
//
// Complexity: O(N) time and memory, N = size².
func (g *Graph) ShortestPath(from, to Coordinate) ([]Coordinate, error) {
	if !g.IsValidCoordinate(from) || !g.IsValidCoordinate(to) {
		return nil, ErrCoordinateOutOfRange
	}

	n := g.size * g.size
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}
	seen := make([]bool, n)

	src, dst := g.index(from), g.index(to)
	seen[src] = true
	queue := []int{src}
	found := false
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			found = true
			break
		}
		for _, c := range g.Connections(g.Coordinate(u)) {
			v := g.index(c)
			if seen[v] {
				continue
			}
			seen[v] = true
			prev[v] = u
			queue = append(queue, v)
		}
	}
	if !found {
		return nil, ErrNoPath
	}

	// Reconstruct path goal→start, then reverse.
	path := []Coordinate{}
	for at := dst; at >= 0; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
