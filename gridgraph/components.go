package gridgraph

// Components groups the cells into regions that are mutually reachable
// through connections. Regions are discovered from seeds in row-major order
// and each region lists its cells in BFS order from that seed.
//
// A fully carved maze has exactly one component; a fresh graph has size².
//
// Time:   O(N·d), N = size², d ≤ 4.
// Memory: O(N) for visited flags and output.
func (g *Graph) Components() [][]Coordinate {
	total := g.size * g.size
	seen := make([]bool, total)
	var comps [][]Coordinate

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		seed := g.Coordinate(i0)
		queue := []Coordinate{seed}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Connections(queue[qi]) {
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
