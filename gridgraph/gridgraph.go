package gridgraph

import (
	"strings"
)

// New builds a size×size Graph. Every cell is created eagerly and linked to
// its in-bounds orthogonal neighbors; no connections exist yet.
// Returns ErrInvalidSize if size <= 0.
// Complexity: O(size²) time and memory.
func New(size int) (*Graph, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	g := &Graph{
		size:  size,
		cells: make(map[Coordinate]*Cell, size*size),
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.cells[Coordinate{X: x, Y: y}] = newCell()
		}
	}
	// Link neighbors; every pair is visited from both sides, so the
	// relation is symmetric by construction.
	for c, cell := range g.cells {
		for _, d := range neighborOffsets {
			n := c.Add(d[0], d[1])
			if !g.IsValidCoordinate(n) {
				continue
			}
			cell.neighbors = append(cell.neighbors, n)
		}
	}

	return g, nil
}

// Size returns the side length of the grid.
func (g *Graph) Size() int {
	return g.size
}

// IsValidCoordinate reports whether c lies within [0,size)².
// It checks bounds only and does not consult the cell map.
// Complexity: O(1).
func (g *Graph) IsValidCoordinate(c Coordinate) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// AddConnection opens a passage from a to b. Only a's connection set changes;
// add (b, a) as well for a two-way passage. Unknown a and non-adjacent b are
// ignored.
func (g *Graph) AddConnection(a, b Coordinate) {
	cell, ok := g.cells[a]
	if !ok || !cell.isNeighbor(b) {
		return
	}
	cell.connections.Put(b)
}

// RemoveConnection closes the passage from a to b. Only a's connection set
// changes. Unknown a is ignored.
func (g *Graph) RemoveConnection(a, b Coordinate) {
	cell, ok := g.cells[a]
	if !ok {
		return
	}
	cell.connections.Remove(b)
}

// Neighbors returns the in-bounds orthogonal neighbors of c in N, E, S, W
// order, or an empty slice if c is unknown.
func (g *Graph) Neighbors(c Coordinate) []Coordinate {
	cell, ok := g.cells[c]
	if !ok {
		return []Coordinate{}
	}
	out := make([]Coordinate, len(cell.neighbors))
	copy(out, cell.neighbors)

	return out
}

// Connections returns the cells reachable from c through an open passage,
// in neighbor order, or an empty slice if c is unknown.
func (g *Graph) Connections(c Coordinate) []Coordinate {
	cell, ok := g.cells[c]
	if !ok {
		return []Coordinate{}
	}
	out := make([]Coordinate, 0, cell.connections.Size())
	for _, n := range cell.neighbors {
		if cell.connections.Has(n) {
			out = append(out, n)
		}
	}

	return out
}

// IsConnected reports whether a has an open passage to b.
// If a is not a cell of the graph it returns true: there is no wall to draw
// around a coordinate that does not exist.
func (g *Graph) IsConnected(a, b Coordinate) bool {
	cell, ok := g.cells[a]
	if !ok {
		return true
	}

	return cell.connections.Has(b)
}

// Coordinates returns every cell coordinate in row-major order.
func (g *Graph) Coordinates() []Coordinate {
	out := make([]Coordinate, 0, g.size*g.size)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			out = append(out, Coordinate{X: x, Y: y})
		}
	}

	return out
}

// ConnectionCount returns the number of directed connections in the graph.
// A two-way passage counts twice.
func (g *Graph) ConnectionCount() int {
	total := 0
	for _, cell := range g.cells {
		total += cell.connections.Size()
	}

	return total
}

// String draws the grid as ASCII art, one "+--+" row of horizontal walls
// between each row of cells. A wall is drawn wherever the passage from a cell
// to its east or south neighbor is closed.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("+")
	sb.WriteString(strings.Repeat("--+", g.size))
	sb.WriteByte('\n')
	for y := 0; y < g.size; y++ {
		sb.WriteString("|")
		for x := 0; x < g.size; x++ {
			c := Coordinate{X: x, Y: y}
			sb.WriteString("  ")
			if x == g.size-1 || !g.IsConnected(c, c.Add(1, 0)) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		sb.WriteString("+")
		for x := 0; x < g.size; x++ {
			c := Coordinate{X: x, Y: y}
			if y == g.size-1 || !g.IsConnected(c, c.Add(0, 1)) {
				sb.WriteString("--")
			} else {
				sb.WriteString("  ")
			}
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps c to a row-major index: y*size + x.
func (g *Graph) index(c Coordinate) int {
	return c.Y*g.size + c.X
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Graph) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.size, Y: idx / g.size}
}
