// Package gridgraph models a square grid of cells as a graph whose edges are
// open passages between orthogonally adjacent cells.
//
// What:
//
//   - Graph owns size×size cells keyed by Coordinate.
//   - Every cell has a fixed neighbor list (its in-bounds 4-neighborhood) and a
//     mutable connection set (the passages carved so far).
//   - Connections are directed at the storage level; callers that want a
//     two-way passage add both directions.
//   - Components and ShortestPath walk connections only, never raw neighbors.
//
// Why:
//
//   - Maze generation carves passages into an initially walled grid.
//   - Pathfinding moves through carved passages.
//   - Rendering draws a wall wherever two neighbors are not connected.
//
// Lenient queries:
//
//   - Neighbors and Connections return an empty slice for unknown coordinates.
//   - IsConnected reports true when the source cell does not exist, so a
//     renderer never draws walls around coordinates outside the grid.
//
// Complexity:
//
//   - New:          O(N) time and memory, N = size².
//   - Connections:  O(d), d ≤ 4.
//   - Components:   O(N) time, O(N) memory.
//   - ShortestPath: O(N) time, O(N) memory.
//
// Errors:
//
//   - ErrInvalidSize: grid size is not positive.
//   - ErrCoordinateOutOfRange: a path endpoint lies outside the grid.
//   - ErrNoPath: the endpoints are not joined by any chain of passages.
package gridgraph
