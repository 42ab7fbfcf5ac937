// Package maze carves perfect mazes into a gridgraph.Graph using randomized
// depth-first search with an explicit backtracking stack.
//
// What:
//
//	A Carver walks the grid one Advance call at a time. Each call either
//	opens a passage into a random unvisited neighbor, backtracks one cell,
//	or finishes. The passages opened form a spanning tree of the grid, so
//	every pair of cells is joined by exactly one simple path.
//
// Why:
//
//	The carver is a resumable state machine rather than a recursive
//	function, so a caller can interleave carving with rendering and show
//	the maze growing frame by frame.
//
// Randomness:
//
//	Neighbor choice uses an injected *rand.Rand (WithRand) or a seeded
//	stream (WithSeed). Seed 0 selects a fixed default seed, so a Carver
//	built without options is deterministic.
//
// Complexity:
//
//	– Advance: O(1) amortized (at most four neighbor samples).
//	– Run:     exactly 2·N−1 calls from any start, N = size².
//	– Memory:  O(N) for the visited set and stack.
//
// Errors:
//
//	– ErrGraphNil         if New receives a nil graph.
//	– ErrStartOutOfRange  if WithStart names a cell outside the grid.
package maze
