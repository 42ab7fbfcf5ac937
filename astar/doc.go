// Package astar implements an incremental A* search over the open passages
// of a gridgraph.Graph.
//
// What:
//
//	A PathFinder is a resumable state machine. Initialize(start, goal)
//	resets it; each GeneratePath call expands exactly one cell. The search
//	finishes when the goal is expanded (Path holds start→goal) or the open
//	set runs dry (Path stays empty). Between calls the open set, scores and
//	current cell can be read for drawing.
//
// Search order:
//
//	The open set is a max-heap keyed by
//
//	    priority(n) = priorityBase − g(n) + h(n)
//
//	where g is the best known cost from start and h is the Manhattan
//	distance to goal. Note this is NOT priorityBase − f with f = g + h:
//	it favours cells close to the start and far from the goal. The formula
//	is kept as is; on perfect mazes (one simple path between any two cells)
//	the returned path is still the shortest one. Equal priorities pop in
//	insertion order.
//
//	A priority is computed once, when the cell enters the open set. A cell
//	already queued is never re-prioritized, even when a cheaper route to it
//	is found later; only its g-score and predecessor are updated. This
//	differs from textbook decrease-key A*.
//
// Unreachable goals:
//
//	There is no error for "no path". Check Found, or IsFinished together
//	with an empty Path.
//
// Complexity:
//
//	– GeneratePath: O(log N) for the heap pop plus O(d log N) relaxation, d ≤ 4.
//	– Memory:       O(N) for scores, predecessors and the open set, N = size².
package astar
