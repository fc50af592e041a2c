// Package bfs computes the fewest-move route from a maze's Start cell to
// its nearest Destination.
//
// What
//
//   - Explore cells in non-decreasing distance (move count) from Start.
//   - Returns a BFSResult containing:
//   - Distance: moves to the first destination reached, or Unreachable (-1)
//   - Target: that destination
//   - Order: visit sequence
//   - Depth: map from cell → distance from Start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Walkability
//
//	Only Path and Destination cells are entered. The Start cell is the root
//	of the search and is never re-entered.
//
// Determinism
//
//	Neighbours are enqueued in heading order N, E, S, W, so the visit
//	sequence, the parent tree and the chosen Target are reproducible.
//
// Early exit
//
//	The search stops the moment a destination is enqueued. Because BFS
//	enqueues cells in non-decreasing depth, that depth is minimal.
//
// Complexity (R×C grid)
//
//   - Time:   O(R×C)
//   - Memory: O(R×C)   (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.ShortestPath(g)
//	if err != nil {
//		// ErrGridNil, maze.ErrStartNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	if !res.Reachable() {
//		// res.Distance == bfs.Unreachable
//	}
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - maze.ErrStartNotFound if the grid has no Start cell (wrapped).
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ErrNotReached         from PathTo for cells outside the search.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// Unreachable destinations are not an error.
package bfs
