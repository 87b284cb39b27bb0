// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult with Order, Depth and Parent (slices indexed by
//     vertex, -1 where unreached).
//   - Hooks: OnEnqueue, and OnVisit (which may abort with an error).
//   - Connected answers a single reachability question and stops as soon
//     as the target is visited.
//
// Determinism
//
//	core.Graph keeps neighbor lists sorted, and BFS enqueues neighbors in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start (or Connected target) does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached           from PathTo for vertices outside the BFS tree.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
