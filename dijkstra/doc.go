// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.Graph whose edge weights live in a separate slice indexed by edge id.
//
// Overview:
//
//   - Dijkstra computes distances from one source to every vertex in
//     O((V + E) log V) using a binary heap with lazy decrease-key.
//   - ShortestPath returns one concrete path between two vertices. Ties
//     between equal-cost paths are broken toward the lexicographically
//     smallest vertex sequence, so repeated calls on the same input always
//     agree.
//
// Key features:
//
//   - ReturnPath: return the predecessor slice alongside distances.
//   - MaxDistance: stop exploring beyond a distance.
//   - InfEdgeThreshold: treat heavy edges as walls.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource, ErrNilGraph, ErrVertexNotFound: bad endpoints or graph.
//   - ErrWeightCount, ErrNegativeWeight, ErrNonPositiveWeight: bad weights.
//   - ErrBadMaxDistance, ErrBadInfThreshold: bad options.
//   - ErrNoPath: ShortestPath between disconnected vertices.
//
// Thread safety:
//
//   - core.Graph is immutable, so concurrent calls on one graph are safe.
package dijkstra
