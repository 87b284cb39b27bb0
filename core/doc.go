// Package core provides the immutable graph model consumed by every other
// edgeweight package.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are the integers 0..V-1; there is no vertex type.
//   - Edges are undirected, carry a stable id (their position in the input
//     list) and are normalized so that Edge.U < Edge.V.
//   - The graph is simple: self-loops and parallel edges are rejected.
//   - Adjacency and incidence lists are computed once and returned sorted, so
//     every traversal built on top of core is deterministic.
//
// Vertex metadata:
//
//	– Sum target:   the weights of all incident edges must add up to it.
//	– Path targets: for each value, some simple path starting at the vertex
//	                must have edge weights adding up to it.
//
// Construction options:
//
//	– WithEdgeCount(n)            declared edge total, checked against the list.
//	– WithSumTarget(v, t)         single sum target.
//	– WithSumTargets(table)       one entry per vertex; entries <= 0 are "absent".
//	– WithPathTargets(v, ts...)   path targets for one vertex.
//	– WithPathTargetTable(table)  one list per vertex.
//
// Example:
//
//	g, err := core.NewGraph(3,
//	    []core.Pair{{0, 1}, {1, 2}, {0, 2}},
//	    core.WithEdgeCount(3),
//	    core.WithSumTarget(0, 3),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id, _ := g.EdgeBetween(2, 0) // 2
//
// Thread safety:
//
//	A Graph is never mutated after NewGraph returns; concurrent readers need
//	no synchronization.
package core
