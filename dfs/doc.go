// Package dfs implements depth-first simple-path enumeration on a core.Graph,
// the building block for existential path constraints.
//
// What:
//
//   - EnumeratePaths: all simple paths from a start vertex, up to a node limit,
//     found with an explicit stack of (vertex, neighbor cursor) frames and a
//     visited bitset, so deep graphs never grow the goroutine stack.
//   - Deduplicate: one representative per vertex set, single vertices dropped.
//   - MaxPathLength: the triangular-number bound k with T(k-1) <= t < T(k).
//   - PathEdges, CandidateEdgeSets: paths as edge-id lists, ready to become
//     PathDisjunction candidates in package csp.
//
// Why:
//
//   - A path target t at vertex v holds iff some simple path from v has edge
//     weights adding up to t. Weights are distinct integers from 1, so a path of
//     k-1 edges weighs at least T(k-1); longer paths can never hit t and are
//     not enumerated.
//
// Determinism:
//
//   - core.Graph returns neighbors in ascending order and the stack visits them
//     in that order, so output order is a pure function of the graph.
//
// Complexity:
//
//   - EnumeratePaths: Time O(P·L), Memory O(L) working set (P paths, L = maxNodes).
//   - Deduplicate:    Time O(P·L log L), Memory O(P) signatures.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is not a vertex of g.
//   - ErrBadMaxNodes          if maxNodes < 1.
//   - ErrPathTooShort         if PathEdges receives fewer than two vertices.
//   - context.Canceled        if ctx is done.
package dfs
