package core

import "fmt"

// VertexCount returns V. Complexity O(1).
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns E, which is also the size of every weight domain.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.vertexCount }

// Edges returns a copy of the edge list in id order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id int) (Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: id=%d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Neighbors returns the vertices adjacent to v in ascending order.
//
// Complexity:
//   - Time O(deg(v)) for the defensive copy.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return append([]int(nil), g.neighbors[v]...), nil
}

// IncidentEdges returns the ids of the edges touching v in ascending order.
func (g *Graph) IncidentEdges(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return append([]int(nil), g.incident[v]...), nil
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return len(g.incident[v]), nil
}

// EdgeBetween returns the id of the unique edge joining u and v, in either order.
// It fails with ErrNotAdjacent when no such edge exists.
//
// Complexity:
//   - Time O(1) via the normalized pair index.
func (g *Graph) EdgeBetween(u, v int) (int, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return -1, fmt.Errorf("%w: (%d,%d)", ErrVertexOutOfRange, u, v)
	}
	if u > v {
		u, v = v, u
	}
	id, ok := g.between[Pair{u, v}]
	if !ok {
		return -1, fmt.Errorf("%w: (%d,%d)", ErrNotAdjacent, u, v)
	}

	return id, nil
}

// SumTarget returns the sum target of v and whether one is set.
func (g *Graph) SumTarget(v int) (int, bool) {
	if !g.HasVertex(v) || g.attrs[v].SumTarget <= 0 {
		return 0, false
	}

	return g.attrs[v].SumTarget, true
}

// PathTargets returns a copy of the path targets of v, in declaration order.
// A vertex without path targets, or an invalid id, yields nil.
func (g *Graph) PathTargets(v int) []int {
	if !g.HasVertex(v) || len(g.attrs[v].PathTargets) == 0 {
		return nil
	}

	return append([]int(nil), g.attrs[v].PathTargets...)
}

// Attrs returns a copy of the metadata of v.
func (g *Graph) Attrs(v int) (Attrs, error) {
	if !g.HasVertex(v) {
		return Attrs{}, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	a := g.attrs[v]
	a.PathTargets = append([]int(nil), a.PathTargets...)

	return a, nil
}
