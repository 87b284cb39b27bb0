package core

import (
	"fmt"
	"sort"
)

// NewGraph validates the topology and vertex metadata and returns a sealed Graph.
//
// Implementation:
//   - Stage 1: Apply options; the first invalid option aborts construction.
//   - Stage 2: Check vertex count, declared edge count and endpoint ranges.
//   - Stage 3: Reject self-loops and parallel edges, normalize each edge to U < V.
//   - Stage 4: Build sorted adjacency and incidence lists and the pair index.
//   - Stage 5: Resolve sum and path targets from tables and per-vertex options.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func NewGraph(vertexCount int, pairs []Pair, opts ...GraphOption) (*Graph, error) {
	// 1) Options
	o := graphOptions{
		edgeCount:  -1,
		sumTargets: make(map[int]int),
		pathTarget: make(map[int][]int),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Declared totals
	if vertexCount < 1 {
		return nil, fmt.Errorf("%w: vertices=%d", ErrVertexCount, vertexCount)
	}
	if o.edgeCount >= 0 && o.edgeCount != len(pairs) {
		return nil, fmt.Errorf("%w: declared=%d actual=%d", ErrEdgeCount, o.edgeCount, len(pairs))
	}

	g := &Graph{
		vertexCount: vertexCount,
		edges:       make([]Edge, len(pairs)),
		neighbors:   make([][]int, vertexCount),
		incident:    make([][]int, vertexCount),
		between:     make(map[Pair]int, len(pairs)),
		attrs:       make([]Attrs, vertexCount),
	}

	// 3) Edges
	for id, p := range pairs {
		u, v := p[0], p[1]
		if u < 0 || u >= vertexCount || v < 0 || v >= vertexCount {
			return nil, fmt.Errorf("%w: edge %d (%d,%d)", ErrVertexOutOfRange, id, u, v)
		}
		if u == v {
			return nil, fmt.Errorf("%w: edge %d at vertex %d", ErrLoopNotAllowed, id, u)
		}
		if u > v {
			u, v = v, u
		}
		key := Pair{u, v}
		if prev, dup := g.between[key]; dup {
			return nil, fmt.Errorf("%w: edges %d and %d join (%d,%d)", ErrMultiEdgeNotAllowed, prev, id, u, v)
		}
		g.between[key] = id
		g.edges[id] = Edge{ID: id, U: u, V: v}

		// 4) Adjacency, sorted after the loop
		g.neighbors[u] = append(g.neighbors[u], v)
		g.neighbors[v] = append(g.neighbors[v], u)
		g.incident[u] = append(g.incident[u], id)
		g.incident[v] = append(g.incident[v], id)
	}
	for v := 0; v < vertexCount; v++ {
		sort.Ints(g.neighbors[v])
		// incidence lists are already ascending: ids were appended in order
	}

	// 5) Targets
	if err := g.resolveTargets(&o); err != nil {
		return nil, err
	}

	return g, nil
}

// resolveTargets merges table-based and per-vertex target options.
// Per-vertex sum options override table entries; path targets concatenate,
// table entries first.
func (g *Graph) resolveTargets(o *graphOptions) error {
	if o.sumTable != nil {
		if len(o.sumTable) != g.vertexCount {
			return fmt.Errorf("%w: sum table has %d entries for %d vertices",
				ErrVertexCount, len(o.sumTable), g.vertexCount)
		}
		for v, t := range o.sumTable {
			if t > 0 {
				g.attrs[v].SumTarget = t
			}
		}
	}
	if o.pathTable != nil {
		if len(o.pathTable) != g.vertexCount {
			return fmt.Errorf("%w: path table has %d entries for %d vertices",
				ErrVertexCount, len(o.pathTable), g.vertexCount)
		}
		for v, ts := range o.pathTable {
			for _, t := range ts {
				if t <= 0 {
					return fmt.Errorf("%w: path target %d at vertex %d", ErrBadTarget, t, v)
				}
			}
			g.attrs[v].PathTargets = append(g.attrs[v].PathTargets, ts...)
		}
	}

	// Deterministic application order for map-backed options.
	sumVerts := make([]int, 0, len(o.sumTargets))
	for v := range o.sumTargets {
		sumVerts = append(sumVerts, v)
	}
	sort.Ints(sumVerts)
	for _, v := range sumVerts {
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: sum target at vertex %d", ErrVertexOutOfRange, v)
		}
		g.attrs[v].SumTarget = o.sumTargets[v]
	}

	pathVerts := make([]int, 0, len(o.pathTarget))
	for v := range o.pathTarget {
		pathVerts = append(pathVerts, v)
	}
	sort.Ints(pathVerts)
	for _, v := range pathVerts {
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: path target at vertex %d", ErrVertexOutOfRange, v)
		}
		g.attrs[v].PathTargets = append(g.attrs[v].PathTargets, o.pathTarget[v]...)
	}

	return nil
}
