package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/edgeweight/core"
)

// Path is one concrete shortest path.
type Path struct {
	Vertices []int // src .. dst
	Edges    []int // Edges[i] joins Vertices[i] and Vertices[i+1]
	Cost     int64
}

// ShortestPath returns the minimum-cost path from src to dst. Among several
// minimum-cost paths it returns the one whose vertex sequence is
// lexicographically smallest, so the result depends only on the inputs.
//
// It runs Dijkstra from dst, then walks forward from src, always stepping to
// the smallest neighbor v with w(u,v) + dist(v) == dist(u). Weights must be
// strictly positive (ErrNonPositiveWeight), which makes every such step
// strictly decrease the remaining distance.
func ShortestPath(g *core.Graph, weights []int64, src, dst int) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, src)
	}
	if !g.HasVertex(dst) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, dst)
	}
	if err := checkWeights(g, weights, 1); err != nil {
		return nil, err
	}

	toDst, _, err := Dijkstra(g, weights, Source(dst))
	if err != nil {
		return nil, err
	}
	if toDst[src] == Unreachable {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, src, dst)
	}

	p := &Path{Vertices: []int{src}, Cost: toDst[src]}
	for u := src; u != dst; {
		next, via := -1, -1
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs { // ascending
			id, _ := g.EdgeBetween(u, v)
			if toDst[v] != Unreachable && weights[id]+toDst[v] == toDst[u] {
				next, via = v, id
				break
			}
		}
		if next < 0 {
			// unreachable with consistent distances
			return nil, fmt.Errorf("%w: broken at %d", ErrNoPath, u)
		}
		p.Vertices = append(p.Vertices, next)
		p.Edges = append(p.Edges, via)
		u = next
	}

	return p, nil
}
