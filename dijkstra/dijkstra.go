package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/edgeweight/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g, where edge id i costs weights[i].
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, or Unreachable.
//   - prev: with ReturnPath, prev[v] is the predecessor of v on a shortest
//     path (-1 for the source and unreachable vertices); nil otherwise.
//   - err:  validation failure.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source must be set (ErrNoSource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. len(weights) == g.EdgeCount() (ErrWeightCount).
//  6. No weight may be negative (ErrNegativeWeight).
func Dijkstra(g *core.Graph, weights []int64, opts ...Option) ([]int64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate inputs
	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}
	if err := checkWeights(g, weights, 0); err != nil {
		return nil, nil, err
	}

	// 3) Run
	r := newRunner(g, weights, cfg)
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// checkWeights validates the weight slice; every weight must be >= min.
func checkWeights(g *core.Graph, weights []int64, min int64) error {
	if len(weights) != g.EdgeCount() {
		return fmt.Errorf("%w: got %d, want %d", ErrWeightCount, len(weights), g.EdgeCount())
	}
	for id, w := range weights {
		if w >= min {
			continue
		}
		e, _ := g.Edge(id)
		if w < 0 {
			return fmt.Errorf("%w: edge %d (%d-%d) weight=%d", ErrNegativeWeight, id, e.U, e.V, w)
		}

		return fmt.Errorf("%w: edge %d (%d-%d) weight=%d", ErrNonPositiveWeight, id, e.U, e.V, w)
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	edges   []core.Edge
	weights []int64
	options Options
	dist    []int64
	prev    []int
	visited []bool
	pq      nodePQ
}

func newRunner(g *core.Graph, weights []int64, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		edges:   g.Edges(),
		weights: weights,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	return r
}

// init sets every distance to Unreachable and pushes Source at distance 0.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = -1
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled vertex until the heap is empty or the
// smallest distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// stale entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbor of the settled vertex u.
func (r *runner) relax(u int) {
	incident, _ := r.g.IncidentEdges(u) // u is a vertex: it was pushed by init or relax
	for _, id := range incident {
		w := r.weights[id]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := r.edges[id].Other(u)
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		// lazy decrease-key: the old entry is skipped when popped
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then vertex id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
