package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/edgeweight/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g from start. Neighbors are expanded in
// ascending vertex order, so Order is reproducible.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or any
// error returned by the OnVisit hook. On error the partial result is returned.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// Connected reports whether u and v lie in the same connected component.
func Connected(g *core.Graph, u, v int) (bool, error) {
	if g != nil && !g.HasVertex(v) {
		return false, fmt.Errorf("%w: %d", ErrStartVertexNotFound, v)
	}
	found := false
	_, err := BFS(g, u, WithOnVisit(func(x, _ int) error {
		if x == v {
			found = true
			return errStop
		}
		return nil
	}))
	if err != nil && !errors.Is(err, errStop) {
		return false, err
	}

	return found, nil
}

// errStop ends a walk early once the answer is known.
var errStop = errors.New("bfs: stop")

// enqueue marks v discovered at depth d and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			if errors.Is(err, errStop) {
				return err
			}
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors discovers the unvisited, admitted neighbors of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	nbrs, _ := w.graph.Neighbors(item.v) // item.v was validated on enqueue
	for _, nbr := range nbrs {
		if w.res.Depth[nbr] >= 0 || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
	}
}
