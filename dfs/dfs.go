// Package dfs enumerates simple paths with an explicit depth-first stack.
//
// Key features:
//   - EnumeratePaths(g, start, maxNodes, opts...): every simple path from start
//     with 1..maxNodes vertices, prefixes included, in pre-order.
//   - Deduplicate: keeps the first path for each distinct vertex set.
//   - MaxPathLength: triangular-number bound on the node count of a path whose
//     distinct positive edge weights add up to a target.
//   - PathEdges / CandidateEdgeSets: translate paths into edge ids.
//
// Complexity:
//
//   - Time:   O(P · maxNodes) where P is the number of emitted paths
//     (exponential in the branching factor, bounded by maxNodes).
//   - Memory: O(maxNodes) for the stack and visited set, plus the output.
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrBadMaxNodes.
//   - context.Canceled / context.DeadlineExceeded if ctx is done.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/edgeweight/core"
)

// frame is one level of the explicit stack: the vertex at that depth and the
// cursor into its sorted neighbor list.
type frame struct {
	vertex int
	next   int
}

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	graph     *core.Graph
	opts      Options
	maxNodes  int
	neighbors map[int][]int // cached sorted neighbor lists
	visited   bitset        // vertices on the current path
	path      Path          // current path, shared with the stack
	out       []Path        // emitted copies
}

// EnumeratePaths returns every simple path that begins at start and has between
// 1 and maxNodes vertices.
//
// Paths are emitted in depth-first pre-order with neighbors visited in
// ascending id order: the single-vertex path first, then each extension
// followed by all of its own extensions. A path is only extended into
// vertices not already on it, and extension stops once maxNodes is reached.
func EnumeratePaths(g *core.Graph, start, maxNodes int, opts ...Option) ([]Path, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	if maxNodes < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxNodes, maxNodes)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &pathWalker{
		graph:     g,
		opts:      o,
		maxNodes:  maxNodes,
		neighbors: make(map[int][]int),
		visited:   newBitset(g.VertexCount()),
		path:      make(Path, 0, maxNodes),
	}

	// 3. Walk
	if err := w.walk(start); err != nil {
		return nil, err
	}

	return w.out, nil
}

// walk drives the explicit stack from start.
func (w *pathWalker) walk(start int) error {
	w.push(start)
	if w.maxNodes == 1 {
		return nil
	}
	stack := []frame{{vertex: start}}

	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		nbs, err := w.adjacent(top.vertex)
		if err != nil {
			return err
		}

		// 2. Advance cursor to the next admissible neighbor
		for top.next < len(nbs) && !w.admissible(top.vertex, nbs[top.next]) {
			top.next++
		}

		// 3. Exhausted: backtrack
		if top.next >= len(nbs) {
			w.pop()
			stack = stack[:len(stack)-1]
			continue
		}

		// 4. Extend and emit
		nid := nbs[top.next]
		top.next++
		w.push(nid)

		// 5. Descend only while the path may still grow
		if len(w.path) < w.maxNodes {
			stack = append(stack, frame{vertex: nid})
		} else {
			w.pop()
		}
	}

	return nil
}

// admissible reports whether the current path may be extended from -> to.
func (w *pathWalker) admissible(from, to int) bool {
	if w.visited.has(to) {
		return false
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(from, to) {
		return false
	}

	return true
}

// push appends v to the current path, marks it visited and emits a copy.
func (w *pathWalker) push(v int) {
	w.visited.set(v)
	w.path = append(w.path, v)
	w.out = append(w.out, w.path.Clone())
}

// pop removes the last vertex of the current path.
func (w *pathWalker) pop() {
	last := w.path[len(w.path)-1]
	w.visited.clear(last)
	w.path = w.path[:len(w.path)-1]
}

// adjacent returns the cached neighbor list of v.
func (w *pathWalker) adjacent(v int) ([]int, error) {
	if nbs, ok := w.neighbors[v]; ok {
		return nbs, nil
	}
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return nil, fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	w.neighbors[v] = nbs

	return nbs, nil
}
