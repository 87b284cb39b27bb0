// Package core defines the immutable puzzle Graph: a simple undirected graph
// over integer vertex ids 0..V-1 whose edges carry stable ids 0..E-1, plus the
// per-vertex constraint metadata (sum targets and path targets) that the
// solver compiles into constraints.
//
// A Graph is validated once in NewGraph and never mutated afterwards, so it is
// safe to share across goroutines without locks. Every getter returns a copy.
//
// Errors:
//
//	ErrVertexCount         - vertex count < 1 or an attribute table has the wrong length.
//	ErrEdgeCount           - declared edge total differs from the edge list.
//	ErrVertexOutOfRange    - an edge endpoint or queried vertex is outside 0..V-1.
//	ErrEdgeNotFound        - an edge id is outside 0..E-1.
//	ErrLoopNotAllowed      - an edge joins a vertex to itself.
//	ErrMultiEdgeNotAllowed - two edges share the same endpoints.
//	ErrNotAdjacent         - EdgeBetween was asked for two unconnected vertices.
//	ErrBadTarget           - a sum or path target is not a positive integer.
package core

import (
	"errors"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexCount indicates a non-positive vertex count or an attribute
	// table whose length differs from the declared vertex count.
	ErrVertexCount = errors.New("core: vertex count mismatch")

	// ErrEdgeCount indicates the declared edge total differs from the edge list length.
	ErrEdgeCount = errors.New("core: edge count mismatch")

	// ErrVertexOutOfRange indicates a vertex id outside 0..V-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrEdgeNotFound indicates an edge id outside 0..E-1.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop in the edge list.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates two edges joining the same pair of vertices.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNotAdjacent indicates that no edge joins the two requested vertices.
	ErrNotAdjacent = errors.New("core: vertices not adjacent")

	// ErrBadTarget indicates a sum or path target that is not a positive integer.
	ErrBadTarget = errors.New("core: target must be positive")
)

// Pair is an unordered pair of vertex ids describing one edge in the input list.
type Pair [2]int

// Edge is one undirected edge of the Graph.
//
// ID is the position of the edge in the construction list and doubles as the
// index of its weight variable. U < V always holds after construction.
type Edge struct {
	ID int
	U  int
	V  int
}

// Other returns the endpoint of e opposite to v.
// The result is meaningless if v is not an endpoint of e.
func (e Edge) Other(v int) int {
	if e.U == v {
		return e.V
	}

	return e.U
}

// Attrs carries the constraint metadata of a single vertex.
type Attrs struct {
	// SumTarget is the required total of incident edge weights; 0 means absent.
	SumTarget int

	// PathTargets lists totals that must each be witnessed by some simple path
	// starting at the vertex. Paths for different targets may overlap.
	PathTargets []int
}

// GraphOption configures vertex metadata and validation before the Graph is sealed.
type GraphOption func(o *graphOptions)

// graphOptions collects option values; err records the first invalid option.
type graphOptions struct {
	edgeCount  int // declared edge total, -1 if not declared
	sumTargets map[int]int
	sumTable   []int
	pathTarget map[int][]int
	pathTable  [][]int
	err        error
}

// WithEdgeCount declares the expected number of edges. NewGraph fails with
// ErrEdgeCount if the edge list length differs.
func WithEdgeCount(n int) GraphOption {
	return func(o *graphOptions) { o.edgeCount = n }
}

// WithSumTarget requires the weights of all edges incident to v to add up to t.
func WithSumTarget(v, t int) GraphOption {
	return func(o *graphOptions) {
		if t <= 0 {
			o.recordErr(ErrBadTarget)
			return
		}
		o.sumTargets[v] = t
	}
}

// WithSumTargets installs a full per-vertex sum table. Its length must equal
// the vertex count; entries <= 0 mean "no constraint" (the -1 convention of
// tabular puzzle definitions).
func WithSumTargets(table []int) GraphOption {
	return func(o *graphOptions) {
		o.sumTable = append([]int(nil), table...)
	}
}

// WithPathTargets appends path targets for vertex v, preserving their order.
func WithPathTargets(v int, targets ...int) GraphOption {
	return func(o *graphOptions) {
		for _, t := range targets {
			if t <= 0 {
				o.recordErr(ErrBadTarget)
				return
			}
		}
		o.pathTarget[v] = append(o.pathTarget[v], targets...)
	}
}

// WithPathTargetTable installs a full per-vertex table of path targets.
// Its length must equal the vertex count.
func WithPathTargetTable(table [][]int) GraphOption {
	return func(o *graphOptions) {
		o.pathTable = make([][]int, len(table))
		for i, ts := range table {
			o.pathTable[i] = append([]int(nil), ts...)
		}
	}
}

func (o *graphOptions) recordErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Graph is the immutable puzzle topology.
//
// neighbors[v] is sorted ascending; incident[v] lists edge ids touching v in
// ascending order; between maps a normalized (min,max) pair to its edge id.
type Graph struct {
	vertexCount int
	edges       []Edge
	neighbors   [][]int
	incident    [][]int
	between     map[Pair]int
	attrs       []Attrs
}
