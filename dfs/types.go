// Package dfs defines types and options for depth-first simple-path
// enumeration over a core.Graph, including cancellation and neighbor filtering.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to EnumeratePaths,
	// PathEdges or CandidateEdgeSets.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrBadMaxNodes indicates a maxNodes limit below one.
	ErrBadMaxNodes = errors.New("dfs: maxNodes must be at least 1")

	// ErrPathTooShort indicates a path with fewer than two vertices was
	// passed where edges are required.
	ErrPathTooShort = errors.New("dfs: path needs at least two vertices")
)

// Path is an ordered sequence of vertex ids. Paths produced by this package
// never repeat a vertex.
type Path []int

// Len returns the number of vertices on the path.
func (p Path) Len() int { return len(p) }

// Clone returns an independent copy of p.
func (p Path) Clone() Path { return append(Path(nil), p...) }

// Option configures optional behavior of path enumeration.
// Use with EnumeratePaths(g, start, maxNodes, opts...).
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per stack frame.
	Ctx context.Context

	// FilterNeighbor, if non-nil, is called before extending a path from
	// vertex `from` into `to`. Return false to skip that extension.
	FilterNeighbor func(from, to int) bool
}

// DefaultOptions returns Options with a background context and no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		FilterNeighbor: nil,
	}
}

// WithContext returns an Option that sets the Context for enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFilterNeighbor returns an Option that restricts which edges a path may
// traverse. Skipped extensions also prune every longer path through them.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
