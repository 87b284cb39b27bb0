package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that an endpoint does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrWeightCount indicates that the weight slice does not match the edge count.
	ErrWeightCount = errors.New("dijkstra: weight count does not match edge count")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNonPositiveWeight indicates a zero or negative weight where
	// ShortestPath needs strictly positive ones.
	ErrNonPositiveWeight = errors.New("dijkstra: edge weight must be positive")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path between vertices")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported for vertices not reached.
const Unreachable int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex (-1 until set).
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore. Must be ≥ 0.
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable. Must be > 0.
type Options struct {
	Source           int
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64

	err error // first invalid option, reported by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values make Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
// Zero or negative values make Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = ErrBadInfThreshold
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no source, no distance cap
// and no impassable edges.
func DefaultOptions() Options {
	return Options{
		Source:           -1,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
