package csp

import (
	"errors"

	"go.uber.org/zap"
)

// ErrBadOption indicates an option constructor received an impossible argument.
var ErrBadOption = errors.New("csp: invalid option")

// Heuristic selects the branching variable.
type Heuristic int

const (
	// MinDomain picks the unbound variable with the fewest candidates,
	// ties going to the lowest id.
	MinDomain Heuristic = iota
	// Lexicographic picks the lowest unbound id.
	Lexicographic
)

// Options configures a Solver.
type Options struct {
	Logger       *zap.Logger
	MaxSolutions int // 0 means unlimited
	Heuristic    Heuristic

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent, unlimited, MinDomain configuration.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		Heuristic: MinDomain,
	}
}

// WithLogger routes search diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxSolutions stops the sequence after n solutions. n must be >= 0.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrBadOption
			return
		}
		o.MaxSolutions = n
	}
}

// WithHeuristic selects the branching heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != MinDomain && h != Lexicographic {
			o.err = ErrBadOption
			return
		}
		o.Heuristic = h
	}
}
