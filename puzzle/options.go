package puzzle

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Options configures a Puzzle.
type Options struct {
	Logger       *zap.Logger
	MaxSolutions int // 0 = all
	Parallelism  int // workers used by Count

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent configuration that enumerates every
// solution and counts with one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		Parallelism: runtime.NumCPU(),
	}
}

// WithLogger sets the logger shared by the puzzle and its solver.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxSolutions stops Solve after n solutions (0 means no limit).
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max solutions %d", ErrInvalidConfiguration, n)
			return
		}
		o.MaxSolutions = n
	}
}

// WithParallelism sets the worker count for Count.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: parallelism %d", ErrInvalidConfiguration, n)
			return
		}
		o.Parallelism = n
	}
}
