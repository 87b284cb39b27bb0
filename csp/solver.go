package csp

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Stats summarises one search.
type Stats struct {
	Nodes     int           // search nodes entered
	Failures  int           // nodes abandoned after propagation or the final check
	Solutions int           // assignments yielded
	Elapsed   time.Duration // wall time from the first node to the end of the search
}

// Solver enumerates the solutions of a Model.
type Solver struct {
	model *Model
	opts  Options
	used  atomic.Bool
	stats Stats
}

// NewSolver validates the options and the fixed values of m.
// It returns ErrInvalidConfiguration when the fixed values contradict each
// other, and ErrBadOption for impossible options.
func NewSolver(m *Model, opts ...Option) (*Solver, error) {
	if m == nil {
		return nil, ErrBadModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := m.checkFixed(); err != nil {
		return nil, err
	}

	return &Solver{model: m, opts: o}, nil
}

// Stats returns the counters of the last (or running) search.
func (s *Solver) Stats() Stats { return s.stats }

// Solutions returns the lazy sequence of solutions, depth-first with values
// tried in ascending order. The sequence can be ranged over once; a second
// range yields a single ErrSequenceConsumed. On cancellation it yields
// (nil, ctx.Err()) and ends. Stopping the range early stops the search.
func (s *Solver) Solutions(ctx context.Context) iter.Seq2[Assignment, error] {
	return func(yield func(Assignment, error) bool) {
		if s.used.Swap(true) {
			yield(nil, ErrSequenceConsumed)
			return
		}
		log := s.opts.Logger
		log.Debug("search started",
			zap.Int("vars", s.model.NumVars()),
			zap.Int("max_value", s.model.MaxValue()),
			zap.Int("constraints", len(s.model.constraints)))

		r := &run{
			ctx:       ctx,
			model:     s.model,
			heuristic: s.opts.Heuristic,
			limit:     s.opts.MaxSolutions,
			stats:     &s.stats,
			yield:     yield,
		}
		start := time.Now()
		r.search(NewState(s.model.NumVars(), s.model.MaxValue()))
		s.stats.Elapsed = time.Since(start)

		log.Debug("search finished",
			zap.Int("nodes", s.stats.Nodes),
			zap.Int("failures", s.stats.Failures),
			zap.Int("solutions", s.stats.Solutions),
			zap.Duration("elapsed", s.stats.Elapsed))
	}
}

// All drains the sequence into a slice, stopping at the first error.
func (s *Solver) All(ctx context.Context) ([]Assignment, error) {
	var out []Assignment
	for a, err := range s.Solutions(ctx) {
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}

	return out, nil
}

// run is the mutable state of one depth-first search.
type run struct {
	ctx       context.Context
	model     *Model
	heuristic Heuristic
	limit     int
	stats     *Stats
	yield     func(Assignment, error) bool
}

// search explores the subtree rooted at st, which it owns. It returns false
// once the consumer has stopped, the limit was reached or ctx was cancelled;
// the caller must then unwind without yielding again.
func (r *run) search(st *State) bool {
	r.stats.Nodes++
	if !r.model.propagate(st) {
		r.stats.Failures++
		return true
	}
	if err := r.ctx.Err(); err != nil {
		r.yield(nil, err)
		return false
	}

	if st.Complete() {
		a := st.Assignment()
		if !r.model.satisfied(a) {
			r.stats.Failures++
			return true
		}
		r.stats.Solutions++
		if !r.yield(a, nil) {
			return false
		}

		return r.limit == 0 || r.stats.Solutions < r.limit
	}

	v := selectVariable(st, r.heuristic)
	for _, val := range st.Domain(v).Values() {
		child := st.Clone()
		child.Domain(v).Assign(val)
		if !r.search(child) {
			return false
		}
	}

	return true
}

// selectVariable returns the branching variable of a state that is not complete.
func selectVariable(st *State, h Heuristic) int {
	best, bestCount := -1, 0
	for v := 0; v < st.Len(); v++ {
		n := st.Domain(v).Count()
		if n <= 1 {
			continue
		}
		if h == Lexicographic {
			return v
		}
		if best < 0 || n < bestCount {
			best, bestCount = v, n
		}
	}
	if best < 0 {
		panic(fmt.Sprintf("csp: no branching variable in %d vars", st.Len()))
	}

	return best
}
