package csp

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CountParallel counts the solutions of m using up to workers goroutines.
//
// The root is propagated once, then split on its branching variable; every
// value of that variable is explored on its own cloned state. The count
// matches a sequential Solver on the same model. WithMaxSolutions is ignored.
// Cancellation returns the partial count together with ctx.Err().
func CountParallel(ctx context.Context, m *Model, workers int, opts ...Option) (int, error) {
	if m == nil {
		return 0, ErrBadModel
	}
	if workers < 1 {
		return 0, ErrBadOption
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if err := m.checkFixed(); err != nil {
		return 0, err
	}

	root := NewState(m.NumVars(), m.MaxValue())
	if !m.propagate(root) {
		return 0, nil
	}
	if root.Complete() {
		if m.satisfied(root.Assignment()) {
			return 1, nil
		}
		return 0, nil
	}

	v := selectVariable(root, o.Heuristic)
	values := root.Domain(v).Values()
	o.Logger.Debug("parallel count split",
		zap.Int("var", v),
		zap.Int("subtrees", len(values)),
		zap.Int("workers", workers))

	var (
		total  atomic.Int64
		mu     sync.Mutex
		merged Stats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, val := range values {
		child := root.Clone()
		child.Domain(v).Assign(val)
		g.Go(func() error {
			var (
				stats  Stats
				cancel error
			)
			r := &run{
				ctx:       gctx,
				model:     m,
				heuristic: o.Heuristic,
				stats:     &stats,
				yield: func(_ Assignment, err error) bool {
					if err != nil {
						cancel = err
						return false
					}
					total.Add(1)
					return true
				},
			}
			r.search(child)

			mu.Lock()
			merged.Nodes += stats.Nodes
			merged.Failures += stats.Failures
			mu.Unlock()

			return cancel
		})
	}
	err := g.Wait()
	o.Logger.Debug("parallel count finished",
		zap.Int64("solutions", total.Load()),
		zap.Int("nodes", merged.Nodes),
		zap.Int("failures", merged.Failures),
		zap.Error(err))

	return int(total.Load()), err
}
