// Package puzzle compiles an edge-labelling puzzle into a constraint model,
// enumerates its solutions and decodes the message each one hides.
//
// A puzzle is an undirected graph whose E edges must take the weights
// 1..E, each exactly once. Vertices may carry a sum target (incident weights
// add up to it) or path targets (for each, some simple path starting at the
// vertex has exactly that weight). Some edges may be fixed in advance.
//
// Typical use:
//
//	p, err := puzzle.New(puzzle.BugByte(), puzzle.WithLogger(log))
//	for sol, err := range p.Solve(ctx) {
//	    ...
//	}
package puzzle

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/edgeweight/bfs"
	"github.com/katalvlaran/edgeweight/core"
	"github.com/katalvlaran/edgeweight/csp"
	"github.com/katalvlaran/edgeweight/decoder"
	"github.com/katalvlaran/edgeweight/dfs"
)

// Solution is one complete labelling.
type Solution struct {
	Index      int // 1-based, in enumeration order
	Assignment csp.Assignment
	Message    *decoder.Message // nil without a decode section or when decoding failed
}

// Summary reports the outcome of Solve.
type Summary struct {
	Solutions int
	Nodes     int
	Failures  int
	Elapsed   time.Duration
}

// Puzzle is a compiled, ready-to-search puzzle.
type Puzzle struct {
	cfg    Config
	opts   Options
	log    *zap.Logger
	graph  *core.Graph
	model  *csp.Model
	solver *csp.Solver
}

// New validates cfg, builds the graph and compiles the constraint model.
// Every failure wraps ErrInvalidConfiguration.
func New(cfg *Config, opts ...Option) (*Puzzle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Puzzle{cfg: *cfg, opts: o, log: o.Logger.With(zap.String("puzzle", cfg.Name))}
	if err := p.buildGraph(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if err := p.checkDecodeEndpoints(); err != nil {
		return nil, err
	}
	if err := p.compile(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	solver, err := csp.NewSolver(p.model,
		csp.WithLogger(p.log),
		csp.WithMaxSolutions(o.MaxSolutions),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	p.solver = solver

	return p, nil
}

// Graph returns the puzzle topology.
func (p *Puzzle) Graph() *core.Graph { return p.graph }

// Model returns the compiled constraint model.
func (p *Puzzle) Model() *csp.Model { return p.model }

// Name returns the configured puzzle name.
func (p *Puzzle) Name() string { return p.cfg.Name }

func (p *Puzzle) buildGraph() error {
	pairs := make([]core.Pair, len(p.cfg.Edges))
	for i, e := range p.cfg.Edges {
		pairs[i] = core.Pair{e[0], e[1]}
	}
	gopts := []core.GraphOption{core.WithEdgeCount(len(pairs))}
	for v, t := range p.cfg.SumTargets {
		gopts = append(gopts, core.WithSumTarget(v, t))
	}
	for v, ts := range p.cfg.PathTargets {
		gopts = append(gopts, core.WithPathTargets(v, ts...))
	}

	g, err := core.NewGraph(p.cfg.Vertices, pairs, gopts...)
	if err != nil {
		return err
	}
	p.graph = g

	return nil
}

// checkDecodeEndpoints rejects a decode section whose endpoints can never be
// joined, whatever the weights.
func (p *Puzzle) checkDecodeEndpoints() error {
	d := p.cfg.Decode
	if d == nil {
		return nil
	}
	ok, err := bfs.Connected(p.graph, d.Source, d.Target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if !ok {
		return fmt.Errorf("%w: decode endpoints %d and %d are disconnected",
			ErrInvalidConfiguration, d.Source, d.Target)
	}

	return nil
}

// compile emits, in order: one AllDifferent over every edge, the fixed
// values, one SumEquals per sum target and one PathDisjunction per path
// target. Vertices are visited in ascending order.
func (p *Puzzle) compile() error {
	g := p.graph
	e := g.EdgeCount()
	m, err := csp.NewModel(e, e)
	if err != nil {
		return err
	}

	all := make([]int, e)
	for i := range all {
		all[i] = i
	}
	cs := []csp.Constraint{csp.NewAllDifferent(all...)}

	for _, id := range sortedKeys(p.cfg.Fixed) {
		cs = append(cs, csp.NewFixedValue(id, p.cfg.Fixed[id]))
	}

	for v := 0; v < g.VertexCount(); v++ {
		t, ok := g.SumTarget(v)
		if !ok {
			continue
		}
		incident, _ := g.IncidentEdges(v)
		if len(incident) == 0 {
			return fmt.Errorf("sum target %d at isolated vertex %d", t, v)
		}
		cs = append(cs, csp.NewSumEquals(incident, t))
	}

	for v := 0; v < g.VertexCount(); v++ {
		for _, t := range g.PathTargets(v) {
			sets, err := dfs.CandidateEdgeSets(g, v, t)
			if err != nil {
				return fmt.Errorf("path target %d at vertex %d: %w", t, v, err)
			}
			p.log.Debug("path candidates",
				zap.Int("vertex", v),
				zap.Int("target", t),
				zap.Int("max_nodes", dfs.MaxPathLength(t)),
				zap.Int("candidates", len(sets)))
			cs = append(cs, csp.NewPathDisjunction(sets, t))
		}
	}

	if err := m.Add(cs...); err != nil {
		return err
	}
	p.model = m
	p.log.Info("puzzle compiled",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", e),
		zap.Int("constraints", len(cs)))

	return nil
}

// Solve lazily enumerates solutions. Each solution is decoded when the
// config has a decode section; a decode failure is yielded alongside the
// undecoded solution and enumeration continues if the caller keeps ranging.
// Like the underlying solver, the sequence can be ranged over only once.
func (p *Puzzle) Solve(ctx context.Context) iter.Seq2[*Solution, error] {
	return func(yield func(*Solution, error) bool) {
		index := 0
		for a, err := range p.solver.Solutions(ctx) {
			if err != nil {
				p.log.Warn("search stopped", zap.Error(err))
				yield(nil, err)
				return
			}
			index++
			sol := &Solution{Index: index, Assignment: a}
			if err := p.decode(sol); err != nil {
				p.log.Warn("decode failed", zap.Int("solution", index), zap.Error(err))
				if !yield(sol, err) {
					return
				}
				continue
			}
			if !yield(sol, nil) {
				return
			}
		}
	}
}

func (p *Puzzle) decode(sol *Solution) error {
	d := p.cfg.Decode
	if d == nil {
		return nil
	}
	var dopts []decoder.Option
	if d.Alphabet != "" {
		dopts = append(dopts, decoder.WithAlphabet(d.Alphabet))
	}
	msg, err := decoder.Decode(p.graph, sol.Assignment, d.Source, d.Target, dopts...)
	if err != nil {
		return fmt.Errorf("puzzle: solution %d: %w", sol.Index, err)
	}
	sol.Message = msg
	p.log.Debug("solution decoded",
		zap.Int("solution", sol.Index),
		zap.String("message", msg.Text),
		zap.Int("cost", msg.Cost))

	return nil
}

// Summary reports the counters of the last Solve.
func (p *Puzzle) Summary() Summary {
	st := p.solver.Stats()

	return Summary{
		Solutions: st.Solutions,
		Nodes:     st.Nodes,
		Failures:  st.Failures,
		Elapsed:   st.Elapsed,
	}
}

// Count returns the number of solutions using Options.Parallelism workers.
// It ignores WithMaxSolutions and can be called any number of times.
func (p *Puzzle) Count(ctx context.Context) (int, error) {
	return csp.CountParallel(ctx, p.model, p.opts.Parallelism, csp.WithLogger(p.log))
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
