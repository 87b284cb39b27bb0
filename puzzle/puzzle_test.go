package puzzle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/edgeweight/core"
	"github.com/katalvlaran/edgeweight/csp"
	"github.com/katalvlaran/edgeweight/decoder"
	"github.com/katalvlaran/edgeweight/dfs"
	"github.com/katalvlaran/edgeweight/puzzle"
)

func mustPuzzle(t *testing.T, doc string, opts ...puzzle.Option) *puzzle.Puzzle {
	t.Helper()
	cfg, err := puzzle.Parse([]byte(doc))
	require.NoError(t, err)
	p, err := puzzle.New(cfg, opts...)
	require.NoError(t, err)

	return p
}

func collect(t *testing.T, p *puzzle.Puzzle) []*puzzle.Solution {
	t.Helper()
	var out []*puzzle.Solution
	for sol, err := range p.Solve(context.Background()) {
		require.NoError(t, err)
		out = append(out, sol)
	}

	return out
}

func assignments(sols []*puzzle.Solution) []csp.Assignment {
	out := make([]csp.Assignment, len(sols))
	for i, s := range sols {
		out[i] = s.Assignment
	}

	return out
}

func TestSolve_TriangleMirrors(t *testing.T) {
	p := mustPuzzle(t, triangleYAML)
	sols := collect(t, p)

	assert.ElementsMatch(t, []csp.Assignment{{1, 3, 2}, {2, 3, 1}}, assignments(sols))
	for i, s := range sols {
		assert.Equal(t, i+1, s.Index)
		require.NotNil(t, s.Message)
		assert.Equal(t, []int{0, 1}, s.Message.Vertices)
	}
	assert.Equal(t, "A", sols[0].Message.Text)
	assert.Equal(t, "B", sols[1].Message.Text)

	sum := p.Summary()
	assert.Equal(t, 2, sum.Solutions)
	assert.Positive(t, sum.Nodes)
}

func TestSolve_UnreachableSumHasNoSolutions(t *testing.T) {
	p := mustPuzzle(t, `
vertices: 4
edges: [[0, 1], [2, 3]]
sum_targets: {0: 5}
`)
	assert.Empty(t, collect(t, p))
	assert.Zero(t, p.Summary().Solutions)
}

func TestSolve_LeafPathTarget(t *testing.T) {
	p := mustPuzzle(t, `
vertices: 3
edges: [[0, 1], [1, 2]]
path_targets: {0: [1]}
`)
	sols := collect(t, p)
	require.Len(t, sols, 1)
	assert.Equal(t, csp.Assignment{1, 2}, sols[0].Assignment)
	assert.Nil(t, sols[0].Message, "no decode section")
}

func TestSolve_MaxSolutions(t *testing.T) {
	p := mustPuzzle(t, triangleYAML, puzzle.WithMaxSolutions(1))
	assert.Len(t, collect(t, p), 1)
}

func TestSolve_DecodeFailureContinues(t *testing.T) {
	// A one-letter alphabet cannot spell weight 2.
	p := mustPuzzle(t, `
vertices: 3
edges: [[0, 1], [1, 2], [0, 2]]
sum_targets: {0: 3}
decode: {source: 0, target: 1, alphabet: "A"}
`)
	var (
		sols []*puzzle.Solution
		errs []error
	)
	for sol, err := range p.Solve(context.Background()) {
		require.NotNil(t, sol)
		sols = append(sols, sol)
		errs = append(errs, err)
	}
	require.Len(t, sols, 2)
	assert.NoError(t, errs[0])
	assert.Equal(t, "A", sols[0].Message.Text)
	assert.ErrorIs(t, errs[1], decoder.ErrSymbolRange)
	assert.Nil(t, sols[1].Message)
	assert.Equal(t, csp.Assignment{2, 3, 1}, sols[1].Assignment)
}

func TestSolve_Cancelled(t *testing.T) {
	p := mustPuzzle(t, triangleYAML)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var errs []error
	for sol, err := range p.Solve(ctx) {
		assert.Nil(t, sol)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		cause error
	}{
		{"Loop", "vertices: 2\nedges: [[0, 1], [1, 1]]\n", core.ErrLoopNotAllowed},
		{"MultiEdge", "vertices: 2\nedges: [[0, 1], [1, 0]]\n", core.ErrMultiEdgeNotAllowed},
		{"FixedConflict", "vertices: 3\nedges: [[0, 1], [1, 2]]\nfixed: {0: 1, 1: 1}\n", csp.ErrInvalidConfiguration},
		{"IsolatedSum", "vertices: 3\nedges: [[0, 1]]\nsum_targets: {2: 1}\n", nil},
		{"DisconnectedDecode", "vertices: 4\nedges: [[0, 1], [2, 3]]\ndecode: {source: 0, target: 3}\n", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := puzzle.Parse([]byte(tc.doc))
			require.NoError(t, err)
			_, err = puzzle.New(cfg)
			assert.ErrorIs(t, err, puzzle.ErrInvalidConfiguration)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}

	_, err := puzzle.New(nil)
	assert.ErrorIs(t, err, puzzle.ErrInvalidConfiguration)
	_, err = puzzle.New(puzzle.BugByte(), puzzle.WithParallelism(0))
	assert.ErrorIs(t, err, puzzle.ErrInvalidConfiguration)
	_, err = puzzle.New(puzzle.BugByte(), puzzle.WithMaxSolutions(-2))
	assert.ErrorIs(t, err, puzzle.ErrInvalidConfiguration)
}

func TestNew_Logging(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	p := mustPuzzle(t, triangleYAML, puzzle.WithLogger(zap.New(obs)))
	assert.Equal(t, "triangle", p.Name())

	compiled := logs.FilterMessage("puzzle compiled").All()
	require.Len(t, compiled, 1)
	fields := compiled[0].ContextMap()
	assert.Equal(t, "triangle", fields["puzzle"])
	assert.Equal(t, int64(3), fields["edges"])
	assert.Equal(t, int64(2), fields["constraints"])

	collect(t, p)
	assert.Equal(t, 2, logs.FilterMessage("solution decoded").Len())
}

func TestCount(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := mustPuzzle(t, triangleYAML, puzzle.WithParallelism(2))
	n, err := p.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Count does not consume the Solve sequence.
	assert.Len(t, collect(t, p), 2)
}

// TestBugByte solves the built-in puzzle and checks every solution against
// the rules directly rather than against a stored answer.
func TestBugByte(t *testing.T) {
	if testing.Short() {
		t.Skip("full puzzle search skipped in -short mode")
	}
	cfg := puzzle.BugByte()
	p, err := puzzle.New(cfg)
	require.NoError(t, err)
	g := p.Graph()

	sols := collect(t, p)
	require.NotEmpty(t, sols)
	for _, s := range sols {
		a := s.Assignment
		assert.True(t, a.IsPermutation(), "weights must be 1..E once each")
		for id, w := range cfg.Fixed {
			assert.Equal(t, w, a[id], "fixed edge %d", id)
		}
		for v, want := range cfg.SumTargets {
			incident, _ := g.IncidentEdges(v)
			assert.Equal(t, want, a.Sum(incident), "sum at vertex %d", v)
		}
		for v, targets := range cfg.PathTargets {
			for _, target := range targets {
				assert.True(t, hasWitness(t, g, a, v, target), "path %d from vertex %d", target, v)
			}
		}
		require.NotNil(t, s.Message)
		assert.Len(t, s.Message.Text, len(s.Message.Edges))
		assert.Equal(t, 3, s.Message.Vertices[0])
		assert.Equal(t, 17, s.Message.Vertices[len(s.Message.Vertices)-1])
		t.Logf("solution %d: %v message %q", s.Index, a, s.Message.Text)
	}
}

// hasWitness looks for a simple path from v whose weights add up to target.
func hasWitness(t *testing.T, g *core.Graph, a csp.Assignment, v, target int) bool {
	t.Helper()
	paths, err := dfs.EnumeratePaths(g, v, dfs.MaxPathLength(target))
	require.NoError(t, err)
	for _, p := range paths {
		if len(p) < 2 {
			continue
		}
		edges, err := dfs.PathEdges(g, p)
		require.NoError(t, err)
		if a.Sum(edges) == target {
			return true
		}
	}

	return false
}
