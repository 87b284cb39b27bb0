package csp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/edgeweight/csp"
)

// permutations returns a model whose solutions are all permutations of 1..n.
func permutations(t *testing.T, n int) *csp.Model {
	t.Helper()
	m, err := csp.NewModel(n, n)
	require.NoError(t, err)
	vars := make([]int, n)
	for i := range vars {
		vars[i] = i
	}
	require.NoError(t, m.Add(csp.NewAllDifferent(vars...)))

	return m
}

// triangle models the 3-cycle 0-1-2 (edges 0:(0,1) 1:(1,2) 2:(0,2))
// with vertex 0 requiring its incident weights to sum to 3.
func triangle(t *testing.T) *csp.Model {
	t.Helper()
	m := permutations(t, 3)
	require.NoError(t, m.Add(csp.NewSumEquals([]int{0, 2}, 3)))

	return m
}

func solveAll(t *testing.T, m *csp.Model, opts ...csp.Option) []csp.Assignment {
	t.Helper()
	s, err := csp.NewSolver(m, opts...)
	require.NoError(t, err)
	got, err := s.All(context.Background())
	require.NoError(t, err)

	return got
}

func TestModel_Validation(t *testing.T) {
	_, err := csp.NewModel(0, 3)
	assert.ErrorIs(t, err, csp.ErrBadModel)

	m, err := csp.NewModel(3, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Add(csp.NewFixedValue(3, 1)), csp.ErrVariableOutOfRange)
	assert.ErrorIs(t, m.Add(csp.NewFixedValue(0, 4)), csp.ErrValueOutOfRange)
	assert.ErrorIs(t, m.Add(csp.NewFixedValue(0, 0)), csp.ErrValueOutOfRange)
	assert.ErrorIs(t, m.Add(csp.NewSumEquals(nil, 3)), csp.ErrEmptyScope)
	assert.ErrorIs(t, m.Add(csp.NewPathDisjunction([][]int{{0}, {}}, 3)), csp.ErrEmptyScope)
	assert.ErrorIs(t, m.Add(csp.NewAllDifferent(0, -1)), csp.ErrVariableOutOfRange)

	// A failing batch adds nothing.
	assert.Error(t, m.Add(csp.NewFixedValue(0, 1), csp.NewFixedValue(9, 1)))
	assert.Empty(t, m.Constraints())

	require.NoError(t, m.Add(csp.NewPathDisjunction(nil, 3)))
	assert.Len(t, m.Constraints(), 1)
}

func TestNewSolver_ConflictingFixedValues(t *testing.T) {
	tests := []struct {
		name string
		cs   []csp.Constraint
	}{
		{"SameVariableTwice", []csp.Constraint{csp.NewFixedValue(0, 1), csp.NewFixedValue(0, 2)}},
		{"SameValueTwice", []csp.Constraint{
			csp.NewAllDifferent(0, 1, 2), csp.NewFixedValue(0, 2), csp.NewFixedValue(2, 2),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := csp.NewModel(3, 3)
			require.NoError(t, err)
			require.NoError(t, m.Add(tc.cs...))

			_, err = csp.NewSolver(m)
			assert.ErrorIs(t, err, csp.ErrInvalidConfiguration)

			_, err = csp.CountParallel(context.Background(), m, 2)
			assert.ErrorIs(t, err, csp.ErrInvalidConfiguration)
		})
	}
}

func TestNewSolver_SameValueOutsideAllDifferent(t *testing.T) {
	m, err := csp.NewModel(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Add(csp.NewFixedValue(0, 2), csp.NewFixedValue(1, 2)))

	got := solveAll(t, m)
	assert.Equal(t, []csp.Assignment{{2, 2}}, got)
}

func TestNewSolver_BadOptions(t *testing.T) {
	m := permutations(t, 2)
	_, err := csp.NewSolver(m, csp.WithMaxSolutions(-1))
	assert.ErrorIs(t, err, csp.ErrBadOption)
	_, err = csp.NewSolver(m, csp.WithHeuristic(csp.Heuristic(7)))
	assert.ErrorIs(t, err, csp.ErrBadOption)
	_, err = csp.NewSolver(nil)
	assert.ErrorIs(t, err, csp.ErrBadModel)
}

func TestSolutions_TriangleMirrors(t *testing.T) {
	got := solveAll(t, triangle(t))
	assert.ElementsMatch(t, []csp.Assignment{{1, 3, 2}, {2, 3, 1}}, got)
	for _, a := range got {
		assert.True(t, a.IsPermutation())
	}
}

func TestSolutions_UnreachableSumHasNoSolutions(t *testing.T) {
	// Edges 0:(0,1) and 1:(2,3); vertex 0 only sees edge 0 but needs 5.
	m := permutations(t, 2)
	require.NoError(t, m.Add(csp.NewSumEquals([]int{0}, 5)))

	s, err := csp.NewSolver(m)
	require.NoError(t, err)
	got, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, s.Stats().Solutions)
	assert.Equal(t, 1, s.Stats().Failures)
}

func TestSolutions_LeafPathTarget(t *testing.T) {
	// Path 0-1-2; vertex 0 needs a path of weight 1, and its only path is edge 0.
	m := permutations(t, 2)
	require.NoError(t, m.Add(csp.NewPathDisjunction([][]int{{0}}, 1)))

	assert.Equal(t, []csp.Assignment{{1, 2}}, solveAll(t, m))
}

func TestSolutions_AscendingOrder(t *testing.T) {
	want := []csp.Assignment{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}
	for _, h := range []csp.Heuristic{csp.MinDomain, csp.Lexicographic} {
		got := solveAll(t, permutations(t, 3), csp.WithHeuristic(h))
		assert.Equal(t, want, got, "heuristic %d", h)
	}
}

func TestSolutions_MaxSolutions(t *testing.T) {
	s, err := csp.NewSolver(permutations(t, 4), csp.WithMaxSolutions(2))
	require.NoError(t, err)
	got, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, s.Stats().Solutions)
}

func TestSolutions_NotRestartable(t *testing.T) {
	s, err := csp.NewSolver(triangle(t))
	require.NoError(t, err)
	seq := s.Solutions(context.Background())

	n := 0
	for _, err := range seq {
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, 2, n)

	var errs []error
	for a, err := range seq {
		assert.Nil(t, a)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], csp.ErrSequenceConsumed)
}

func TestSolutions_EarlyBreak(t *testing.T) {
	s, err := csp.NewSolver(permutations(t, 5))
	require.NoError(t, err)

	var first csp.Assignment
	for a, err := range s.Solutions(context.Background()) {
		require.NoError(t, err)
		first = a
		break
	}
	assert.Equal(t, csp.Assignment{1, 2, 3, 4, 5}, first)
	assert.Equal(t, 1, s.Stats().Solutions)
}

func TestSolutions_Cancellation(t *testing.T) {
	t.Run("BeforeStart", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s, err := csp.NewSolver(permutations(t, 3))
		require.NoError(t, err)

		got, err := s.All(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, got)
	})

	t.Run("AfterFirstSolution", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		s, err := csp.NewSolver(permutations(t, 3))
		require.NoError(t, err)

		var (
			got  []csp.Assignment
			errs []error
		)
		for a, err := range s.Solutions(ctx) {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			got = append(got, a)
			cancel()
		}
		assert.Len(t, got, 1)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], context.Canceled)
	})
}

func TestSolutions_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	got := solveAll(t, permutations(t, 4), csp.WithLogger(zap.New(core)))
	assert.Len(t, got, 24)

	require.Equal(t, 1, logs.FilterMessage("search started").Len())
	finished := logs.FilterMessage("search finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, int64(24), finished[0].ContextMap()["solutions"])
}

func TestCountParallel(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, workers := range []int{1, 3, 8} {
		n, err := csp.CountParallel(context.Background(), permutations(t, 4), workers)
		require.NoError(t, err)
		assert.Equal(t, 24, n, "workers=%d", workers)
	}

	n, err := csp.CountParallel(context.Background(), triangle(t), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Root propagation alone settles the leaf model.
	m := permutations(t, 2)
	require.NoError(t, m.Add(csp.NewFixedValue(0, 1)))
	n, err = csp.CountParallel(context.Background(), m, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountParallel_Errors(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, err := csp.CountParallel(context.Background(), permutations(t, 3), 0)
	assert.ErrorIs(t, err, csp.ErrBadOption)
	_, err = csp.CountParallel(context.Background(), nil, 1)
	assert.ErrorIs(t, err, csp.ErrBadModel)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = csp.CountParallel(ctx, permutations(t, 4), 2)
	assert.ErrorIs(t, err, context.Canceled)
}
