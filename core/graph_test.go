package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgeweight/core"
)

// triangle returns the 3-cycle 0-1-2 with edge ids 0:(0,1), 1:(1,2), 2:(0,2).
func triangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3, []core.Pair{{0, 1}, {1, 2}, {0, 2}}, opts...)
	require.NoError(t, err)

	return g
}

func TestNewGraph_Validation(t *testing.T) {
	cases := []struct {
		name  string
		v     int
		pairs []core.Pair
		opts  []core.GraphOption
		want  error
	}{
		{"zero vertices", 0, nil, nil, core.ErrVertexCount},
		{"edge count mismatch", 3, []core.Pair{{0, 1}}, []core.GraphOption{core.WithEdgeCount(2)}, core.ErrEdgeCount},
		{"endpoint out of range", 2, []core.Pair{{0, 2}}, nil, core.ErrVertexOutOfRange},
		{"negative endpoint", 2, []core.Pair{{-1, 1}}, nil, core.ErrVertexOutOfRange},
		{"self loop", 2, []core.Pair{{1, 1}}, nil, core.ErrLoopNotAllowed},
		{"parallel edge", 2, []core.Pair{{0, 1}, {1, 0}}, nil, core.ErrMultiEdgeNotAllowed},
		{"bad sum target", 2, []core.Pair{{0, 1}}, []core.GraphOption{core.WithSumTarget(0, 0)}, core.ErrBadTarget},
		{"bad path target", 2, []core.Pair{{0, 1}}, []core.GraphOption{core.WithPathTargets(0, 3, -1)}, core.ErrBadTarget},
		{"sum table length", 2, []core.Pair{{0, 1}}, []core.GraphOption{core.WithSumTargets([]int{1})}, core.ErrVertexCount},
		{"path table length", 2, []core.Pair{{0, 1}}, []core.GraphOption{core.WithPathTargetTable([][]int{{1}, {}, {}})}, core.ErrVertexCount},
		{"path table bad value", 2, []core.Pair{{0, 1}}, []core.GraphOption{core.WithPathTargetTable([][]int{{0}, {}})}, core.ErrBadTarget},
		{"sum target vertex", 2, []core.Pair{{0, 1}}, []core.GraphOption{core.WithSumTarget(5, 1)}, core.ErrVertexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.v, tc.pairs, tc.opts...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGraph_Adjacency(t *testing.T) {
	g := triangle(t)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, nbs)

	inc, err := g.IncidentEdges(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, inc)

	deg, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.Neighbors(7)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.IncidentEdges(-1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestGraph_EdgeBetween(t *testing.T) {
	g, err := core.NewGraph(4, []core.Pair{{0, 1}, {2, 1}, {2, 3}})
	require.NoError(t, err)

	id, err := g.EdgeBetween(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = g.EdgeBetween(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, id, "lookup must be order-independent")

	_, err = g.EdgeBetween(0, 3)
	assert.ErrorIs(t, err, core.ErrNotAdjacent)

	_, err = g.EdgeBetween(0, 9)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	e, err := g.Edge(1)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{ID: 1, U: 1, V: 2}, e, "endpoints are normalized")
	assert.Equal(t, 2, e.Other(1))
	assert.Equal(t, 1, e.Other(2))

	_, err = g.Edge(3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_Targets(t *testing.T) {
	g := triangle(t,
		core.WithSumTargets([]int{-1, 7, 0}),
		core.WithSumTarget(0, 3),
		core.WithPathTargetTable([][]int{{4}, nil, nil}),
		core.WithPathTargets(0, 5, 6),
	)

	sum, ok := g.SumTarget(0)
	assert.True(t, ok)
	assert.Equal(t, 3, sum)

	sum, ok = g.SumTarget(1)
	assert.True(t, ok)
	assert.Equal(t, 7, sum)

	_, ok = g.SumTarget(2)
	assert.False(t, ok, "non-positive table entries mean absent")

	assert.Equal(t, []int{4, 5, 6}, g.PathTargets(0))
	assert.Nil(t, g.PathTargets(1))
	assert.Nil(t, g.PathTargets(42))

	attrs, err := g.Attrs(0)
	require.NoError(t, err)
	assert.Equal(t, 3, attrs.SumTarget)
}

func TestGraph_Immutable(t *testing.T) {
	g := triangle(t, core.WithPathTargets(1, 2))

	nbs, _ := g.Neighbors(0)
	nbs[0] = 99
	again, _ := g.Neighbors(0)
	assert.Equal(t, []int{1, 2}, again)

	edges := g.Edges()
	edges[0].U = 99
	e, _ := g.Edge(0)
	assert.Equal(t, 0, e.U)

	pts := g.PathTargets(1)
	pts[0] = 99
	assert.Equal(t, []int{2}, g.PathTargets(1))
}
