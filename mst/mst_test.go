package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sociograph/builder"
	"github.com/katalvlaran/sociograph/components"
	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/mst"
	"github.com/katalvlaran/sociograph/weight"
)

// weighted builds a graph on nodes 1..n from (u, v, w) triples.
func weighted(t *testing.T, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		_, err := g.AddNode(i)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

// triangle: 1-2 (1), 2-3 (2), 1-3 (3). Heaviest tree = {1-3, 2-3}, total 5.
func triangle(t *testing.T) *core.Graph {
	return weighted(t, 3, [][3]float64{{1, 2, 1}, {2, 3, 2}, {1, 3, 3}})
}

func keys(edges []core.Edge) []core.EdgeKey {
	out := make([]core.EdgeKey, len(edges))
	for i := range edges {
		out[i] = edges[i].Key()
	}

	return out
}

func TestTriangle(t *testing.T) {
	want := []core.EdgeKey{{Lo: 1, Hi: 3}, {Lo: 2, Hi: 3}}

	edges, total, err := mst.Kruskal(triangle(t))
	require.NoError(t, err)
	assert.Equal(t, want, keys(edges))
	assert.Equal(t, 5.0, total)

	edges, total, err = mst.Prim(triangle(t), 1)
	require.NoError(t, err)
	assert.Equal(t, want, keys(edges))
	assert.Equal(t, 5.0, total)
}

// TestIdenticalPairSurvives: 1 and 2 share every attribute, 3 is far from
// both. The backbone must keep the 1--2 tie.
func TestIdenticalPairSurvives(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode(1, core.WithActivity(0.5), core.WithInteraction(10), core.WithConnectionCount(3))
	require.NoError(t, err)
	_, err = g.AddNode(2, core.WithActivity(0.5), core.WithInteraction(10), core.WithConnectionCount(3))
	require.NoError(t, err)
	_, err = g.AddNode(3, core.WithActivity(0.1), core.WithInteraction(40), core.WithConnectionCount(3))
	require.NoError(t, err)
	for _, p := range [][2]int{{1, 2}, {1, 3}, {2, 3}} {
		a, _ := g.Node(p[0])
		b, _ := g.Node(p[1])
		_, err = g.AddEdge(p[0], p[1], weight.Euclidean(a, b))
		require.NoError(t, err)
	}

	for _, method := range []string{mst.MethodKruskal, mst.MethodPrim} {
		res, err := mst.Compute(g, mst.WithMethod(method))
		require.NoError(t, err, method)
		require.Len(t, res.Edges, 2, method)
		assert.Contains(t, keys(res.Edges), core.EdgeKey{Lo: 1, Hi: 2}, method)
		assert.Equal(t, 1.0, res.Edges[0].Weight, method)
	}
}

func TestValidation(t *testing.T) {
	_, _, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrGraphNil)
	_, _, err = mst.Kruskal(core.NewGraph())
	assert.ErrorIs(t, err, mst.ErrEmptyGraph)
	_, _, err = mst.Prim(core.NewGraph(), 1)
	assert.ErrorIs(t, err, mst.ErrEmptyGraph)

	_, _, err = mst.Prim(triangle(t), 42)
	assert.ErrorIs(t, err, mst.ErrRootNotFound)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = mst.Compute(triangle(t), mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
	_, err = mst.Compute(nil, mst.WithMethod(mst.MethodPrim))
	assert.ErrorIs(t, err, mst.ErrGraphNil)
}

func TestSingleNode(t *testing.T) {
	g := weighted(t, 1, nil)
	edges, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	edges, _, err = mst.Prim(g, 1)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestDisconnectedAndForest(t *testing.T) {
	// {1,2,3} triangle plus {4,5} pair plus isolated 6
	g := weighted(t, 6, [][3]float64{{1, 2, 1}, {2, 3, 2}, {1, 3, 3}, {4, 5, 0.5}})

	_, _, err := mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(g, 1)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	for _, method := range []string{mst.MethodKruskal, mst.MethodPrim} {
		res, err := mst.Compute(g, mst.WithMethod(method), mst.WithForest())
		require.NoError(t, err, method)
		assert.Equal(t, 3, res.Trees, method)
		assert.Len(t, res.Edges, 3, method)
		assert.InDelta(t, 5.5, res.Total, 1e-12, method)
	}
}

func TestEqualWeightsBreakByKey(t *testing.T) {
	// 4-cycle with uniform weights: Kruskal takes the three smallest keys
	g := weighted(t, 4, [][3]float64{{3, 4, 1}, {1, 4, 1}, {2, 3, 1}, {1, 2, 1}})
	edges, _, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeKey{{Lo: 1, Hi: 2}, {Lo: 1, Hi: 4}, {Lo: 2, Hi: 3}}, keys(edges))

	edges, _, err = mst.Prim(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeKey{{Lo: 1, Hi: 2}, {Lo: 1, Hi: 4}, {Lo: 2, Hi: 3}}, keys(edges))
}

func TestComputeDefaultsToKruskal(t *testing.T) {
	res, err := mst.Compute(triangle(t))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Trees)
	assert.Equal(t, 5.0, res.Total)

	res, err = mst.Compute(triangle(t), mst.WithMethod(mst.MethodPrim), mst.WithRoot(2))
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Total)
	assert.Equal(t, core.EdgeKey{Lo: 2, Hi: 3}, res.Edges[0].Key())
}

func TestBackboneGraph(t *testing.T) {
	g := weighted(t, 5, [][3]float64{{1, 2, 1}, {2, 3, 2}, {1, 3, 3}, {4, 5, 0.5}})
	n1, _ := g.Node(1)
	n1.Activity = 0.7

	bb, err := mst.Backbone(g)
	require.NoError(t, err)
	require.NoError(t, bb.Validate())
	assert.Equal(t, g.NodeIDs(), bb.NodeIDs())
	assert.Equal(t, 3, bb.EdgeCount())
	assert.False(t, bb.HasEdge(1, 2), "lightest triangle edge is dropped")
	assert.True(t, bb.HasEdge(4, 5))
	c1, _ := bb.Node(1)
	assert.Equal(t, 0.7, c1.Activity)
	assert.Equal(t, 3, g.EdgeCount(), "source untouched")

	_, err = mst.Backbone(core.NewGraph())
	assert.ErrorIs(t, err, mst.ErrEmptyGraph)
}

// TestPrimMatchesKruskal checks total weight agreement on random networks.
func TestPrimMatchesKruskal(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(
			[]builder.Option{builder.WithSeed(seed), builder.WithRandomAttributes()},
			builder.RandomSparse(60, 0.08),
		)
		require.NoError(t, err)

		k, err := mst.Compute(g, mst.WithForest())
		require.NoError(t, err)
		p, err := mst.Compute(g, mst.WithMethod(mst.MethodPrim), mst.WithForest())
		require.NoError(t, err)

		assert.InDelta(t, k.Total, p.Total, 1e-9, "seed %d", seed)
		assert.Equal(t, k.Trees, p.Trees, "seed %d", seed)
		assert.Equal(t, components.Count(g), k.Trees, "seed %d", seed)
	}
}
