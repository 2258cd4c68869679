package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/dfs"
)

// buildChain creates an undirected chain 0-1-2-...-(n-1).
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, _ = g.AddNode(i)
	}
	for i := 0; i+1 < n; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	return g
}

// buildDiamond creates
//
//	  1
//	 / \
//	2   3
//	 \ /
//	  4
//	 / \
//	5   6
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := 1; id <= 6; id++ {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 5}, {4, 6}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph()
	res, err := dfs.DFS(g, 9)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestDFS_SingleNode(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode(7)
	require.NoError(t, err)

	res, err := dfs.DFS(g, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, res.Order)
	assert.True(t, res.Visited[7])
	_, hasParent := res.Parent[7]
	assert.False(t, hasParent, "start node should have no parent")
}

func TestDFS_SmallestNeighborFirst(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int{4, 3, 2, 1} {
		_, _ = g.AddNode(id)
	}
	_, _ = g.AddEdge(2, 4, 1)
	_, _ = g.AddEdge(1, 3, 1)
	_, _ = g.AddEdge(1, 2, 1)

	order, err := dfs.Order(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 3}, order)
}

func TestDFS_Diamond(t *testing.T) {
	g := buildDiamond(t)

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 3, 5, 6}, res.Order)
	assert.Equal(t, map[int]int{2: 1, 4: 2, 3: 4, 5: 4, 6: 4}, res.Parent)
	assert.Len(t, res.Visited, 6)
}

func TestDFS_VisitsEachOnce(t *testing.T) {
	// complete graph K5: every node is pushed many times but visited once
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		_, _ = g.AddNode(i)
	}
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			_, _ = g.AddEdge(i, j, 1)
		}
	}

	order, err := dfs.Order(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 1, 2, 4}, order)
}

func TestDFS_DeepChainNoRecursion(t *testing.T) {
	const n = 100000
	order, err := dfs.Order(buildChain(n), 0)
	require.NoError(t, err)
	require.Len(t, order, n)
	assert.Equal(t, n-1, order[n-1])
}

func TestDFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int{5, 1, 2, 3} {
		_, _ = g.AddNode(id)
	}
	_, _ = g.AddEdge(1, 2, 1)

	order, err := dfs.Order(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)

	res, err := dfs.DFS(g, 1, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5, 3}, res.Order, "remaining roots follow insertion order")
	_, hasParent := res.Parent[5]
	assert.False(t, hasParent)
}

func TestDFS_OnVisitAbort(t *testing.T) {
	g := buildDiamond(t)
	stop := errors.New("stop")

	var seen []int
	res, err := dfs.DFS(g, 1, dfs.WithOnVisit(func(id int) error {
		seen = append(seen, id)
		if id == 4 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{1, 2, 4}, seen)
	assert.Equal(t, []int{1, 2, 4}, res.Order, "partial result is returned")
}
