package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/dfs"
)

// ExampleDFS shows the deterministic visit order on a diamond-shaped graph:
//
//	  1
//	 / \
//	2   3
//	 \ /
//	  4
//	 / \
//	5   6
func ExampleDFS() {
	g := core.NewGraph()
	for id := 1; id <= 6; id++ {
		_, _ = g.AddNode(id)
	}
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 5}, {4, 6}} {
		_, _ = g.AddEdge(e[0], e[1], 1)
	}

	res, err := dfs.DFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println("3 reached via", res.Parent[3])

	// Output:
	// [1 2 4 3 5 6]
	// 3 reached via 4
}
