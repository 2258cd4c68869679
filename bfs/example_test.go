package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/sociograph/bfs"
	"github.com/katalvlaran/sociograph/core"
)

// ExampleBFS walks a small friendship network level by level.
func ExampleBFS() {
	g := core.NewGraph()
	for id := 1; id <= 5; id++ {
		_, _ = g.AddNode(id)
	}
	_, _ = g.AddEdge(1, 3, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 4, 1)
	_, _ = g.AddEdge(3, 5, 1)

	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(5)
	fmt.Println("order:", res.Order)
	fmt.Println("depth of 5:", res.Depth[5])
	fmt.Println("path to 5:", path)

	// Output:
	// order: [1 2 3 4 5]
	// depth of 5: 2
	// path to 5: [1 3 5]
}
