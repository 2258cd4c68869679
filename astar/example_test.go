package astar_test

import (
	"fmt"

	"github.com/katalvlaran/sociograph/astar"
	"github.com/katalvlaran/sociograph/core"
)

func ExampleAStar() {
	g := core.NewGraph()
	for id := 1; id <= 4; id++ {
		_, _ = g.AddNode(id)
	}
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 4, 1)
	_, _ = g.AddEdge(1, 3, 0.5)
	_, _ = g.AddEdge(3, 4, 2)

	res, err := astar.AStar(g, 1, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost())
	// Output: [1 2 4] 2
}
