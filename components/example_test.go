package components_test

import (
	"fmt"

	"github.com/katalvlaran/sociograph/components"
	"github.com/katalvlaran/sociograph/core"
)

func ExampleConnected() {
	g := core.NewGraph()
	for _, id := range []int{1, 2, 3, 4, 5} {
		_, _ = g.AddNode(id)
	}
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(4, 5, 1)

	fmt.Println(components.Connected(g))
	fmt.Println("count:", components.Count(g))
	// Output:
	// [[1 2] [3] [4 5]]
	// count: 3
}
