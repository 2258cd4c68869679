package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/sociograph/centrality"
	"github.com/katalvlaran/sociograph/core"
)

func ExampleDegree() {
	g := core.NewGraph()
	for id := 1; id <= 4; id++ {
		_, _ = g.AddNode(id)
	}
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(1, 3, 1)
	_, _ = g.AddEdge(1, 4, 1)
	_, _ = g.AddEdge(3, 4, 1)

	for _, s := range centrality.Degree(g, 3) {
		fmt.Printf("%d:%d ", s.ID, s.Degree)
	}
	fmt.Println()
	// Output: 1:3 3:2 4:2
}
