package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/dijkstra"
)

// ExampleDijkstra computes distances on a triangle where the two-hop detour
// is cheaper than the direct edge.
func ExampleDijkstra() {
	g := core.NewGraph()
	for id := 1; id <= 3; id++ {
		_, _ = g.AddNode(id)
	}
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 2)
	_, _ = g.AddEdge(1, 3, 5)

	dist, prev, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[1]=%g, dist[2]=%g, dist[3]=%g\n", dist[1], dist[2], dist[3])
	fmt.Println("path:", dijkstra.ReconstructPath(prev, 1, 3))
	// Output:
	// dist[1]=0, dist[2]=1, dist[3]=3
	// path: [1 2 3]
}

// ExampleShortestPath shows the unreachable case.
func ExampleShortestPath() {
	g := core.NewGraph()
	_, _ = g.AddNode(1)
	_, _ = g.AddNode(2)

	path, cost, _ := dijkstra.ShortestPath(g, 1, 2)
	fmt.Println(path, cost)
	// Output: [] +Inf
}
