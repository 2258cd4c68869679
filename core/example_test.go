package core_test

import (
	"fmt"

	"github.com/katalvlaran/sociograph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()
	for _, id := range []int{1, 2, 3} {
		_, _ = g.AddNode(id)
	}
	_, _ = g.AddEdge(1, 2, 0.5)
	_, _ = g.AddEdge(3, 1, 0.25)

	fmt.Println("Nodes:", g.NodeIDs())
	fmt.Println("Neighbors of 1:", g.Neighbors(1))
	fmt.Println("Edge 2--1 exists?", g.HasEdge(2, 1))

	// Removing a node drops its incident edges.
	_ = g.RemoveNode(1)
	fmt.Println("After removing 1:", g.NodeIDs(), "edges:", g.EdgeCount())

	// Output:
	// Nodes: [1 2 3]
	// Neighbors of 1: [2 3]
	// Edge 2--1 exists? true
	// After removing 1: [2 3] edges: 0
}

// ExampleGraph_AddEdge shows that re-adding a pair updates its weight.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_, _ = g.AddNode(1, core.WithName("Ali"))
	_, _ = g.AddNode(2)

	_, _ = g.AddEdge(1, 2, 0.3)
	e, _ := g.AddEdge(2, 1, 0.7)
	fmt.Println(e, g.EdgeCount())

	_, err := g.AddEdge(2, 2, 1)
	fmt.Println(err)

	// Output:
	// Edge(1 -- 2, weight=0.7) 1
	// core: self-loop not allowed: 2--2
}
