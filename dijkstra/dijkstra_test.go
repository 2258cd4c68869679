// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// input validation, distances, predecessor links, path reconstruction and
// the MaxDistance / InfEdgeThreshold options.
package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/dijkstra"
)

// build creates nodes 1..n and the given weighted edges.
func build(t testing.TB, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := 1; id <= n; id++ {
		if _, err := g.AddNode(id); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, 1)
	if !errors.Is(err, dijkstra.ErrGraphNil) {
		t.Fatalf("Expected ErrGraphNil, got %v", err)
	}
}

func TestDijkstra_StartNotFound(t *testing.T) {
	g := build(t, 2, nil)
	_, _, err := dijkstra.Dijkstra(g, 9)
	if !errors.Is(err, dijkstra.ErrStartNotFound) || !errors.Is(err, core.ErrNodeNotFound) {
		t.Fatalf("Expected ErrStartNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := build(t, 3, [][3]float64{{1, 2, 1}, {2, 3, -5}})
	_, _, err := dijkstra.Dijkstra(g, 1)
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_BadOptions(t *testing.T) {
	g := build(t, 1, nil)
	if _, _, err := dijkstra.Dijkstra(g, 1, dijkstra.WithMaxDistance(-1)); !errors.Is(err, dijkstra.ErrBadMaxDistance) {
		t.Errorf("Expected ErrBadMaxDistance, got %v", err)
	}
	if _, _, err := dijkstra.Dijkstra(g, 1, dijkstra.WithInfEdgeThreshold(0)); !errors.Is(err, dijkstra.ErrBadInfThreshold) {
		t.Errorf("Expected ErrBadInfThreshold, got %v", err)
	}
	if _, _, err := dijkstra.Dijkstra(g, 1, dijkstra.WithInfEdgeThreshold(math.NaN())); !errors.Is(err, dijkstra.ErrBadInfThreshold) {
		t.Errorf("Expected ErrBadInfThreshold for NaN, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_PathGraph(t *testing.T) {
	// 1—2—3, unit weights
	g := build(t, 3, [][3]float64{{1, 2, 1}, {2, 3, 1}})
	dist, prev, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := map[int]float64{1: 0, 2: 1, 3: 2}; !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}
	if want := map[int]int{2: 1, 3: 2}; !reflect.DeepEqual(prev, want) {
		t.Errorf("prev = %v; want %v", prev, want)
	}
	if _, ok := prev[1]; ok {
		t.Error("start must have no predecessor")
	}
	if got, want := dijkstra.ReconstructPath(prev, 1, 3), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("path = %v; want %v", got, want)
	}
}

func TestDijkstra_Triangle(t *testing.T) {
	// 1—2(1), 2—3(2), 1—3(5): the detour is cheaper
	g := build(t, 3, [][3]float64{{1, 2, 1}, {2, 3, 2}, {1, 3, 5}})
	path, cost, err := dijkstra.ShortestPath(g, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if cost != 3 {
		t.Errorf("cost = %v; want 3", cost)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestDijkstra_ChainWithBranch(t *testing.T) {
	// 1—2—3—4—5
	//         |
	//         6—7
	g := build(t, 7, [][3]float64{{1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {4, 5, 1}, {4, 6, 1}, {6, 7, 1}})
	dist, prev, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	expected := map[int]float64{1: 0, 2: 1, 3: 2, 4: 3, 5: 4, 6: 4, 7: 5}
	for v, want := range expected {
		if got := dist[v]; got != want {
			t.Errorf("dist[%d] = %v; want %v", v, got, want)
		}
	}
	if got, want := dijkstra.ReconstructPath(prev, 1, 7), []int{1, 2, 3, 4, 6, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("path = %v; want %v", got, want)
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := build(t, 4, [][3]float64{{1, 2, 1}})
	dist, prev, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist[3], 1) || !math.IsInf(dist[4], 1) {
		t.Errorf("unreachable nodes must be +Inf, got %v", dist)
	}
	if len(dist) != 4 {
		t.Errorf("dist must cover every node, got %d entries", len(dist))
	}
	if p := dijkstra.ReconstructPath(prev, 1, 4); len(p) != 0 {
		t.Errorf("path to unreachable = %v; want empty", p)
	}

	path, cost, err := dijkstra.ShortestPath(g, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 0 || !math.IsInf(cost, 1) {
		t.Errorf("ShortestPath unreachable = %v, %v", path, cost)
	}
	if _, _, err = dijkstra.ShortestPath(g, 1, 42); !errors.Is(err, dijkstra.ErrTargetNotFound) {
		t.Errorf("Expected ErrTargetNotFound, got %v", err)
	}
}

func TestDijkstra_SingleNodeAndSelfPath(t *testing.T) {
	g := build(t, 1, nil)
	dist, prev, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if dist[1] != 0 || len(prev) != 0 {
		t.Errorf("dist=%v prev=%v", dist, prev)
	}
	if got := dijkstra.ReconstructPath(prev, 1, 1); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("self path = %v", got)
	}
}

func TestDijkstra_EqualCostTieIsDeterministic(t *testing.T) {
	// square 1—2—4 and 1—3—4, all weight 1
	g := build(t, 4, [][3]float64{{1, 3, 1}, {3, 4, 1}, {1, 2, 1}, {2, 4, 1}})
	for i := 0; i < 20; i++ {
		_, prev, err := dijkstra.Dijkstra(g, 1)
		if err != nil {
			t.Fatal(err)
		}
		if prev[4] != 2 {
			t.Fatalf("prev[4] = %d; want 2 (smaller id settles first)", prev[4])
		}
	}
}

func TestReconstructPath_BrokenChain(t *testing.T) {
	if got := dijkstra.ReconstructPath(map[int]int{3: 2}, 1, 3); len(got) != 0 {
		t.Errorf("broken chain = %v; want empty", got)
	}
	// cyclic garbage must terminate
	if got := dijkstra.ReconstructPath(map[int]int{3: 2, 2: 3}, 1, 3); len(got) != 0 {
		t.Errorf("cyclic prev = %v; want empty", got)
	}
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	g := build(t, 4, [][3]float64{{1, 2, 1}, {2, 3, 1}, {3, 4, 1}})
	dist, _, err := dijkstra.Dijkstra(g, 1, dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if dist[3] != 2 {
		t.Errorf("dist[3] = %v; want 2", dist[3])
	}
	if !math.IsInf(dist[4], 1) {
		t.Errorf("dist[4] = %v; want +Inf beyond the cap", dist[4])
	}
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// direct 1—3 edge is a wall; the detour costs 4
	g := build(t, 3, [][3]float64{{1, 3, 10}, {1, 2, 2}, {2, 3, 2}})
	dist, _, err := dijkstra.Dijkstra(g, 1, dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		t.Fatal(err)
	}
	if dist[3] != 4 {
		t.Errorf("dist[3] = %v; want 4", dist[3])
	}
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

// TestDijkstra_TriangleInequality checks dist[v] <= dist[u] + w(u,v) for
// every edge on random graphs.
func TestDijkstra_TriangleInequality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		g := core.NewGraph()
		const n = 40
		for i := 0; i < n; i++ {
			_, _ = g.AddNode(i)
		}
		for i := 0; i < 3*n; i++ {
			_, _ = g.AddEdge(rng.Intn(n), rng.Intn(n), rng.Float64()*10)
		}

		dist, prev, err := dijkstra.Dijkstra(g, 0)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range g.Edges() {
			du, dv := dist[e.U], dist[e.V]
			if math.IsInf(du, 1) && math.IsInf(dv, 1) {
				continue
			}
			if dv > du+e.Weight+1e-9 || du > dv+e.Weight+1e-9 {
				t.Fatalf("round %d: edge %v violates triangle inequality (%v, %v)", round, e, du, dv)
			}
		}
		for v, d := range dist {
			path := dijkstra.ReconstructPath(prev, 0, v)
			if math.IsInf(d, 1) != (len(path) == 0) {
				t.Fatalf("round %d: node %d dist %v path %v", round, v, d, path)
			}
		}
	}
}
