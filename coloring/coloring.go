// Package coloring assigns colors to nodes of a core.Graph so that no two
// adjacent nodes share a color, using the Welsh–Powell greedy heuristic.
//
// Colors are small non-negative integers starting at 0. The heuristic gives
// at most maxdeg+1 colors; it is not guaranteed to be optimal.
package coloring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/sociograph/core"
)

var (
	// ErrInvalidColoring indicates two adjacent nodes share a color.
	ErrInvalidColoring = errors.New("coloring: adjacent nodes share a color")

	// ErrUncolored indicates a node has no color assigned.
	ErrUncolored = errors.New("coloring: node has no color")
)

// WelshPowell colors g greedily.
//
// Nodes are processed by degree descending, ties broken by ascending ID;
// each takes the smallest color not already used by a colored neighbor.
// Every node of g receives a color. A nil graph yields an empty map.
//
// Complexity: O(V log V + E).
func WelshPowell(g *core.Graph) map[int]int {
	colors := make(map[int]int)
	if g == nil {
		return colors
	}

	ids := g.NodeIDs()
	deg := make(map[int]int, len(ids))
	for _, id := range ids {
		deg[id] = g.Degree(id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if deg[ids[i]] != deg[ids[j]] {
			return deg[ids[i]] > deg[ids[j]]
		}
		return ids[i] < ids[j]
	})

	used := make(map[int]bool)
	for _, id := range ids {
		clear(used)
		for _, nb := range g.Neighbors(id) {
			if c, ok := colors[nb]; ok {
				used[c] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		colors[id] = c
	}

	return colors
}

// ColorCount returns the number of distinct colors in colors.
func ColorCount(colors map[int]int) int {
	distinct := make(map[int]struct{})
	for _, c := range colors {
		distinct[c] = struct{}{}
	}

	return len(distinct)
}

// Classes groups node IDs by color: Classes(colors)[c] lists the nodes with
// color c, sorted ascending. Colors missing from the map yield empty classes.
func Classes(colors map[int]int) [][]int {
	maxC := -1
	for _, c := range colors {
		maxC = max(maxC, c)
	}
	out := make([][]int, maxC+1)
	for i := range out {
		out[i] = []int{}
	}
	for id, c := range colors {
		if c >= 0 {
			out[c] = append(out[c], id)
		}
	}
	for _, cls := range out {
		sort.Ints(cls)
	}

	return out
}

// Validate checks that every node of g is colored and that no edge joins two
// nodes of the same color.
func Validate(g *core.Graph, colors map[int]int) error {
	if g == nil {
		return nil
	}
	for _, id := range g.SortedNodeIDs() {
		if _, ok := colors[id]; !ok {
			return fmt.Errorf("%w: %d", ErrUncolored, id)
		}
	}
	for _, e := range g.Edges() {
		if colors[e.U] == colors[e.V] {
			return fmt.Errorf("%w: %d and %d both have color %d", ErrInvalidColoring, e.U, e.V, colors[e.U])
		}
	}

	return nil
}
