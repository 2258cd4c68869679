// Package components partitions a core.Graph into connected components.
//
// Seeds are taken in the graph's insertion order and each component is
// flood-filled with an explicit stack, so the output is deterministic:
// components appear in the order of their first-inserted member, and the
// IDs inside each component are sorted ascending.
//
// Time: O(V + E log d). Memory: O(V).
package components

import (
	"sort"

	"github.com/katalvlaran/sociograph/core"
)

// Connected returns every connected component of g. A nil or empty graph
// yields an empty (non-nil) slice. Every node appears in exactly one component.
func Connected(g *core.Graph) [][]int {
	comps := make([][]int, 0)
	if g == nil {
		return comps
	}

	seen := make(map[int]bool, g.NodeCount())
	var stack []int
	for _, seed := range g.NodeIDs() {
		if seen[seed] {
			continue
		}
		// flood fill from seed
		var comp []int
		stack = append(stack[:0], seed)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen[u] {
				continue
			}
			seen[u] = true
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				if !seen[v] {
					stack = append(stack, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Count returns the number of connected components.
func Count(g *core.Graph) int {
	return len(Connected(g))
}

// Largest returns the biggest component; on a size tie the one emitted first
// wins. Empty graphs yield nil.
func Largest(g *core.Graph) []int {
	var best []int
	for _, c := range Connected(g) {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}

// Membership maps every node to the index of its component in Connected(g).
func Membership(g *core.Graph) map[int]int {
	comps := Connected(g)
	out := make(map[int]int)
	for i, c := range comps {
		for _, id := range c {
			out[id] = i
		}
	}

	return out
}
