// Package dfs implements iterative depth-first search on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): explicit stack, no recursion depth limits
//   - Neighbors are pushed in descending ID order, so the smallest unvisited
//     neighbor is explored first
//   - A node popped after it was already visited is skipped
//   - Optional OnVisit hook and forest traversal via WithFullTraversal
//
// Complexity:
//
//   - Time:   O(V + E log d) (sorting each adjacency list once per visit).
//   - Memory: O(V + E) for the stack, which may hold duplicate entries.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrStartNotFound   if start is missing (matches core.ErrNodeNotFound).
//   - any error returned by OnVisit, wrapped with the node ID.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/sociograph/core"
)

// stackItem is a pending visit: the node and the node that pushed it.
type stackItem struct {
	id     int
	parent int
	root   bool
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	stack []stackItem
}

// DFS performs depth-first search on g from start and returns the visit
// order, parent links and visited set.
//
// For nodes {1,2,3,4} with edges {(1,2),(1,3),(2,4)}, DFS from 1 is
// [1 2 4 3].
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	// 4. Initialize result with capacity hint
	n := g.NodeCount()
	res := &Result{
		Order:   make([]int, 0, n),
		Parent:  make(map[int]int, n),
		Visited: make(map[int]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse the start tree, then the remaining forest if requested
	if err := w.traverse(start); err != nil {
		return res, err
	}
	if dopts.FullTraversal {
		for _, id := range g.NodeIDs() {
			if res.Visited[id] {
				continue
			}
			if err := w.traverse(id); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// Order is a convenience wrapper returning only the visit sequence.
func Order(g *core.Graph, start int) ([]int, error) {
	res, err := DFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// traverse runs the stack loop from root until the stack drains.
func (w *dfsWalker) traverse(root int) error {
	w.stack = append(w.stack[:0], stackItem{id: root, root: true})

	var (
		item stackItem
		nbs  []int
		i    int
	)
	for len(w.stack) > 0 {
		// 1. Pop
		item = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// 2. Skip stale duplicates
		if w.res.Visited[item.id] {
			continue
		}

		// 3. Visit
		w.res.Visited[item.id] = true
		w.res.Order = append(w.res.Order, item.id)
		if !item.root {
			w.res.Parent[item.id] = item.parent
		}
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(item.id); err != nil {
				return fmt.Errorf("dfs: OnVisit error at %d: %w", item.id, err)
			}
		}

		// 4. Push unvisited neighbors, largest first, so the smallest pops next
		nbs = w.graph.Neighbors(item.id)
		for i = len(nbs) - 1; i >= 0; i-- {
			if !w.res.Visited[nbs[i]] {
				w.stack = append(w.stack, stackItem{id: nbs[i], parent: item.id})
			}
		}
	}

	return nil
}
