// Package mst computes the similarity backbone of a social network: the
// spanning tree (or forest) that keeps every reachable person reachable
// through the heaviest ties. Edge weights are similarities (1/(1+d), 1 for
// identical people), so this is a maximum-weight spanning tree, which is the
// minimum spanning tree over distance 1/w - 1.
package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sociograph/core"
)

// ErrGraphNil indicates a nil graph.
var ErrGraphNil = errors.New("mst: graph is nil")

// ErrEmptyGraph indicates a graph without nodes; no tree can span it.
var ErrEmptyGraph = errors.New("mst: graph has no nodes")

// ErrRootNotFound indicates that the Prim root is not in the graph.
var ErrRootNotFound = fmt.Errorf("mst: root: %w", core.ErrNodeNotFound)

// ErrDisconnected indicates that the graph has several components, so a
// single spanning tree cannot be formed. Use WithForest to span each one.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrUnknownMethod indicates an unsupported Method value.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures Compute.
type Options struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim. Unused by Kruskal. When unset,
	// Prim starts at the first node in insertion order.
	Root    int
	hasRoot bool

	// Forest spans every component instead of failing with ErrDisconnected.
	Forest bool
}

// Option configures Options.
type Option func(*Options)

// WithMethod sets the algorithm; see MethodPrim and MethodKruskal.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the starting node for Prim.
func WithRoot(root int) Option {
	return func(o *Options) {
		o.Root = root
		o.hasRoot = true
	}
}

// WithForest allows disconnected graphs; the result is a spanning forest
// with one tree per component.
func WithForest() Option {
	return func(o *Options) { o.Forest = true }
}

// DefaultOptions returns Kruskal, no explicit root, single tree required.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Result is a spanning tree (or forest).
type Result struct {
	// Edges in the order the algorithm accepted them.
	Edges []core.Edge `json:"edges"`

	// Total is the sum of edge weights.
	Total float64 `json:"total"`

	// Trees is the number of trees; 1 unless Forest was requested.
	Trees int `json:"trees"`
}

// Compute runs the configured MST algorithm.
//
//	– MethodKruskal: Kruskal over all edges.
//	– MethodPrim:    Prim from Root, restarted per component when Forest is set.
//	– Otherwise:     ErrUnknownMethod.
func Compute(g *core.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return kruskal(g, o.Forest)
	case MethodPrim:
		if g == nil {
			return Result{}, ErrGraphNil
		}
		root := 0
		if o.hasRoot {
			root = o.Root
		} else if ids := g.NodeIDs(); len(ids) > 0 {
			root = ids[0]
		}
		return prim(g, root, o.Forest)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// Backbone runs Compute with WithForest plus opts and returns the result as a
// graph: every node of g (attributes copied) joined only by the backbone edges.
func Backbone(g *core.Graph, opts ...Option) (*core.Graph, error) {
	res, err := Compute(g, append([]Option{WithForest()}, opts...)...)
	if err != nil {
		return nil, err
	}

	out := g.CloneEmpty()
	for _, e := range res.Edges {
		if _, err = out.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// check validates g and reports its node IDs in insertion order.
func check(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}

	return ids, nil
}
