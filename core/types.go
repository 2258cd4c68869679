// File: types.go
// Role: Node, Edge, EdgeKey, Graph, NodeOption, sentinel errors and NewGraph.
// Invariants:
//   - Undirected and simple: at most one edge per unordered pair, no self-loops.

package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidID indicates a negative node identifier.
	ErrInvalidID = errors.New("core: node ID must be non-negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode was called with an ID already in the graph.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrSelfLoop indicates an edge whose two endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrInvariant indicates that the node, edge and adjacency stores disagree.
	ErrInvariant = errors.New("core: graph invariant violated")
)

// Canonical attribute names understood by Node.Attr.
const (
	AttrActivity        = "activity"
	AttrInteraction     = "interaction"
	AttrConnectionCount = "connection_count"
)

// DefaultEdgeWeight is the weight used when callers have no better value.
const DefaultEdgeWeight = 1.0

// Node is a person in the social network.
//
// ID is immutable once the node is inserted. The neighbor set is owned by the
// Graph and is only reachable through Neighbors; callers never mutate it.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID int

	// Name is a display label; "User {ID}" when not supplied.
	Name string

	// Activity is a free-form activity score (no range enforced).
	Activity float64

	// Interaction counts interactions; integral inputs are stored exactly.
	Interaction float64

	// ConnectionCount is the self-reported connection count.
	ConnectionCount float64

	// Extras holds additional named numeric attributes (loader columns etc.).
	Extras map[string]float64

	// Labels holds additional named non-numeric attributes.
	Labels map[string]string

	neighbors map[int]struct{}
}

// DefaultName returns the synthesized display label for id.
func DefaultName(id int) string {
	return fmt.Sprintf("User %d", id)
}

// Attr resolves an attribute by name: the three canonical features first,
// then Extras. The bool reports whether the name is known for this node.
func (n *Node) Attr(name string) (float64, bool) {
	switch name {
	case AttrActivity:
		return n.Activity, true
	case AttrInteraction:
		return n.Interaction, true
	case AttrConnectionCount:
		return n.ConnectionCount, true
	}
	v, ok := n.Extras[name]

	return v, ok
}

// Neighbors returns the node's neighbor IDs in ascending order.
// The returned slice is a copy.
func (n *Node) Neighbors() []int {
	out := make([]int, 0, len(n.neighbors))
	for id := range n.neighbors {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("Node(id=%d, name=%s)", n.ID, n.Name)
}

// EdgeKey is the canonical key of an undirected edge: Lo < Hi.
type EdgeKey struct {
	Lo int
	Hi int
}

// KeyOf returns the canonical key for the unordered pair {u, v}.
// It fails with ErrSelfLoop when u == v.
func KeyOf(u, v int) (EdgeKey, error) {
	if u == v {
		return EdgeKey{}, fmt.Errorf("%w: %d--%d", ErrSelfLoop, u, v)
	}
	if u > v {
		u, v = v, u
	}

	return EdgeKey{Lo: u, Hi: v}, nil
}

// Edge is an undirected, weighted connection between two distinct nodes.
// U and V are stored canonically (U < V).
type Edge struct {
	U      int
	V      int
	Weight float64
}

// NewEdge builds a canonical edge. It fails with ErrSelfLoop when u == v and
// with ErrBadWeight when w is NaN or infinite.
func NewEdge(u, v int, w float64) (*Edge, error) {
	key, err := KeyOf(u, v)
	if err != nil {
		return nil, err
	}
	if err = checkWeight(w); err != nil {
		return nil, err
	}

	return &Edge{U: key.Lo, V: key.Hi, Weight: w}, nil
}

// Key returns the canonical key of e.
func (e *Edge) Key() EdgeKey { return EdgeKey{Lo: e.U, Hi: e.V} }

// Other returns the endpoint of e opposite to id, and false if id is not an endpoint.
func (e *Edge) Other(id int) (int, bool) {
	switch id {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	}

	return 0, false
}

// String implements fmt.Stringer.
func (e *Edge) String() string {
	return fmt.Sprintf("Edge(%d -- %d, weight=%g)", e.U, e.V, e.Weight)
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: got %v", ErrBadWeight, w)
	}

	return nil
}

// NodeOption configures attributes of a node created by AddNode.
type NodeOption func(*Node)

// WithName sets the display label. An empty name keeps the default.
func WithName(name string) NodeOption {
	return func(n *Node) {
		if name != "" {
			n.Name = name
		}
	}
}

// WithActivity sets the activity score.
func WithActivity(v float64) NodeOption {
	return func(n *Node) { n.Activity = v }
}

// WithInteraction sets the interaction count.
func WithInteraction(v float64) NodeOption {
	return func(n *Node) { n.Interaction = v }
}

// WithConnectionCount sets the connection count.
func WithConnectionCount(v float64) NodeOption {
	return func(n *Node) { n.ConnectionCount = v }
}

// WithExtra stores an additional numeric attribute.
func WithExtra(name string, v float64) NodeOption {
	return func(n *Node) {
		if n.Extras == nil {
			n.Extras = make(map[string]float64)
		}
		n.Extras[name] = v
	}
}

// WithLabel stores an additional non-numeric attribute.
func WithLabel(key, value string) NodeOption {
	return func(n *Node) {
		if n.Labels == nil {
			n.Labels = make(map[string]string)
		}
		n.Labels[key] = value
	}
}

// NodeUpdate carries the fields UpdateNode should overwrite; nil fields are left unchanged.
type NodeUpdate struct {
	Name            *string
	Activity        *float64
	Interaction     *float64
	ConnectionCount *float64
}

// Graph is the in-memory social network.
//
// nodes, edges and adjacency are always consistent with each other:
//   - every edge key (u,v) has u and v in nodes, v ∈ adjacency[u], u ∈ adjacency[v];
//   - every adjacency key is a node;
//   - no self-loops;
//   - node.neighbors is the same set object as adjacency[node.ID].
//
// order keeps node IDs in insertion order, the natural enumeration order
// used by algorithms that seed from "every node".
type Graph struct {
	mu sync.RWMutex // guards all stores below

	nodes     map[int]*Node
	edges     map[EdgeKey]*Edge
	adjacency map[int]map[int]struct{}
	order     []int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int]*Node),
		edges:     make(map[EdgeKey]*Edge),
		adjacency: make(map[int]map[int]struct{}),
	}
}

// GraphStats is a read-only snapshot of graph size and degree distribution.
type GraphStats struct {
	Nodes     int     `json:"nodes"`
	Edges     int     `json:"edges"`
	Density   float64 `json:"density"`
	MinDegree int     `json:"min_degree"`
	MaxDegree int     `json:"max_degree"`
	AvgDegree float64 `json:"avg_degree"`
}
