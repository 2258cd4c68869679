// Package dfs defines types and options for depth-first search traversal.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sociograph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist in the graph.
	ErrStartNotFound = fmt.Errorf("dfs: start node: %w", core.ErrNodeNotFound)
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// OnVisit, if non-nil, is invoked when a node is popped and marked visited.
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// FullTraversal, if true, restarts from every unvisited node in insertion
	// order once the start node's component is exhausted.
	FullTraversal bool
}

// DefaultOptions returns Options with no hook and single-source traversal.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFullTraversal returns an Option that enables forest traversal.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they were visited (pre-order).
	Order []int

	// Parent maps each node to the node whose expansion pushed it first
	// visited. Roots have no entry.
	Parent map[int]int

	// Visited flags which nodes were reached.
	Visited map[int]bool
}
