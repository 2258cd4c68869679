// Package sociograph is an in-memory toolkit for modeling and analyzing
// social networks: people are nodes carrying behavioral attributes, and
// friendships are undirected edges weighted by how similar two people are.
//
// Layout:
//
//	core/        — Graph, Node, Edge and the mutation API that keeps them consistent
//	weight/      — edge weight strategies derived from node attributes
//	loader/      — CSV and JSON readers, JSON writer
//	builder/     — synthetic network generators (path, cycle, star, complete, G(n,p))
//	bfs/, dfs/   — traversals with deterministic ascending-ID neighbor order
//	dijkstra/    — single-source shortest paths and path reconstruction
//	astar/       — goal-directed shortest path (zero heuristic by default)
//	components/  — connected components
//	centrality/  — degree centrality ranking
//	coloring/    — Welsh–Powell greedy coloring
//	mst/         — maximum-similarity spanning tree/forest (Kruskal, Prim)
//	config/      — YAML + environment configuration and logger construction
//	cmd/sociograph — the CLI
//
// Quick start:
//
//	g, err := loader.LoadFile("network.csv")
//	if err != nil { … }
//	dist, prev, err := dijkstra.Dijkstra(g, 1)
//	path := dijkstra.ReconstructPath(prev, 1, 5)
//
// Algorithms only read the graph; every result is deterministic for a given
// graph and insertion order.
package sociograph
