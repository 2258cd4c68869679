// Package dijkstra provides single-source shortest paths over a core.Graph
// whose edge weights are non-negative.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a start node to all
//     nodes in O((V + E) log V), using a min-heap with lazy decrease-key.
//   - ReconstructPath turns the returned predecessor map into a node sequence.
//   - ShortestPath combines both for a single start/target query.
//
// In a social graph built with weight.Euclidean, similar people are joined by
// heavier edges; a "shortest" path here minimizes the sum of those weights, so
// callers that want "closest acquaintances" should derive weights as a
// distance instead (core.UniformView gives plain hop counts).
//
// API reference:
//
//	func Dijkstra(g *core.Graph, start int, opts ...Option) (dist map[int]float64, prev map[int]int, err error)
//	func ReconstructPath(prev map[int]int, start, target int) []int
//	func ShortestPath(g *core.Graph, start, target int, opts ...Option) ([]int, float64, error)
//
//	  - dist: every node of g; math.Inf(1) when unreachable.
//	  - prev: absent key means "no predecessor" (start or unreachable).
//
// Thread safety:
//
//   - Dijkstra only reads g. Concurrent mutation of g during a run is not
//     coordinated; synchronize externally.
package dijkstra
