package dfs_test

import (
	"testing"

	"github.com/katalvlaran/sociograph/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a linear chain of 10,000 nodes.
// The graph is built once; only traversal time is measured.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}
