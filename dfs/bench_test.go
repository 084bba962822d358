package dfs_test

import (
	"fmt"
	"testing"

	"github.com/victorsapucaia/molic/core"
	"github.com/victorsapucaia/molic/dfs"
)

// BenchmarkReachable_Path measures traversal of a 10k-vertex path.
func BenchmarkReachable_Path(b *testing.B) {
	g := core.NewGraph()
	for i := 1; i < 10000; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Reachable(g, "v0"); err != nil {
			b.Fatal(err)
		}
	}
}
