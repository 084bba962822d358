package rip_test

import (
	"testing"

	"github.com/victorsapucaia/molic/builder"
	"github.com/victorsapucaia/molic/rip"
)

// BenchmarkRIP_KTree measures the full pipeline on a random 3-tree.
func BenchmarkRIP_KTree(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.KTree(300, 3))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rip.RIP(g); err != nil {
			b.Fatal(err)
		}
	}
}
