package validity_test

import (
	"testing"

	"github.com/katalvlaran/eqcolor/builder"
	"github.com/katalvlaran/eqcolor/coloring"
	"github.com/katalvlaran/eqcolor/validity"
)

// BenchmarkCheck_DSJC125_9 measures Check on a DSJC125.9-like random graph
// (125 vertices, p=0.9) with a 44-color round-robin coloring.
// Complexity: O(V + E)
func BenchmarkCheck_DSJC125_9(b *testing.B) {
	benchCheck(b, 125, 0.9, 44)
}

// BenchmarkCheck_Sparse2000 measures Check on a sparse 2000-vertex graph.
func BenchmarkCheck_Sparse2000(b *testing.B) {
	benchCheck(b, 2000, 0.01, 20)
}

func benchCheck(b *testing.B, n int, p float64, k int) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(n, p))
	if err != nil {
		b.Fatalf("setup BuildGraph failed: %v", err)
	}
	c := make(coloring.Coloring, n)
	for i := range c {
		c[i] = i % k
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := validity.Check(g, c); err != nil {
			b.Fatal(err)
		}
	}
}
