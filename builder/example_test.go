package builder_test

import (
	"fmt"

	"github.com/katalvlaran/eqcolor/builder"
)

// ExampleBuildGraph builds a DSJC-style random graph and a complete
// tripartite graph in one call.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomSparse(5, 1), // K5, no randomness needed for p=1
		builder.CompleteMultipartite(3, 2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// vertices: 11
	// edges: 22
}
