package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/eqcolor/graph"
)

// Write emits g in DIMACS edge-list format: one "c" line per comment, the
// "p edge V E" header, then one 1-indexed "e u v" line per distinct edge in
// ascending order. Self-loops are written as "e u u".
// Complexity: O(V + E).
func Write(w io.Writer, g *graph.Graph, comments ...string) error {
	if g == nil {
		return errors.New("dimacs: write: graph is nil")
	}
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		if _, err := fmt.Fprintf(bw, "c %s\n", c); err != nil {
			return fmt.Errorf("dimacs: write: %w", err)
		}
	}
	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", g.VertexCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("dimacs: write: %w", err)
	}

	var werr error
	g.EachEdge(func(u, v int) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bw, "e %d %d\n", u+1, v+1)
	})
	if werr != nil {
		return fmt.Errorf("dimacs: write: %w", werr)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dimacs: write: %w", err)
	}

	return nil
}
