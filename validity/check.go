package validity

import (
	"github.com/katalvlaran/eqcolor/coloring"
	"github.com/katalvlaran/eqcolor/graph"
)

// Check reports whether c is a proper coloring of g, listing every violating
// edge. Returns ErrNilGraph for a nil graph and a *LengthMismatchError when
// len(c) != g.VertexCount(); in both cases the Result is nil.
// Check does not modify g or c, so repeated calls yield identical results.
func Check(g *graph.Graph, c coloring.Coloring) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if n := g.VertexCount(); len(c) != n {
		return nil, &LengthMismatchError{Expected: n, Actual: len(c)}
	}

	res := &Result{Violations: []Violation{}}
	g.EachEdge(func(u, v int) {
		// EachEdge yields u <= v; the strict tie-break drops self-loops.
		if u == v {
			return
		}
		res.EdgesChecked++
		if c[u] == c[v] {
			res.Violations = append(res.Violations, Violation{U: u + 1, V: v + 1, Color: c[u]})
		}
	})
	res.Valid = len(res.Violations) == 0

	return res, nil
}
