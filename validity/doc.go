// Package validity checks whether a vertex coloring is proper: no edge joins
// two vertices of the same color.
//
// What
//
//   - Check(g, c) walks every distinct undirected edge exactly once, using the
//     tie-break u < v over the graph's sorted neighbour lists.
//   - Each monochromatic edge becomes a Violation reported in 1-indexed form
//     (U+1, V+1, Color), matching DIMACS vertex numbering.
//   - Violations are collected exhaustively; the checker never stops at the
//     first failure. Result.Preview(n) is a presentation helper only.
//   - Self-loops (u,u) are not visited by the u < v tie-break and therefore
//     never produce violations.
//
// Preconditions
//
//	len(c) must equal g.VertexCount(). A mismatch returns a
//	*LengthMismatchError (wrapping ErrLengthMismatch) carrying both lengths;
//	the checker never truncates or pads the coloring.
//
// Complexity (V = vertices, E = distinct edges)
//
//   - Time:   O(V + E)
//   - Memory: O(k) for k violations
//
// Usage
//
//	res, err := validity.Check(g, c)
//	var lm *validity.LengthMismatchError
//	if errors.As(err, &lm) {
//	    fmt.Println("expected", lm.Expected, "got", lm.Actual)
//	}
//	if !res.Valid {
//	    fmt.Println(res.Count(), "violations, first:", res.Preview(5))
//	}
package validity
