// Package graph provides the immutable, index-based undirected graph consumed
// by the coloring verifiers.
//
// What
//
//   - Vertices are the integers 0..n-1 (0-indexed, as stored internally).
//   - Each vertex keeps a sorted, de-duplicated neighbour slice.
//   - Every edge is mirrored into both endpoints' neighbour slices, so the
//     adjacency relation is always symmetric.
//   - Parallel edges collapse into one (set semantics); self-loops are kept
//     once and reported by Loops().
//
// Why
//
//   - Verification only ever reads the graph, so it is built once by New and
//     exposes no mutators. A *Graph can be shared by reference between
//     goroutines that verify different colorings.
//   - Sorted neighbour slices make iteration deterministic and let the
//     validity checker walk each undirected edge exactly once with the u < v
//     tie-break in O(V + E).
//
// Complexity (V = vertices, E = edges as supplied)
//
//   - New:       O(V + E·log d) time, O(V + E) memory
//   - Neighbors: O(d) (returns a copy)
//   - HasEdge:   O(log d) (binary search)
//   - Edges:     O(V + E)
//
// Errors:
//
//	ErrNegativeVertexCount - n < 0.
//	ErrVertexOutOfRange    - an edge endpoint outside [0, n).
//
// Usage:
//
//	g, err := graph.New(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
//	if err != nil {
//	    // errors.Is(err, graph.ErrVertexOutOfRange) ...
//	}
//	fmt.Println(g.VertexCount(), g.EdgeCount()) // 3 2
package graph
