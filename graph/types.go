// Package graph defines the Graph and Edge types and the sentinel errors
// returned while constructing them.
package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNegativeVertexCount indicates New was called with n < 0.
	ErrNegativeVertexCount = errors.New("graph: vertex count is negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
)

// Edge is an undirected connection between two 0-indexed vertices.
// Edges returned by Graph.Edges always satisfy U <= V.
type Edge struct {
	U int
	V int
}

// Graph is an immutable undirected graph over vertices 0..n-1.
//
// adjacency[u] holds the distinct neighbours of u in ascending order.
// edgeCount counts distinct undirected edges, loops included.
type Graph struct {
	adjacency [][]int
	edgeCount int
	loops     int
	maxDegree int
}
