package graph

import (
	"fmt"
	"sort"
)

// New builds a Graph with n vertices from the given 0-indexed edges.
// Duplicate edges, in either orientation, are merged; self-loops are kept once.
// Returns ErrNegativeVertexCount if n < 0 and ErrVertexOutOfRange if any
// endpoint lies outside [0, n). On error no graph is returned.
// Complexity: O(n + E·log d) time, O(n + E) memory.
func New(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeVertexCount, n)
	}
	// Validate every edge before allocating anything.
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) with n=%d", ErrVertexOutOfRange, i, e.U, e.V, n)
		}
	}

	// Collect neighbour sets; a set per vertex absorbs duplicates.
	sets := make([]map[int]struct{}, n)
	for _, e := range edges {
		if sets[e.U] == nil {
			sets[e.U] = make(map[int]struct{})
		}
		sets[e.U][e.V] = struct{}{}
		if e.U == e.V {
			continue
		}
		if sets[e.V] == nil {
			sets[e.V] = make(map[int]struct{})
		}
		sets[e.V][e.U] = struct{}{}
	}

	g := &Graph{adjacency: make([][]int, n)}
	half := 0 // each non-loop edge is seen from both ends
	for u, set := range sets {
		nbrs := make([]int, 0, len(set))
		for v := range set {
			nbrs = append(nbrs, v)
			if v == u {
				g.loops++
			} else {
				half++
			}
		}
		sort.Ints(nbrs)
		g.adjacency[u] = nbrs
		if len(nbrs) > g.maxDegree {
			g.maxDegree = len(nbrs)
		}
	}
	g.edgeCount = half/2 + g.loops

	return g, nil
}

// VertexCount returns the number of vertices n.
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of distinct undirected edges, loops included.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Loops returns the number of distinct self-loops.
func (g *Graph) Loops() int {
	return g.loops
}

// MaxDegree returns the largest neighbour-set size over all vertices.
func (g *Graph) MaxDegree() int {
	return g.maxDegree
}

// Neighbors returns a sorted copy of v's distinct neighbours,
// or nil if v is out of range.
// Complexity: O(d).
func (g *Graph) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}
	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out
}

// Degree returns the number of distinct neighbours of v (a loop counts once),
// or 0 if v is out of range.
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	return len(g.adjacency[v])
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(log d).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	nbrs := g.adjacency[u]
	i := sort.SearchInts(nbrs, v)

	return i < len(nbrs) && nbrs[i] == v
}

// Edges returns every distinct undirected edge once, with U <= V,
// sorted by (U, V).
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	g.EachEdge(func(u, v int) {
		out = append(out, Edge{U: u, V: v})
	})

	return out
}

// EachEdge calls fn once per distinct undirected edge with u <= v, in
// ascending (u, v) order, without allocating.
func (g *Graph) EachEdge(fn func(u, v int)) {
	for u, nbrs := range g.adjacency {
		// nbrs is sorted: skip the prefix below u.
		for _, v := range nbrs[sort.SearchInts(nbrs, u):] {
			fn(u, v)
		}
	}
}

// Density returns 2E/(V(V-1)) over non-loop edges; 0 when V < 2.
func (g *Graph) Density() float64 {
	n := len(g.adjacency)
	if n < 2 {
		return 0
	}
	simple := g.edgeCount - g.loops

	return 2 * float64(simple) / (float64(n) * float64(n-1))
}

func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < len(g.adjacency)
}
