// Package: eqcolor/builder
//
// impl_complete.go: Complete, CompleteBipartite and CompleteMultipartite.
//
// Contract:
//   • Complete(n): n ≥ 1; every unordered pair {i,j}, i<j, once.
//   • CompleteBipartite(n1,n2): sides at relative indices [0,n1) and [n1,n1+n2).
//   • CompleteMultipartite(k,size): k parts of equal size; part p occupies
//     relative indices [p·size, (p+1)·size). Every cross-part pair is an edge.
//
// Determinism: lexicographic (i,j) emission order.
// Complexity: O(n²) time for all three (n = total vertices), O(1) extra space.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		base := d.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.connect(base+i, base+j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		left := d.reserve(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.connect(left+i, right+j)
			}
		}

		return nil
	}
}

// CompleteMultipartite returns a Constructor for the complete k-partite graph
// with every part of the given size (the Turán-style graph K_{size,...,size}).
// Its chromatic number is k and the partition itself is an equitable coloring.
func CompleteMultipartite(k, size int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if k < MinPartitions || size < MinPartitionSize {
			return fmt.Errorf("%s: k=%d, size=%d (k ≥ %d, size ≥ %d): %w",
				MethodCompleteMultipartite, k, size, MinPartitions, MinPartitionSize, ErrTooFewVertices)
		}
		n := k * size
		base := d.reserve(n)
		for i := 0; i < n; i++ {
			// Skip the rest of i's own part.
			for j := (i/size + 1) * size; j < n; j++ {
				d.connect(base+i, base+j)
			}
		}

		return nil
	}
}
