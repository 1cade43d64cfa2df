// Package: eqcolor/builder
//
// impl_path.go: Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2; edges i-(i+1) for i=0..n-2.
//   • Cycle: n ≥ 3; edges i-(i+1)%n for i=0..n-1.
//   • Indices are relative to the reserved block.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		base := d.reserve(n)
		for i := 0; i < n-1; i++ {
			d.connect(base+i, base+i+1)
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base := d.reserve(n)
		for i := 0; i < n; i++ {
			// i == n-1 closes the ring back to 0
			d.connect(base+i, base+(i+1)%n)
		}

		return nil
	}
}
