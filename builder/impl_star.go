// Package: eqcolor/builder
//
// impl_star.go: Star(n) and Wheel(n) constructors.
//
// Canonical definitions:
//   • Star: hub at relative index 0, leaves 1..n-1 (n ≥ 2).
//   • Wheel: Wₙ = Cₙ₋₁ + hub. Rim at relative indices 0..n-2, hub at n-1 (n ≥ 4).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		hub := d.reserve(n)
		for i := 1; i < n; i++ {
			d.connect(hub, hub+i)
		}

		return nil
	}
}

// Wheel returns a Constructor that builds the wheel W_n: a rim cycle of n-1
// vertices plus a hub joined to every rim vertex.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		// Rim first so it occupies the low indices of this block.
		rimBase := d.n
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodWheel, err)
		}
		hub := d.reserve(1)
		for i := 0; i < n-1; i++ {
			d.connect(hub, rimBase+i)
		}

		return nil
	}
}
