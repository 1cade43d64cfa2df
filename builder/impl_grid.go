// Package: eqcolor/builder
//
// impl_grid.go: Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid, 4-neighbourhood.
//   • Cell (r,c) has relative index r*cols + c (row-major).
//   • For each cell emit Right then Bottom neighbour where present.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base := d.reserve(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					d.connect(u, u+1)
				}
				if r+1 < rows {
					d.connect(u, u+cols)
				}
			}
		}

		return nil
	}
}
