// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertices labelled "r,c" in row-major order; cfg.idFn is not used so
//     coordinates stay explicit.
//   • For every cell emits the right edge (r,c)—(r,c+1), then the down edge
//     (r,c)—(r+1,c).
//
// Complexity: O(R·C) vertices + O(2·R·C) edges.

package builder

// Grid returns a Constructor that builds an R×C 4-neighbourhood lattice.
func Grid(rows, cols int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		labels := make([]string, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				labels = append(labels, gridVertexID(r, c))
			}
		}
		base, err := addLabelled(bp, MethodGrid, labels)
		if err != nil {
			return err
		}

		cell := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = bp.addEdge(MethodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = bp.addEdge(MethodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
