// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n vertices labelled via cfg.idFn in ascending index order.
//   - Emits edges (i-1) — i for i=1..n-1.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		base, err := addBlock(bp, cfg, MethodPath, n)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = bp.addEdge(MethodPath, base+i-1, base+i); err != nil {
				return err
			}
		}
		return nil
	}
}
