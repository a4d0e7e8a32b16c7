// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   • Emits every unordered pair i<j in lexicographic order.
//
// Complexity: O(n) vertices + O(n²) edges.
//
// K_n is dense with odd cycles everywhere, a stress input for contraction.

package builder

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		base, err := addBlock(bp, cfg, MethodComplete, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = bp.addEdge(MethodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
