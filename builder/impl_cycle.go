// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n vertices labelled via cfg.idFn in ascending index order.
//   • Emits edges in stable order i — (i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.
//
// Odd n gives the canonical blossom: a maximum matching leaves one vertex exposed.

package builder

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		base, err := addBlock(bp, cfg, MethodCycle, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err = bp.addEdge(MethodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}
