// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first vertex of the block; leaves follow in index order.
//   - Emits spokes hub — leaf[i] by increasing leaf index.
//
// Complexity: O(n) vertices + O(n-1) edges.
//
// Any maximum matching of a star has exactly one pair.

package builder

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		hub, err := addBlock(bp, cfg, MethodStar, n)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = bp.addEdge(MethodStar, hub, hub+i); err != nil {
				return err
			}
		}
		return nil
	}
}
