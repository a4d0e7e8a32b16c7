// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • Wₙ = Cₙ₋₁ + hub: a rim cycle on the first n-1 vertices of the block
//     and a hub as the last vertex.
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Emits rim edges first (as Cycle), then spokes hub — rim[i] in index order.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		base, err := addBlock(bp, cfg, MethodWheel, n)
		if err != nil {
			return err
		}

		rim := n - 1
		hub := base + rim
		for i := 0; i < rim; i++ {
			if err = bp.addEdge(MethodWheel, base+i, base+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err = bp.addEdge(MethodWheel, hub, base+i); err != nil {
				return err
			}
		}
		return nil
	}
}
