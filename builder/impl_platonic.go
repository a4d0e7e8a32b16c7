// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name, withCenter) and
// Petersen() constructors.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     unknown name → ErrOptionViolation.
//   • Appends shell vertices labelled via cfg.idFn in ascending index order,
//     then emits shell edges in recipe order.
//   • If withCenter, appends one hub vertex after the shell and emits spokes
//     hub — shell[i] in index order. The hub makes the order odd, so the
//     matching can no longer be perfect.
//
// Complexity: O(V+E) for the selected solid (V ≤ 20, E ≤ 30).

package builder

import "fmt"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a central hub connected by spokes.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		sh, ok := platonicShells[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}

		n := sh.order
		if withCenter {
			n++
		}
		base, err := addBlock(bp, cfg, MethodPlatonicSolid, n)
		if err != nil {
			return err
		}
		if err = addChords(bp, MethodPlatonicSolid, base, sh.edges); err != nil {
			return err
		}

		if withCenter {
			hub := base + sh.order
			for i := 0; i < sh.order; i++ {
				if err = bp.addEdge(MethodPlatonicSolid, hub, base+i); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Petersen returns a Constructor for the Petersen graph: the smallest cubic
// bridgeless graph without a Hamiltonian cycle. Every vertex lies on a
// 5-cycle, so matching it exercises blossom handling from every root.
func Petersen() Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		base, err := addBlock(bp, cfg, MethodPetersen, petersenShell.order)
		if err != nil {
			return err
		}
		return addChords(bp, MethodPetersen, base, petersenShell.edges)
	}
}

// addChords emits shell edges shifted by base.
func addChords(bp *Blueprint, method string, base int, chords []chord) error {
	for _, ch := range chords {
		if err := bp.addEdge(method, base+ch.U, base+ch.V); err != nil {
			return err
		}
	}
	return nil
}
