// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates an empty Blueprint,
//     resolves cfg, runs cons in order.
//   - Constructors append a fresh block of vertices; blocks never share
//     vertices, so composing K constructors yields their disjoint union.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical blueprints.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import "fmt"

// Constructor appends one topology block to bp using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching bp and return sentinel errors.
//   - Label vertices via cfg.idFn(global index) unless documented otherwise.
//   - Emit edges in a stable, documented order.
type Constructor func(bp *Blueprint, cfg builderConfig) error

// BuildGraph creates an empty Blueprint, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Blueprint, error) {
	bp := newBlueprint()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(bp, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return bp, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)                    C_n, n ≥ 3; edges i–(i+1)%n.
// Path(n)                     P_n, n ≥ 2; edges (i-1)–i.
// Star(n)                     hub = first vertex, n-1 leaves; n ≥ 2.
// Wheel(n)                    C_{n-1} rim + hub = last vertex; n ≥ 4.
// Complete(n)                 K_n, n ≥ 1.
// CompleteBipartite(n1, n2)   K_{n1,n2}; labels "<left><i>", "<right><j>".
// Grid(rows, cols)            4-neighbour lattice; labels "r,c".
// PlatonicSolid(name, hub)    one of the five Platonic shells, optional hub.
// Petersen()                  the Petersen graph (10 vertices, 15 edges).
// RandomSparse(n, p)          G(n, p), requires an RNG for 0 < p < 1.
// RandomRegular(n, d)         random d-regular graph via stub matching.
