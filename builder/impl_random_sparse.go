// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n, p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Appends vertices via cfg.idFn in ascending index order.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order is i asc, then j asc (j > i); fixed seed ⇒ fixed graph.

package builder

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		rng := cfg.rng
		if rng == nil && p > MinProbability && p < MaxProbability {
			return fmtNeedRand(MethodRandomSparse)
		}

		base, err := addBlock(bp, cfg, MethodRandomSparse, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var take bool
				if rng == nil {
					take = p == MaxProbability
				} else {
					take = rng.Float64() < p
				}
				if !take {
					continue
				}
				if err = bp.addEdge(MethodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
