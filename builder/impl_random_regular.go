// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Model:
//   • d-regular simple graph via stub matching: every vertex contributes d
//     stubs, the stub list is shuffled and consecutive stubs are paired.
//     A pairing with a loop or a repeated pair is rejected and reshuffled,
//     up to maxStubMatchingAttempts times.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Nothing is appended to the blueprint unless a pairing is accepted.
//   • Exhausted attempts → ErrConstructFailed.
//
// Complexity: O(n·d) per attempt; attempts are bounded.

package builder

import "fmt"

// RandomRegular returns a Constructor that builds a random d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmtNeedRand(MethodRandomRegular)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		pairs, ok := pairStubs(cfg, stubs)
		if !ok {
			return fmt.Errorf("%s: failed to construct after %d attempts: %w",
				MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
		}

		base, err := addBlock(bp, cfg, MethodRandomRegular, n)
		if err != nil {
			return err
		}
		return addChords(bp, MethodRandomRegular, base, pairs)
	}
}

// pairStubs shuffles stubs until consecutive pairs form a simple graph.
func pairStubs(cfg builderConfig, stubs []int) ([]chord, bool) {
	pairs := make([]chord, 0, len(stubs)/2)
	seen := make(map[chord]struct{}, len(stubs)/2)
	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		pairs = pairs[:0]
		for k := range seen {
			delete(seen, k)
		}
		valid := true
		for i := 0; i+1 < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := chord{U: u, V: v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
			pairs = append(pairs, key)
		}
		if valid {
			return pairs, true
		}
	}
	return nil, false
}
