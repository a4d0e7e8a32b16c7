// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// validators.go — parameter contracts shared by constructors. Each helper
// returns a method-prefixed error wrapping the classifying sentinel.

package builder

import "fmt"

// validateMin ensures got ≥ min for the parameter called name.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}
	return nil
}

// validatePartition checks that both sides of a bipartition are non-empty.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
			method, n1, n2, MinPartition, ErrTooFewVertices)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	return nil
}

// fmtNeedRand reports a missing RNG for method.
func fmtNeedRand(method string) error {
	return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
}
