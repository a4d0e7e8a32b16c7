// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`, prefixed with the
//     constructor name ("Cycle: n=2 < min=3: builder: parameter too small").
//   • Constructors and ID schemes never panic at runtime; a scheme that
//     runs out of labels reports ErrOptionViolation.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a topology could not be produced without
// breaking invariants: duplicate labels across blocks, exhausted
// stub-matching retries, or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid parameter value that is not a size,
// such as an unknown Platonic solid or a vertex index outside the label
// scheme's domain.
var ErrOptionViolation = errors.New("builder: invalid option value")
