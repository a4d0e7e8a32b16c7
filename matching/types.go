// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// types.go — sentinel errors, edge/pair value types, functional options and
// the Result returned by Solve.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Per-edge validation failures are reported as *EdgeError, which unwraps
//     to the sentinel that classifies them.
//   - Context cancellation is surfaced unchanged (ctx.Err()).

package matching

import (
	"context"
	"errors"
	"fmt"
)

// Unmatched marks an exposed vertex in mate arrays and an unset parent in
// per-search arrays.
const Unmatched = -1

// Sentinel errors for matching.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to Solve or Verify.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrNegativeVertexCount indicates vertexCount < 0.
	ErrNegativeVertexCount = errors.New("matching: negative vertex count")

	// ErrVertexOutOfRange indicates an endpoint outside [0, vertexCount).
	ErrVertexOutOfRange = errors.New("matching: vertex out of range")

	// ErrSelfLoop indicates an edge (v, v). Self-loops can never be part of a
	// matching and are rejected at construction.
	ErrSelfLoop = errors.New("matching: self-loop not allowed")

	// ErrDuplicateEdge indicates a repeated undirected edge under WithStrictEdges.
	ErrDuplicateEdge = errors.New("matching: duplicate edge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")

	// ErrInvalidMatching is returned by Verify for a pair set that is not a matching of g.
	ErrInvalidMatching = errors.New("matching: invalid matching")

	// ErrNotMaximum is returned by VerifyMaximum when an augmenting path exists.
	ErrNotMaximum = errors.New("matching: matching is not maximum")
)

// Edge is an undirected input edge between vertices U and V.
type Edge struct {
	U, V int
}

// normalized returns the edge with U <= V.
func (e Edge) normalized() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// Pair is a matched edge with A < B.
type Pair struct {
	A, B int
}

// EdgeError reports an invalid input edge together with its position in the
// caller's slice.
type EdgeError struct {
	Index int
	Edge  Edge
	Err   error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("edge #%d (%d,%d): %v", e.Index, e.Edge.U, e.Edge.V, e.Err)
}

// Unwrap exposes the classifying sentinel.
func (e *EdgeError) Unwrap() error { return e.Err }

// GraphOption configures NewGraph.
type GraphOption func(*graphConfig)

type graphConfig struct {
	strict bool
}

// WithStrictEdges makes NewGraph reject repeated undirected edges with
// ErrDuplicateEdge. By default duplicates collapse into a single edge.
func WithStrictEdges() GraphOption {
	return func(c *graphConfig) { c.strict = true }
}

// Option configures a Solve run via functional arguments.
// An invalid order is surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a matching run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Order, if non-nil, is the vertex iteration order of the driver.
	// It must be a permutation of 0..n-1.
	Order []int

	// GreedyInit seeds the matching with a greedy maximal matching before
	// the first search. The size of the result does not change.
	GreedyInit bool

	// OnAugment is called with each augmenting path (root first) right
	// after it has been flipped. The slice is reused between calls.
	OnAugment func(path []int)

	// OnContract is called after a blossom is contracted, with the new base
	// and the vertices re-based onto it (the base itself is not listed).
	// The slice is reused between calls.
	OnContract func(base int, members []int)
}

// DefaultOptions returns Options with a background context, natural vertex
// order and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Order:      nil,
		GreedyInit: false,
		OnAugment:  func([]int) {},
		OnContract: func(int, []int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder sets the order in which the driver starts searches. The order
// decides which maximum matching is produced, never its size.
// The slice is validated against the graph when Solve runs.
func WithOrder(order []int) Option {
	return func(o *Options) {
		o.Order = append([]int(nil), order...)
	}
}

// WithGreedyInit pairs exposed neighbours greedily, in search order,
// before any augmenting-path search runs. Dense graphs then need far fewer
// searches. Seeded pairs are never reported through OnAugment.
func WithGreedyInit() Option {
	return func(o *Options) {
		o.GreedyInit = true
	}
}

// WithOnAugment registers a callback receiving every augmenting path.
func WithOnAugment(fn func(path []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithOnContract registers a callback fired after each blossom contraction.
func WithOnContract(fn func(base int, members []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnContract = fn
		}
	}
}

// Stats counts the work done by one Solve run.
type Stats struct {
	// Searches is the number of augmenting-path searches started.
	Searches int
	// Augmentations is the number of successful searches.
	Augmentations int
	// Contractions is the number of blossoms contracted across all searches.
	Contractions int
	// GreedyPairs is the number of pairs placed by WithGreedyInit.
	// GreedyPairs + Augmentations equals the matching size.
	GreedyPairs int
}

// Result holds the outcome of Solve.
//   - Pairs: matched pairs (A < B), ordered by A.
//   - Mate:  mate[v] is v's partner or Unmatched.
//   - Stats: search counters.
type Result struct {
	Pairs []Pair
	Mate  []int
	Stats Stats
}

// Size returns the matching cardinality.
func (r *Result) Size() int { return len(r.Pairs) }

// IsPerfect reports whether every vertex is matched.
func (r *Result) IsPerfect() bool { return 2*len(r.Pairs) == len(r.Mate) }

// Partner returns v's partner, or (Unmatched, false) when v is exposed or
// out of range.
func (r *Result) Partner(v int) (int, bool) {
	if v < 0 || v >= len(r.Mate) || r.Mate[v] == Unmatched {
		return Unmatched, false
	}
	return r.Mate[v], true
}

// Unmatched returns the exposed vertices in ascending order.
func (r *Result) Unmatched() []int {
	exposed := make([]int, 0, len(r.Mate)-2*len(r.Pairs))
	for v, m := range r.Mate {
		if m == Unmatched {
			exposed = append(exposed, v)
		}
	}
	return exposed
}
