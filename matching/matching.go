// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// matching.go — the driver: option resolution, one search per exposed
// vertex, path flips and pair extraction.

package matching

import "fmt"

// MaximumMatching validates the input, computes a maximum-cardinality
// matching and returns its pairs (A < B, ordered by A).
//
// An empty graph (vertexCount == 0) yields an empty, non-nil slice.
// Validation errors are those of NewGraph; option errors are those of Solve.
func MaximumMatching(vertexCount int, edges []Edge, opts ...Option) ([]Pair, error) {
	g, err := NewGraph(vertexCount, edges)
	if err != nil {
		return nil, err
	}
	res, err := Solve(g, opts...)
	if err != nil {
		return nil, err
	}
	return res.Pairs, nil
}

// Solve runs Edmonds's blossom algorithm on g.
//
// The driver visits vertices in natural order (or the WithOrder permutation)
// and launches one augmenting-path search from each vertex that is still
// exposed. A successful search flips its path, growing the matching by one.
// A failed search leaves the matching untouched.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for a bad order,
// or the context error if the run is cancelled.
//
// Complexity: O(n) searches, each O(n·(n+m)) in the worst case because
// every contraction re-scans the base map.
// Memory: O(n) besides the graph.
func Solve(g *Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	order, err := resolveOrder(g.n, o.Order)
	if err != nil {
		return nil, err
	}

	mate := make([]int, g.n)
	for v := range mate {
		mate[v] = Unmatched
	}
	res := &Result{Mate: mate}
	if o.GreedyInit {
		res.Stats.GreedyPairs = greedyInit(g, mate, order)
	}
	w := newWalker(g, mate, &o, &res.Stats)

	for _, root := range order {
		if mate[root] != Unmatched {
			continue
		}
		res.Stats.Searches++
		end, found, err := w.search(root)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		o.OnAugment(w.augment(end))
		res.Stats.Augmentations++
	}

	res.Pairs = pairsOf(mate)
	return res, nil
}

// resolveOrder returns order if it is a permutation of 0..n-1, the identity
// if order is nil, and ErrOptionViolation otherwise.
func resolveOrder(n int, order []int) ([]int, error) {
	if order == nil {
		identity := make([]int, n)
		for v := range identity {
			identity[v] = v
		}
		return identity, nil
	}
	if len(order) != n {
		return nil, fmt.Errorf("%w: order has %d entries, graph has %d vertices",
			ErrOptionViolation, len(order), n)
	}
	seen := make([]bool, n)
	for i, v := range order {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: order[%d]=%d out of range", ErrOptionViolation, i, v)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: order[%d]=%d repeated", ErrOptionViolation, i, v)
		}
		seen[v] = true
	}
	return order, nil
}

// pairsOf emits each matched pair once, smaller endpoint first.
func pairsOf(mate []int) []Pair {
	pairs := make([]Pair, 0, len(mate)/2)
	for v, m := range mate {
		if m != Unmatched && v < m {
			pairs = append(pairs, Pair{A: v, B: m})
		}
	}
	return pairs
}
