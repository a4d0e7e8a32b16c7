// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// verify.go — independent checks for externally supplied matchings.

package matching

import "fmt"

// Verify reports whether pairs is a matching of g: every pair is ordered
// (A < B), lies in range, is an edge of g, and no vertex is used twice.
// The first violation is returned wrapped in ErrInvalidMatching.
//
// Complexity: O(n + len(pairs)).
func Verify(g *Graph, pairs []Pair) error {
	if g == nil {
		return ErrGraphNil
	}
	used := make([]bool, g.n)
	for i, p := range pairs {
		switch {
		case p.A >= p.B:
			return fmt.Errorf("%w: pair #%d (%d,%d) is not ordered", ErrInvalidMatching, i, p.A, p.B)
		case p.A < 0 || p.B >= g.n:
			return fmt.Errorf("%w: pair #%d (%d,%d) out of range [0,%d)", ErrInvalidMatching, i, p.A, p.B, g.n)
		case !g.HasEdge(p.A, p.B):
			return fmt.Errorf("%w: pair #%d (%d,%d) is not an edge", ErrInvalidMatching, i, p.A, p.B)
		case used[p.A]:
			return fmt.Errorf("%w: vertex %d matched twice", ErrInvalidMatching, p.A)
		case used[p.B]:
			return fmt.Errorf("%w: vertex %d matched twice", ErrInvalidMatching, p.B)
		}
		used[p.A], used[p.B] = true, true
	}
	return nil
}

// VerifyMaximum checks pairs with Verify and then searches for an
// augmenting path from every exposed vertex. By Berge's theorem the
// matching is maximum iff none exists; otherwise ErrNotMaximum is returned
// naming the exposed root that can still be augmented.
//
// The search never flips anything: pairs is left untouched.
//
// Of the Options only WithContext and WithOnContract take effect. Roots are
// tried in index order, so WithOrder and WithGreedyInit are ignored, and
// OnAugment never fires because no path is applied.
func VerifyMaximum(g *Graph, pairs []Pair, opts ...Option) error {
	if err := Verify(g, pairs); err != nil {
		return err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mate := make([]int, g.n)
	for v := range mate {
		mate[v] = Unmatched
	}
	for _, p := range pairs {
		mate[p.A], mate[p.B] = p.B, p.A
	}

	var stats Stats
	w := newWalker(g, mate, &o, &stats)
	for root := range mate {
		if mate[root] != Unmatched {
			continue
		}
		end, found, err := w.search(root)
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("%w: augmenting path from %d to %d", ErrNotMaximum, root, end)
		}
	}
	return nil
}
