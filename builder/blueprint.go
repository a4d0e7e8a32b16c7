// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// blueprint.go - the accumulator shared by all constructors.
//
// Invariants:
//   - Labels[i] is the label of vertex i; labels are unique.
//   - Every edge joins two distinct existing vertices; no edge repeats.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/matching"
)

// Blueprint is a labelled simple undirected graph under construction.
// Vertices are dense 0-based indices; Labels maps them to readable names.
type Blueprint struct {
	Labels []string
	Edges  []matching.Edge

	index map[string]int
	seen  map[matching.Edge]struct{}
}

func newBlueprint() *Blueprint {
	return &Blueprint{
		index: make(map[string]int),
		seen:  make(map[matching.Edge]struct{}),
	}
}

// VertexCount returns the number of vertices added so far.
func (bp *Blueprint) VertexCount() int { return len(bp.Labels) }

// Index returns the vertex carrying label.
func (bp *Blueprint) Index(label string) (int, bool) {
	v, ok := bp.index[label]
	return v, ok
}

// Graph builds the immutable matching.Graph for this blueprint.
func (bp *Blueprint) Graph(opts ...matching.GraphOption) (*matching.Graph, error) {
	return matching.NewGraph(len(bp.Labels), bp.Edges, opts...)
}

// addVertex appends a vertex with the given label.
// A label already in use yields ErrConstructFailed.
func (bp *Blueprint) addVertex(method, label string) (int, error) {
	if _, dup := bp.index[label]; dup {
		return 0, fmt.Errorf("%s: duplicate vertex label %q: %w", method, label, ErrConstructFailed)
	}
	v := len(bp.Labels)
	bp.Labels = append(bp.Labels, label)
	bp.index[label] = v
	return v, nil
}

// addEdge appends the undirected edge {u, v} unless it is already present.
// Self-loops are a programming error in a constructor and are rejected.
func (bp *Blueprint) addEdge(method string, u, v int) error {
	if u == v {
		return fmt.Errorf("%s: self-loop at %q: %w", method, bp.Labels[u], ErrConstructFailed)
	}
	key := matching.Edge{U: u, V: v}
	if u > v {
		key = matching.Edge{U: v, V: u}
	}
	if _, dup := bp.seen[key]; dup {
		return nil
	}
	bp.seen[key] = struct{}{}
	bp.Edges = append(bp.Edges, matching.Edge{U: u, V: v})
	return nil
}
