// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// graph.go — immutable undirected adjacency over 0-indexed vertices.
//
// Determinism:
//   - Neighbors(v) lists neighbors in first-appearance order of the input edges.
//   - Edges() is normalized (U < V) and sorted by (U, V).
//
// Concurrency:
//   - A *Graph is never mutated after NewGraph returns; share it freely.

package matching

import (
	"fmt"
	"sort"
)

// Graph is an immutable simple undirected graph on vertices 0..n-1.
type Graph struct {
	n     int
	adj   [][]int
	edges []Edge
	index map[Edge]struct{}
}

// NewGraph validates edges and builds the adjacency.
//
// Validation:
//   - vertexCount < 0            → ErrNegativeVertexCount
//   - endpoint outside [0, n)    → *EdgeError wrapping ErrVertexOutOfRange
//   - U == V                     → *EdgeError wrapping ErrSelfLoop
//   - repeated edge, strict mode → *EdgeError wrapping ErrDuplicateEdge
//
// Without WithStrictEdges a repeated edge (in either orientation) is
// collapsed into the first occurrence.
//
// Complexity: O(n + m) time and space.
func NewGraph(vertexCount int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, vertexCount)
	}
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		n:     vertexCount,
		adj:   make([][]int, vertexCount),
		edges: make([]Edge, 0, len(edges)),
		index: make(map[Edge]struct{}, len(edges)),
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= vertexCount || e.V < 0 || e.V >= vertexCount {
			return nil, &EdgeError{Index: i, Edge: e, Err: ErrVertexOutOfRange}
		}
		if e.U == e.V {
			return nil, &EdgeError{Index: i, Edge: e, Err: ErrSelfLoop}
		}
		key := e.normalized()
		if _, dup := g.index[key]; dup {
			if cfg.strict {
				return nil, &EdgeError{Index: i, Edge: e, Err: ErrDuplicateEdge}
			}
			continue
		}
		g.index[key] = struct{}{}
		g.edges = append(g.edges, key)
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
	}
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}
		return g.edges[i].V < g.edges[j].V
	})

	return g, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Neighbors returns the neighbors of v, or nil if v is out of range.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	return g.adj[v]
}

// Degree returns the number of neighbors of v (0 if out of range).
func (g *Graph) Degree(v int) int { return len(g.Neighbors(v)) }

// HasEdge reports whether the undirected edge {u, v} exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.index[Edge{U: u, V: v}.normalized()]
	return ok
}

// Edges returns a copy of the normalized, sorted edge list.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}
