// SPDX-License-Identifier: MIT
// Package: blossom/converters
//
// document.go — the codec-neutral graph value and package sentinels.

package converters

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/blossom/matching"
)

var (
	// ErrSyntax marks malformed edge-list lines and unparsable DOT.
	ErrSyntax = errors.New("converters: syntax error")

	// ErrDirectedDOT is returned when a DOT document declares a digraph or
	// uses a directed edge.
	ErrDirectedDOT = errors.New("converters: directed DOT graph")
)

// Document is a labelled undirected graph: vertex i is called Labels[i].
type Document struct {
	Labels []string
	Edges  []matching.Edge
}

// Graph builds the immutable matching.Graph for d.
func (d Document) Graph(opts ...matching.GraphOption) (*matching.Graph, error) {
	return matching.NewGraph(len(d.Labels), d.Edges, opts...)
}

// Index maps every label to its vertex.
func (d Document) Index() map[string]int {
	idx := make(map[string]int, len(d.Labels))
	for i, l := range d.Labels {
		idx[l] = i
	}
	return idx
}

// validate checks edge endpoints against the label table.
func (d Document) validate() error {
	n := len(d.Labels)
	for i, e := range d.Edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return errors.WithStack(&matching.EdgeError{Index: i, Edge: e, Err: matching.ErrVertexOutOfRange})
		}
		if e.U == e.V {
			return errors.WithStack(&matching.EdgeError{Index: i, Edge: e, Err: matching.ErrSelfLoop})
		}
	}
	return nil
}

// labelTable assigns dense indices to labels by first appearance.
type labelTable struct {
	labels []string
	index  map[string]int
}

func newLabelTable() *labelTable {
	return &labelTable{index: make(map[string]int)}
}

func (t *labelTable) intern(label string) int {
	if v, ok := t.index[label]; ok {
		return v
	}
	v := len(t.labels)
	t.labels = append(t.labels, label)
	t.index[label] = v
	return v
}
