// SPDX-License-Identifier: MIT
// Package: blossom/converters
//
// gonum.go — adapters between Document and gonum's graph interfaces.

package converters

import (
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/blossom/matching"
)

// FromGonum copies g into a Document. Vertex i is the node with the i-th
// smallest gonum ID; ids[i] holds that ID so results can be mapped back.
// Labels come from DOTID when the node provides a non-empty one, otherwise
// the decimal node ID is used.
func FromGonum(g graph.Undirected) (doc Document, ids []int64, err error) {
	if g == nil {
		return Document{}, nil, matching.ErrGraphNil
	}
	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	ids = make([]int64, len(nodes))
	pos := make(map[int64]int, len(nodes))
	doc.Labels = make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
		pos[n.ID()] = i
		doc.Labels[i] = strconv.FormatInt(n.ID(), 10)
		if named, ok := n.(dot.Node); ok && named.DOTID() != "" {
			doc.Labels[i] = named.DOTID()
		}
	}

	for i, n := range nodes {
		nbrs := graph.NodesOf(g.From(n.ID()))
		sort.Slice(nbrs, func(a, b int) bool { return pos[nbrs[a].ID()] < pos[nbrs[b].ID()] })
		for _, m := range nbrs {
			j := pos[m.ID()]
			switch {
			case j == i:
				return Document{}, nil, errors.Wrapf(matching.ErrSelfLoop, "gonum node %d", n.ID())
			case j > i:
				doc.Edges = append(doc.Edges, matching.Edge{U: i, V: j})
			}
		}
	}
	return doc, ids, nil
}

// ToGonum builds a simple.UndirectedGraph whose node IDs are the Document
// vertex indices. Parallel edges collapse.
func ToGonum(doc Document) (*simple.UndirectedGraph, error) {
	if err := doc.validate(); err != nil {
		return nil, err
	}
	g := simple.NewUndirectedGraph()
	for i := range doc.Labels {
		g.AddNode(simple.Node(i))
	}
	for _, e := range doc.Edges {
		g.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}
	return g, nil
}
