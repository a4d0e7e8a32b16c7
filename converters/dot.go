// SPDX-License-Identifier: MIT
// Package: blossom/converters
//
// dot.go — Graphviz DOT input and matching-highlighted DOT output. Input
// walks gonum's DOT syntax tree; output goes through gonum's DOT encoder.

package converters

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	dotfmt "gonum.org/v1/gonum/graph/formats/dot"
	"gonum.org/v1/gonum/graph/formats/dot/ast"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/blossom/matching"
)

// DOTGraphName is the graph ID written by MarshalDOT.
const DOTGraphName = "matching"

// Attributes applied to matched edges by MarshalDOT.
var matchedEdgeAttrs = []encoding.Attribute{
	{Key: "color", Value: "red"},
	{Key: "penwidth", Value: "2"},
}

// dotNode is a gonum node that carries its DOT ID for MarshalDOT.
type dotNode struct {
	id   int64
	name string
}

func (n *dotNode) ID() int64     { return n.id }
func (n *dotNode) DOTID() string { return n.name }

// dotEdge carries DOT attributes in both orientations.
type dotEdge struct {
	from, to graph.Node
	attrs    []encoding.Attribute
}

func (e *dotEdge) From() graph.Node                 { return e.from }
func (e *dotEdge) To() graph.Node                   { return e.to }
func (e *dotEdge) Attributes() []encoding.Attribute { return e.attrs }

func (e *dotEdge) ReversedEdge() graph.Edge {
	return &dotEdge{from: e.to, to: e.from, attrs: e.attrs}
}

// dotReader walks a parsed DOT graph statement by statement, so vertices and
// edges keep the order in which they are written, chains included.
type dotReader struct {
	index  map[string]int
	labels []string
	seen   map[[2]int]struct{}
	edges  []matching.Edge
}

// node interns the raw DOT ID and records it in scope, the node set of the
// enclosing subgraph (nil at top level).
func (r *dotReader) node(id string, scope *[]int) int {
	v, ok := r.index[id]
	if !ok {
		v = len(r.labels)
		r.index[id] = v
		r.labels = append(r.labels, unquoteDOTID(id))
	}
	if scope != nil {
		*scope = appendOnce(*scope, v)
	}
	return v
}

func (r *dotReader) stmts(stmts []ast.Stmt, scope *[]int) error {
	for _, st := range stmts {
		switch st := st.(type) {
		case *ast.NodeStmt:
			r.node(st.Node.ID, scope)
		case *ast.EdgeStmt:
			if err := r.edgeStmt(st, scope); err != nil {
				return err
			}
		case *ast.Subgraph:
			if _, err := r.vertex(st, scope); err != nil {
				return err
			}
		}
	}
	return nil
}

// edgeStmt joins each hop of a chain a -- b -- c from left to right.
func (r *dotReader) edgeStmt(st *ast.EdgeStmt, scope *[]int) error {
	from, err := r.vertex(st.From, scope)
	if err != nil {
		return err
	}
	for hop := st.To; hop != nil; hop = hop.To {
		if hop.Directed {
			return errors.Wrapf(ErrDirectedDOT, "directed edge to %s", hop.Vertex)
		}
		to, err := r.vertex(hop.Vertex, scope)
		if err != nil {
			return err
		}
		for _, u := range from {
			for _, v := range to {
				if err := r.edge(u, v); err != nil {
					return err
				}
			}
		}
		from = to
	}
	return nil
}

// vertex returns the nodes an edge endpoint stands for: one node, or every
// node mentioned inside a subgraph.
func (r *dotReader) vertex(v ast.Vertex, scope *[]int) ([]int, error) {
	switch v := v.(type) {
	case *ast.Node:
		return []int{r.node(v.ID, scope)}, nil
	case *ast.Subgraph:
		var inner []int
		if err := r.stmts(v.Stmts, &inner); err != nil {
			return nil, err
		}
		if scope != nil {
			for _, u := range inner {
				*scope = appendOnce(*scope, u)
			}
		}
		return inner, nil
	default:
		return nil, errors.Wrapf(ErrSyntax, "unknown DOT vertex %T", v)
	}
}

func (r *dotReader) edge(u, v int) error {
	if u == v {
		return errors.Wrapf(matching.ErrSelfLoop, "DOT node %q", r.labels[u])
	}
	k := endsKey(u, v)
	if _, ok := r.seen[k]; ok {
		return nil
	}
	r.seen[k] = struct{}{}
	r.edges = append(r.edges, matching.Edge{U: u, V: v})
	return nil
}

func appendOnce(set []int, v int) []int {
	for _, u := range set {
		if u == v {
			return set
		}
	}
	return append(set, v)
}

// unquoteDOTID strips DOT string quoting. HTML-like IDs stay as written so
// they survive a round trip through MarshalDOT.
func unquoteDOTID(id string) string {
	if len(id) >= 4 && strings.HasPrefix(id, `"<`) && strings.HasSuffix(id, `>"`) {
		return id
	}
	if s, err := strconv.Unquote(id); err == nil {
		return s
	}
	return id
}

// ReadDOT parses a single undirected Graphviz graph. Vertices are numbered
// in order of first appearance and edges are kept in file order, a chain
// a -- b -- c giving a–b before b–c. Repeated edges collapse to one and an
// edge to a subgraph joins every node the subgraph mentions.
func ReadDOT(data []byte) (Document, error) {
	file, err := dotfmt.ParseBytes(data)
	if err != nil {
		return Document{}, errors.Wrapf(ErrSyntax, "parse DOT: %v", err)
	}
	if len(file.Graphs) != 1 {
		return Document{}, errors.Wrapf(ErrSyntax, "want exactly one DOT graph, got %d", len(file.Graphs))
	}
	g := file.Graphs[0]
	if g.Directed {
		return Document{}, errors.Wrapf(ErrDirectedDOT, "digraph %q", g.ID)
	}

	r := &dotReader{
		index: make(map[string]int),
		seen:  make(map[[2]int]struct{}),
	}
	if err := r.stmts(g.Stmts, nil); err != nil {
		return Document{}, err
	}
	return Document{Labels: r.labels, Edges: r.edges}, nil
}

// MarshalDOT renders doc as an undirected DOT graph named DOTGraphName.
// Edges listed in pairs are drawn red and bold. Pairs that are not edges
// of doc are reported as matching.ErrInvalidMatching.
func MarshalDOT(doc Document, pairs []matching.Pair) ([]byte, error) {
	if err := doc.validate(); err != nil {
		return nil, err
	}

	g := simple.NewUndirectedGraph()
	nodes := make([]*dotNode, len(doc.Labels))
	for i, l := range doc.Labels {
		nodes[i] = &dotNode{id: int64(i), name: l}
		g.AddNode(nodes[i])
	}
	byEnds := make(map[[2]int]*dotEdge, len(doc.Edges))
	for _, e := range doc.Edges {
		k := endsKey(e.U, e.V)
		if _, ok := byEnds[k]; ok {
			continue
		}
		de := &dotEdge{from: nodes[e.U], to: nodes[e.V]}
		byEnds[k] = de
		g.SetEdge(de)
	}
	for _, p := range pairs {
		if p.A < 0 || p.A >= len(nodes) || p.B < 0 || p.B >= len(nodes) {
			return nil, errors.Wrapf(matching.ErrInvalidMatching, "pair {%d %d} out of range", p.A, p.B)
		}
		e, ok := byEnds[endsKey(p.A, p.B)]
		if !ok {
			return nil, errors.Wrapf(matching.ErrInvalidMatching, "pair {%d %d} is not an edge", p.A, p.B)
		}
		e.attrs = matchedEdgeAttrs
	}

	out, err := dot.Marshal(g, DOTGraphName, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal DOT")
	}
	return out, nil
}

func endsKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
