// Package converters moves graphs and matchings in and out of the matching
// package.
//
// What:
//
//   - Document: a labelled undirected graph (Labels + Edges) that every
//     codec produces or consumes; Document.Graph builds a *matching.Graph.
//   - Edge lists: ReadEdgeList / WriteEdgeList, a line-oriented text format.
//     Gzip input is detected transparently by Decompress.
//   - Graphviz DOT: ReadDOT / MarshalDOT via gonum's DOT codec; matched
//     edges are highlighted on output.
//   - gonum: FromGonum / ToGonum adapters for graph.Undirected.
//
// Edge-list format:
//
//	# comment until end of line
//	a b        edge between labels a and b
//	c          declares vertex c (isolated unless it appears later)
//
// Labels are arbitrary whitespace-free tokens; vertex indices are assigned
// by first appearance.
//
// Errors:
//
//   - ErrSyntax       malformed edge-list line or unparsable DOT
//   - ErrDirectedDOT  DOT input is a digraph or contains a -> edge
//   - matching.ErrSelfLoop, matching.ErrVertexOutOfRange  invalid graph content
package converters
