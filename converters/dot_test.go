package converters_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom/converters"
	"github.com/katalvlaran/blossom/matching"
)

// TestReadDOT keeps first-appearance order and collapses repeated edges.
func TestReadDOT(t *testing.T) {
	src := `graph g {
	a -- b;
	b -- c -- a;
	d [shape=box];
	a -- b;
}`
	doc, err := converters.ReadDOT([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, doc.Labels)
	assert.Equal(t, []matching.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}, doc.Edges)
}

// TestReadDOT_ChainOrder keeps every hop of an edge chain in written order.
func TestReadDOT_ChainOrder(t *testing.T) {
	doc, err := converters.ReadDOT([]byte(`graph { e -- d -- c -- b -- a }`))
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, doc.Labels)
	assert.Equal(t, []matching.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}, doc.Edges)
}

// TestReadDOT_Subgraph joins an endpoint to every node of a subgraph.
func TestReadDOT_Subgraph(t *testing.T) {
	doc, err := converters.ReadDOT([]byte(`graph { a -- { b c } -- d; subgraph s { e -- f } }`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, doc.Labels)
	assert.Equal(t, []matching.Edge{
		{U: 0, V: 1}, {U: 0, V: 2},
		{U: 1, V: 3}, {U: 2, V: 3},
		{U: 4, V: 5},
	}, doc.Edges)
}

// TestReadDOT_QuotedIDs unquotes node IDs.
func TestReadDOT_QuotedIDs(t *testing.T) {
	doc, err := converters.ReadDOT([]byte(`graph { "0,0" -- "0,1" }`))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1"}, doc.Labels)
}

// TestReadDOT_Errors maps bad inputs to sentinels.
func TestReadDOT_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"digraph", `digraph d { a -> b }`, converters.ErrDirectedDOT},
		{"arrow in graph", `graph { a -- b -> c }`, converters.ErrDirectedDOT},
		{"loop in subgraph", `graph { a -- { b a } }`, matching.ErrSelfLoop},
		{"syntax", `graph { a -- }`, converters.ErrSyntax},
		{"two graphs", `graph { a } graph { b }`, converters.ErrSyntax},
		{"self-loop", `graph { a -- a }`, matching.ErrSelfLoop},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := converters.ReadDOT([]byte(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestMarshalDOT highlights matched edges and reads back to the same graph.
func TestMarshalDOT(t *testing.T) {
	doc := converters.Document{
		Labels: []string{"v0", "v1", "v2", "v3", "v4"},
		Edges:  []matching.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0}},
	}
	g, err := doc.Graph()
	require.NoError(t, err)
	res, err := matching.Solve(g)
	require.NoError(t, err)

	out, err := converters.MarshalDOT(doc, res.Pairs)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, converters.DOTGraphName)
	assert.Contains(t, text, "--")
	assert.Equal(t, 2, strings.Count(text, "penwidth"), text)

	back, err := converters.ReadDOT(out)
	require.NoError(t, err)
	assert.Equal(t, doc.Labels, back.Labels)
	bg, err := back.Graph()
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), bg.Edges())
}

// TestMarshalDOT_Errors rejects pairs that are not edges.
func TestMarshalDOT_Errors(t *testing.T) {
	doc := converters.Document{
		Labels: []string{"a", "b", "c"},
		Edges:  []matching.Edge{{U: 0, V: 1}},
	}
	_, err := converters.MarshalDOT(doc, []matching.Pair{{A: 1, B: 2}})
	require.ErrorIs(t, err, matching.ErrInvalidMatching)

	_, err = converters.MarshalDOT(doc, []matching.Pair{{A: 0, B: 7}})
	require.ErrorIs(t, err, matching.ErrInvalidMatching)

	_, err = converters.MarshalDOT(converters.Document{Labels: []string{"a"}, Edges: []matching.Edge{{U: 0, V: 3}}}, nil)
	require.ErrorIs(t, err, matching.ErrVertexOutOfRange)
}
