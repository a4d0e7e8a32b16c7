package converters_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom/converters"
	"github.com/katalvlaran/blossom/matching"
)

const triangleAndIsolated = `# triangle plus an isolated vertex
a b
b c   # trailing comment

d
c a
`

// TestReadEdgeList covers comments, blank lines, declarations and edges.
func TestReadEdgeList(t *testing.T) {
	doc, err := converters.ReadEdgeList(strings.NewReader(triangleAndIsolated))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, doc.Labels)
	assert.Equal(t, []matching.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}, doc.Edges)

	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}, doc.Index())
}

// TestReadEdgeList_Empty yields an empty document.
func TestReadEdgeList_Empty(t *testing.T) {
	doc, err := converters.ReadEdgeList(strings.NewReader("# nothing\n\n"))
	require.NoError(t, err)
	assert.Empty(t, doc.Labels)
	assert.Empty(t, doc.Edges)
}

// TestReadEdgeList_Errors reports the offending line.
func TestReadEdgeList_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"three fields", "a b\nx y z\n", "line 2"},
		{"self-loop", "a a\n", "line 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := converters.ReadEdgeList(strings.NewReader(tc.input))
			require.ErrorIs(t, err, converters.ErrSyntax)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

// TestReadEdgeList_Gzip reads a compressed stream transparently.
func TestReadEdgeList_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(triangleAndIsolated))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	plain, err := converters.ReadEdgeList(strings.NewReader(triangleAndIsolated))
	require.NoError(t, err)
	zipped, err := converters.ReadEdgeList(&buf)
	require.NoError(t, err)
	assert.Equal(t, plain, zipped)
}

// TestReadEdgeList_BrokenGzip surfaces decompression failures.
func TestReadEdgeList_BrokenGzip(t *testing.T) {
	_, err := converters.ReadEdgeList(bytes.NewReader([]byte{0x1f, 0x8b, 0x00}))
	require.Error(t, err)
}

// TestWriteEdgeList_Format checks the exact text for a simple document.
func TestWriteEdgeList_Format(t *testing.T) {
	doc := converters.Document{
		Labels: []string{"x", "y", "z", "w"},
		Edges:  []matching.Edge{{U: 0, V: 1}, {U: 1, V: 2}},
	}
	var buf bytes.Buffer
	require.NoError(t, converters.WriteEdgeList(&buf, doc))
	assert.Equal(t, "x y\ny z\nw\n", buf.String())
}

// TestWriteEdgeList_RoundTrip preserves indices even when edges mention
// vertices out of order.
func TestWriteEdgeList_RoundTrip(t *testing.T) {
	docs := []converters.Document{
		{Labels: []string{"a", "b", "c", "d", "e"}, Edges: []matching.Edge{{U: 2, V: 4}, {U: 0, V: 1}, {U: 3, V: 1}}},
		{Labels: []string{"a", "b"}, Edges: []matching.Edge{{U: 1, V: 0}}},
		{Labels: []string{"p", "q", "r", "s"}, Edges: []matching.Edge{{U: 0, V: 2}, {U: 1, V: 0}, {U: 3, V: 2}}},
		{Labels: []string{"solo"}},
		{},
	}
	for i, doc := range docs {
		var buf bytes.Buffer
		require.NoError(t, converters.WriteEdgeList(&buf, doc), "doc %d", i)
		got, err := converters.ReadEdgeList(&buf)
		require.NoError(t, err, "doc %d", i)
		assert.Equal(t, doc.Labels, got.Labels, "doc %d labels", i)
		assert.Equal(t, doc.Edges, got.Edges, "doc %d edges", i)
	}
}

// TestWriteEdgeList_Errors rejects documents the format cannot express.
func TestWriteEdgeList_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  converters.Document
		want error
	}{
		{"space in label", converters.Document{Labels: []string{"a b"}}, converters.ErrSyntax},
		{"comment in label", converters.Document{Labels: []string{"#a"}}, converters.ErrSyntax},
		{"empty label", converters.Document{Labels: []string{""}}, converters.ErrSyntax},
		{"duplicate label", converters.Document{Labels: []string{"a", "a"}}, converters.ErrSyntax},
		{"out of range", converters.Document{Labels: []string{"a"}, Edges: []matching.Edge{{U: 0, V: 1}}}, matching.ErrVertexOutOfRange},
		{"self-loop", converters.Document{Labels: []string{"a"}, Edges: []matching.Edge{{U: 0, V: 0}}}, matching.ErrSelfLoop},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := converters.WriteEdgeList(&buf, tc.doc)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
