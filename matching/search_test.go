package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWalker builds a walker over edges with the given initial mate.
func newTestWalker(t *testing.T, n int, edges []Edge, mate []int) (*walker, *Stats) {
	t.Helper()
	g, err := NewGraph(n, edges)
	require.NoError(t, err)
	o := DefaultOptions()
	var stats Stats
	return newWalker(g, mate, &o, &stats), &stats
}

func TestWalker_AugmentAlongPath(t *testing.T) {
	// 0-1=2-3 with 1=2 matched
	w, _ := newTestWalker(t, 4, []Edge{{0, 1}, {1, 2}, {2, 3}}, []int{Unmatched, 2, 1, Unmatched})

	end, found, err := w.search(0)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, end)

	assert.Equal(t, []int{0, 1, 2, 3}, w.augment(end))
	assert.Equal(t, []int{1, 0, 3, 2}, w.mate)
}

func TestWalker_ContractFiveCycle(t *testing.T) {
	// 0=1 and 2=3 matched, search from 4 closes the 5-cycle at edge 2-1
	w, stats := newTestWalker(t, 5, []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}},
		[]int{1, 0, 3, 2, Unmatched})

	var gotBase int
	var gotMembers []int
	w.opts.OnContract = func(base int, members []int) {
		gotBase = base
		gotMembers = append([]int(nil), members...)
	}

	_, found, err := w.search(4)
	require.NoError(t, err)
	require.False(t, found)

	assert.Equal(t, 1, stats.Contractions)
	assert.Equal(t, 4, gotBase)
	assert.Equal(t, []int{0, 1, 2, 3}, gotMembers)
	assert.Equal(t, []int{4, 4, 4, 4, 4}, w.base)
	// closing edge 2-1: each half now points across it
	assert.Equal(t, 1, w.parent[2])
	assert.Equal(t, 2, w.parent[1])
	for v := range w.inQueue {
		assert.True(t, w.inQueue[v], "vertex %d should be outer", v)
	}
	// contraction never touches the matching
	assert.Equal(t, []int{1, 0, 3, 2, Unmatched}, w.mate)
}

func TestWalker_LCA(t *testing.T) {
	w, _ := newTestWalker(t, 5, []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}},
		[]int{1, 0, 3, 2, Unmatched})
	w.reset(4)
	// tree: 4 -> 3 = 2 and 4 -> 0 = 1
	w.parent[3], w.parent[2] = 4, 3
	w.parent[0], w.parent[1] = 4, 0

	assert.Equal(t, 4, w.lca(2, 1))
	assert.Equal(t, 4, w.lca(1, 2))
	assert.Equal(t, 4, w.lca(4, 2))
	// stamps advance; earlier marks do not leak into later walks
	assert.Equal(t, 3, w.stamp)
}

func TestWalker_LCA_DisjointTrees(t *testing.T) {
	w, _ := newTestWalker(t, 2, nil, []int{Unmatched, Unmatched})
	w.reset(0)
	assert.Equal(t, Unmatched, w.lca(0, 1))
}

func TestWalker_ResetClearsState(t *testing.T) {
	w, _ := newTestWalker(t, 3, []Edge{{0, 1}, {1, 2}}, []int{Unmatched, 2, 1})
	_, found, err := w.search(0)
	require.NoError(t, err)
	require.False(t, found)

	w.reset(1)
	assert.Equal(t, []int{Unmatched, Unmatched, Unmatched}, w.parent)
	assert.Equal(t, []int{0, 1, 2}, w.base)
	assert.Equal(t, []bool{false, true, false}, w.inQueue)
	assert.Equal(t, []int{1}, w.queue)
}
