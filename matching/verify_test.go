package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom/matching"
)

func TestVerify(t *testing.T) {
	// path 0-1-2-3 plus chord 0-2
	g, err := matching.NewGraph(4, []matching.Edge{{0, 1}, {1, 2}, {2, 3}, {0, 2}})
	require.NoError(t, err)

	require.NoError(t, matching.Verify(g, nil))
	require.NoError(t, matching.Verify(g, []matching.Pair{{A: 0, B: 1}, {A: 2, B: 3}}))

	bad := map[string][]matching.Pair{
		"unordered":    {{A: 1, B: 0}},
		"equal":        {{A: 2, B: 2}},
		"out of range": {{A: 0, B: 4}},
		"negative":     {{A: -1, B: 0}},
		"not an edge":  {{A: 1, B: 3}},
		"reused A":     {{A: 0, B: 1}, {A: 0, B: 2}},
		"reused B":     {{A: 0, B: 2}, {A: 1, B: 2}},
	}
	for name, pairs := range bad {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, matching.Verify(g, pairs), matching.ErrInvalidMatching)
		})
	}

	require.ErrorIs(t, matching.Verify(nil, nil), matching.ErrGraphNil)
}

func TestVerifyMaximum(t *testing.T) {
	g, err := matching.NewGraph(4, []matching.Edge{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	// the middle edge alone is maximal but not maximum: 0-1=2-3 augments
	err = matching.VerifyMaximum(g, []matching.Pair{{A: 1, B: 2}})
	require.ErrorIs(t, err, matching.ErrNotMaximum)

	require.NoError(t, matching.VerifyMaximum(g, []matching.Pair{{A: 0, B: 1}, {A: 2, B: 3}}))

	// invalid input is reported before any search
	err = matching.VerifyMaximum(g, []matching.Pair{{A: 0, B: 2}})
	require.ErrorIs(t, err, matching.ErrInvalidMatching)
}

func TestVerifyMaximum_Blossom(t *testing.T) {
	// 5-cycle with pendant 5 on vertex 4: matching {0-1, 2-3} leaves 4 and 5
	// exposed and adjacent.
	edges := append(cycleEdges(5), matching.Edge{U: 4, V: 5})
	g, err := matching.NewGraph(6, edges)
	require.NoError(t, err)

	err = matching.VerifyMaximum(g, []matching.Pair{{A: 0, B: 1}, {A: 2, B: 3}})
	require.ErrorIs(t, err, matching.ErrNotMaximum)

	// perfect
	require.NoError(t, matching.VerifyMaximum(g, []matching.Pair{{A: 0, B: 1}, {A: 2, B: 3}, {A: 4, B: 5}}))

	// 5-4=3-2=1-0 along the cycle
	err = matching.VerifyMaximum(g, []matching.Pair{{A: 1, B: 2}, {A: 3, B: 4}})
	require.ErrorIs(t, err, matching.ErrNotMaximum)
}

// TestVerifyMaximum_IgnoresSolveOptions checks that driver-only options do
// not change the verdict, and that only contraction hooks fire.
func TestVerifyMaximum_IgnoresSolveOptions(t *testing.T) {
	edges := append(cycleEdges(5), matching.Edge{U: 4, V: 5})
	g, err := matching.NewGraph(6, edges)
	require.NoError(t, err)

	augments, contractions := 0, 0
	opts := []matching.Option{
		matching.WithOrder([]int{5, 4, 3, 2, 1, 0}),
		matching.WithGreedyInit(),
		matching.WithOnAugment(func([]int) { augments++ }),
		matching.WithOnContract(func(int, []int) { contractions++ }),
	}

	err = matching.VerifyMaximum(g, []matching.Pair{{A: 0, B: 1}, {A: 2, B: 3}}, opts...)
	require.ErrorIs(t, err, matching.ErrNotMaximum)
	require.NoError(t, matching.VerifyMaximum(g, []matching.Pair{{A: 0, B: 1}, {A: 2, B: 3}, {A: 4, B: 5}}, opts...))

	// an invalid order is not validated here, it is simply unused
	require.NoError(t, matching.VerifyMaximum(g, []matching.Pair{{A: 0, B: 1}, {A: 2, B: 3}, {A: 4, B: 5}},
		matching.WithOrder([]int{0})))

	require.Zero(t, augments)

	// the lone 5-cycle is maximum at two pairs; proving it from the exposed
	// vertex 4 has to contract the cycle
	pentagon, err := matching.NewGraph(5, cycleEdges(5))
	require.NoError(t, err)
	require.NoError(t, matching.VerifyMaximum(pentagon, []matching.Pair{{A: 0, B: 1}, {A: 2, B: 3}}, opts...))
	require.Zero(t, augments)
	require.Positive(t, contractions)
}
