package matching_test

import (
	"math/rand"

	"github.com/katalvlaran/blossom/matching"
)

// bruteForceSize returns the maximum matching size by DP over subsets of
// decided vertices. Only usable for n <= ~18.
func bruteForceSize(n int, edges []matching.Edge) int {
	adj := make([]uint32, n)
	for _, e := range edges {
		adj[e.U] |= 1 << uint(e.V)
		adj[e.V] |= 1 << uint(e.U)
	}
	memo := make(map[uint32]int)
	full := uint32(1)<<uint(n) - 1

	var best func(mask uint32) int
	best = func(mask uint32) int {
		if mask == full {
			return 0
		}
		if r, ok := memo[mask]; ok {
			return r
		}
		i := 0
		for mask&(1<<uint(i)) != 0 {
			i++
		}
		taken := mask | 1<<uint(i)
		r := best(taken) // leave i exposed
		for j := 0; j < n; j++ {
			if adj[i]&(1<<uint(j)) != 0 && taken&(1<<uint(j)) == 0 {
				if c := 1 + best(taken|1<<uint(j)); c > r {
					r = c
				}
			}
		}
		memo[mask] = r
		return r
	}
	return best(0)
}

// randomEdges draws a G(n, p) edge list in shuffled order with random
// orientation.
func randomEdges(rng *rand.Rand, n int, p float64) []matching.Edge {
	var edges []matching.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				if rng.Intn(2) == 0 {
					edges = append(edges, matching.Edge{U: u, V: v})
				} else {
					edges = append(edges, matching.Edge{U: v, V: u})
				}
			}
		}
	}
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	return edges
}

// cycleEdges returns the n-cycle 0-1-…-(n-1)-0.
func cycleEdges(n int) []matching.Edge {
	edges := make([]matching.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = matching.Edge{U: i, V: (i + 1) % n}
	}
	return edges
}

// completeEdges returns K_n.
func completeEdges(n int) []matching.Edge {
	var edges []matching.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, matching.Edge{U: u, V: v})
		}
	}
	return edges
}

// gridEdges returns the r×c lattice with vertex id = row*c + col.
func gridEdges(r, c int) []matching.Edge {
	var edges []matching.Edge
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			id := i*c + j
			if j+1 < c {
				edges = append(edges, matching.Edge{U: id, V: id + 1})
			}
			if i+1 < r {
				edges = append(edges, matching.Edge{U: id, V: id + c})
			}
		}
	}
	return edges
}

// petersenEdges returns the Petersen graph: outer 5-cycle 0..4, spokes to
// 5..9 and the inner pentagram.
func petersenEdges() []matching.Edge {
	edges := cycleEdges(5)
	for i := 0; i < 5; i++ {
		edges = append(edges,
			matching.Edge{U: i, V: i + 5},
			matching.Edge{U: 5 + i, V: 5 + (i+2)%5},
		)
	}
	return edges
}
