// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// greedy.go — optional warm start that pairs exposed neighbours before the
// first search.

package matching

// greedyInit walks vertices in order and pairs each exposed vertex with its
// first exposed neighbour. The result is a maximal (not maximum) matching;
// Solve completes it with augmenting-path searches.
//
// Returns the number of pairs placed.
//
// Complexity: O(n + m).
func greedyInit(g *Graph, mate []int, order []int) int {
	placed := 0
	for _, u := range order {
		if mate[u] != Unmatched {
			continue
		}
		for _, v := range g.adj[u] {
			if mate[v] == Unmatched {
				mate[u], mate[v] = v, u
				placed++
				break
			}
		}
	}
	return placed
}
