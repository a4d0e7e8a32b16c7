// Package matching computes a maximum-cardinality matching in a general
// (not necessarily bipartite) undirected graph using Edmonds's blossom
// contraction.
//
// What:
//
//   - MaximumMatching: one-shot entry point over a vertex count and an edge
//     slice, returning the matched pairs.
//   - Solve: runs the algorithm on a prebuilt *Graph and returns a Result
//     with pairs, the mate array and search counters.
//   - Verify / VerifyMaximum: independent checks for a pair set produced
//     elsewhere (validity, and absence of augmenting paths).
//
// How:
//
//   - The driver visits vertices in order and starts one search from every
//     vertex that is still exposed. WithGreedyInit first pairs exposed
//     neighbours greedily so that fewer searches are needed.
//   - A search grows an alternating tree by BFS. An edge between two outer
//     vertices closes an odd cycle (a blossom); the cycle is contracted by
//     re-basing all its members to the lowest common ancestor, and the
//     absorbed vertices become outer themselves.
//   - Reaching an exposed vertex yields an augmenting path; flipping it
//     grows the matching by one. A failed search changes nothing.
//
// Key Types & Constants:
//
//   - Graph: immutable adjacency built by NewGraph (self-loops rejected,
//     duplicates collapsed unless WithStrictEdges).
//   - Edge, Pair: input edge and output matched pair (A < B).
//   - Unmatched: -1, the "no partner / no parent" marker.
//   - Option: functional options for Solve (WithContext, WithOrder,
//     WithGreedyInit, WithOnAugment, WithOnContract).
//   - Result, Stats: output of Solve.
//
// Complexity:
//
//   - Solve: Time O(n²·(n+m)) worst case, Memory O(n+m).
//   - Verify: Time O(n + |pairs|).
//   - VerifyMaximum: Time O(n²·(n+m)) worst case.
//
// Errors:
//
//   - ErrNegativeVertexCount   vertexCount < 0
//   - ErrVertexOutOfRange      edge endpoint outside [0, n) (as *EdgeError)
//   - ErrSelfLoop              edge (v, v) (as *EdgeError)
//   - ErrDuplicateEdge         repeated edge under WithStrictEdges (as *EdgeError)
//   - ErrGraphNil              nil graph passed to Solve or Verify
//   - ErrOptionViolation       WithOrder is not a permutation of 0..n-1
//   - ErrInvalidMatching       Verify rejected the pair set
//   - ErrNotMaximum            VerifyMaximum found an augmenting path
//   - context.Canceled         run cancelled via WithContext
//
// Concurrency:
//
//   - Every call owns its own search arena; a *Graph may be shared between
//     goroutines running Solve concurrently.
package matching
