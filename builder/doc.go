// Package builder assembles deterministic graph fixtures for the matching
// package: classic topologies with known maximum-matching sizes, composed
// into a single labelled Blueprint.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): runs constructors in order on one
//     Blueprint; each constructor appends a disjoint block.
//     – Blueprint: Labels + Edges, convertible with Graph() into a
//     *matching.Graph.
//   - Constructors (known matching numbers ν):
//     – Cycle(n)             ν = ⌊n/2⌋, odd n is a single blossom.
//     – Path(n)              ν = ⌊n/2⌋.
//     – Star(n)              ν = 1.
//     – Wheel(n)             ν = ⌊n/2⌋.
//     – Complete(n)          ν = ⌊n/2⌋.
//     – CompleteBipartite    ν = min(n1, n2).
//     – Grid(r, c)           ν = ⌊rc/2⌋.
//     – PlatonicSolid        perfect without hub.
//     – Petersen             perfect (ν = 5).
//     – RandomSparse(n, p), RandomRegular(n, d): seeded random inputs.
//   - Vertex label schemes (IDFn), each returning ErrOptionViolation for an
//     index it cannot label:
//     – DefaultIDFn, SymbolIDFn (26 labels), ExcelColumnIDFn,
//     AlphanumericIDFn, HexIDFn, SymbolNumberIDFn(prefix).
//   - Options: WithIDScheme, WithSeed, WithRand, WithPartitionPrefix,
//     WithSymbolIDs and WithPrefixedIDs.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     Labels and Edges.
//   - All-or-nothing: a failing constructor aborts BuildGraph and no partial
//     Blueprint is returned.
//   - Structured errors: "<Method>: detail: sentinel", branch with errors.Is.
package builder
