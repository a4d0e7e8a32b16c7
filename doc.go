// Package blossom finds maximum-cardinality matchings in general undirected
// graphs with Edmonds' blossom algorithm, odd cycles included.
//
// 🚀 What is blossom?
//
//	A small, dependency-light toolkit built around one exact algorithm:
//		• matching:   Solve / MaximumMatching, Verify / VerifyMaximum, hooks
//		• builder:    deterministic fixtures (cycles, grids, Platonic solids,
//		              Petersen, random sparse and random regular graphs)
//		• converters: edge lists (plain or gzip), Graphviz DOT, gonum graphs
//		• logger:     leveled loggers shared by the command-line tools
//		• cmd/blossom: match, generate, verify and profile from the shell
//
// ✨ Why blossom?
//
//   - Exact: every result is a maximum matching, checked against brute force
//   - Deterministic: the same graph and search order give the same pairs
//   - Observable: OnAugment / OnContract hooks instead of library logging
//   - Safe to share: graphs are immutable, every Solve owns its own state
//
// Layout:
//
//	matching/    — Graph, Solve, Verify, the blossom search
//	builder/     — BuildGraph + Constructor fixtures with known matching numbers
//	converters/  — Document, edge-list / DOT codecs, gonum adapters
//	logger/      — op/go-logging setup and the --log flag
//	cmd/blossom/ — urfave/cli front end
//
// Quick ASCII example:
//
//	      a
//	    ╱   ╲
//	   e     b
//	   │     │
//	   d ─── c
//
// The 5-cycle a-b-c-d-e has matching number 2: {a-b, c-d} leaves e exposed,
// and no augmenting path exists because every alternating walk from e closes
// an odd cycle that the search contracts into a blossom.
//
//	go get github.com/katalvlaran/blossom/matching
package blossom
