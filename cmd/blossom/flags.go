// SPDX-License-Identifier: MIT
// Package: blossom/cmd/blossom
//
// flags.go — flags shared by several commands.

package main

import "github.com/urfave/cli/v2"

// Input formats.
const (
	formatEdges = "edges"
	formatDOT   = "dot"
)

// Output formats of the match command.
const (
	outputTable = "table"
	outputPairs = "pairs"
	outputDOT   = "dot"
)

// Search orders of the match command.
const (
	orderNatural = "natural"
	orderReverse = "reverse"
	orderRandom  = "random"
)

var (
	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "input format: \"edges\" (edge list, optionally gzipped) or \"dot\"",
		Value: formatEdges,
	}
	outputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "result format: \"table\", \"pairs\" or \"dot\"",
		Value:   outputTable,
	}
	orderFlag = cli.StringFlag{
		Name:  "order",
		Usage: "order of search roots: \"natural\", \"reverse\" or \"random\"",
		Value: orderNatural,
	}
	greedyFlag = cli.BoolFlag{
		Name:  "greedy",
		Usage: "seed the search with a greedy maximal matching",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for random orders and random graphs",
		Value: 1,
	}
	matchingFlag = cli.PathFlag{
		Name:     "matching",
		Aliases:  []string{"m"},
		Usage:    "file with one matched pair of labels per line",
		Required: true,
	}
)
