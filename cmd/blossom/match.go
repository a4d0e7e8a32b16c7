// SPDX-License-Identifier: MIT
// Package: blossom/cmd/blossom
//
// match.go — the match command: read a graph, solve, print the matching.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/blossom/converters"
	"github.com/katalvlaran/blossom/logger"
	"github.com/katalvlaran/blossom/matching"
)

// MatchCommand computes a maximum matching of a graph file.
var MatchCommand = cli.Command{
	Action:    matchAction,
	Name:      "match",
	Usage:     "compute a maximum-cardinality matching",
	ArgsUsage: "<graph-file|->",
	Flags: []cli.Flag{
		&formatFlag,
		&outputFlag,
		&orderFlag,
		&greedyFlag,
		&seedFlag,
		&logger.LogLevelFlag,
	},
}

func matchAction(c *cli.Context) error {
	if c.NArg() > 1 {
		return errors.Newf("match: want at most one graph file, got %d", c.NArg())
	}
	log := logger.NewLoggerTo(c.App.ErrWriter, c.String(logger.LogLevelFlag.Name), "Blossom-Match")

	doc, err := loadDocument(c, c.Args().First(), c.String(formatFlag.Name))
	if err != nil {
		return err
	}
	g, err := doc.Graph()
	if err != nil {
		return errors.Wrap(err, "match: invalid graph")
	}
	order, err := searchOrder(c.String(orderFlag.Name), g.VertexCount(), c.Int64(seedFlag.Name))
	if err != nil {
		return err
	}
	log.Infof("graph has %d vertices and %d edges", g.VertexCount(), g.EdgeCount())

	opts := []matching.Option{
		matching.WithContext(c.Context),
		matching.WithOrder(order),
		matching.WithOnAugment(func(path []int) {
			log.Debugf("augment %s", labelPath(doc, path))
		}),
		matching.WithOnContract(func(base int, members []int) {
			log.Debugf("contract blossom at %s over %s", doc.Labels[base], labelPath(doc, members))
		}),
	}
	if c.Bool(greedyFlag.Name) {
		opts = append(opts, matching.WithGreedyInit())
	}
	res, err := matching.Solve(g, opts...)
	if err != nil {
		return errors.Wrap(err, "match")
	}
	log.Noticef("matched %d pairs (%d greedy, %d searches, %d augmentations, %d contractions)",
		res.Size(), res.Stats.GreedyPairs, res.Stats.Searches, res.Stats.Augmentations, res.Stats.Contractions)

	return writeMatching(c.App.Writer, c.String(outputFlag.Name), doc, res)
}

// searchOrder turns an order name into a permutation for matching.WithOrder.
// A nil result selects the natural order.
func searchOrder(name string, n int, seed int64) ([]int, error) {
	switch name {
	case orderNatural, "":
		return nil, nil
	case orderReverse:
		order := make([]int, n)
		for i := range order {
			order[i] = n - 1 - i
		}
		return order, nil
	case orderRandom:
		return rand.New(rand.NewSource(seed)).Perm(n), nil
	default:
		return nil, errors.Newf("unknown search order %q", name)
	}
}

// writeMatching prints res in the requested output format.
func writeMatching(w io.Writer, format string, doc converters.Document, res *matching.Result) error {
	switch format {
	case outputTable:
		printMatchingTable(w, doc, res)
		return nil
	case outputPairs:
		for _, p := range res.Pairs {
			if _, err := fmt.Fprintf(w, "%s %s\n", doc.Labels[p.A], doc.Labels[p.B]); err != nil {
				return errors.Wrap(err, "write pairs")
			}
		}
		return nil
	case outputDOT:
		out, err := converters.MarshalDOT(doc, res.Pairs)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return errors.Wrap(err, "write DOT")
	default:
		return errors.Newf("unknown output format %q", format)
	}
}

func printMatchingTable(w io.Writer, doc converters.Document, res *matching.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "A", "B"})
	for i, p := range res.Pairs {
		t.AppendRow(table.Row{i + 1, doc.Labels[p.A], doc.Labels[p.B]})
	}
	t.AppendFooter(table.Row{"", "pairs", res.Size()})
	t.Render()

	if exposed := res.Unmatched(); len(exposed) > 0 {
		fmt.Fprintf(w, "exposed: %s\n", labelPath(doc, exposed))
	}
}

// labelPath joins the labels of vs with spaces.
func labelPath(doc converters.Document, vs []int) string {
	labels := make([]string, len(vs))
	for i, v := range vs {
		labels[i] = doc.Labels[v]
	}
	return strings.Join(labels, " ")
}
