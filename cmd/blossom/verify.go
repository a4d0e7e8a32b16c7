// SPDX-License-Identifier: MIT
// Package: blossom/cmd/blossom
//
// verify.go — the verify command: check a matching against its graph.

package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/blossom/converters"
	"github.com/katalvlaran/blossom/logger"
	"github.com/katalvlaran/blossom/matching"
)

// VerifyCommand checks that a matching is valid and maximum.
var VerifyCommand = cli.Command{
	Action:    verifyAction,
	Name:      "verify",
	Usage:     "check that a matching is valid and of maximum cardinality",
	ArgsUsage: "<graph-file|->",
	Flags: []cli.Flag{
		&matchingFlag,
		&formatFlag,
		&logger.LogLevelFlag,
	},
}

func verifyAction(c *cli.Context) error {
	if c.NArg() > 1 {
		return errors.Newf("verify: want at most one graph file, got %d", c.NArg())
	}
	log := logger.NewLoggerTo(c.App.ErrWriter, c.String(logger.LogLevelFlag.Name), "Blossom-Verify")

	doc, err := loadDocument(c, c.Args().First(), c.String(formatFlag.Name))
	if err != nil {
		return err
	}
	g, err := doc.Graph()
	if err != nil {
		return errors.Wrap(err, "verify: invalid graph")
	}
	pairsDoc, err := loadDocument(c, c.Path(matchingFlag.Name), formatEdges)
	if err != nil {
		return errors.Wrap(err, "verify: read matching")
	}
	pairs, err := pairsByLabel(doc, pairsDoc)
	if err != nil {
		return err
	}
	log.Infof("checking %d pairs against %d vertices and %d edges", len(pairs), g.VertexCount(), g.EdgeCount())

	if err := matching.VerifyMaximum(g, pairs, matching.WithContext(c.Context)); err != nil {
		return errors.Wrap(err, "verify")
	}
	fmt.Fprintf(c.App.Writer, "valid maximum matching with %d pairs\n", len(pairs))
	return nil
}

// pairsByLabel resolves the label pairs of pd against the vertices of doc.
func pairsByLabel(doc, pd converters.Document) ([]matching.Pair, error) {
	index := doc.Index()
	pairs := make([]matching.Pair, 0, len(pd.Edges))
	for _, e := range pd.Edges {
		a, ok := index[pd.Labels[e.U]]
		if !ok {
			return nil, errors.Newf("verify: unknown vertex %q in matching", pd.Labels[e.U])
		}
		b, ok := index[pd.Labels[e.V]]
		if !ok {
			return nil, errors.Newf("verify: unknown vertex %q in matching", pd.Labels[e.V])
		}
		if a > b {
			a, b = b, a
		}
		pairs = append(pairs, matching.Pair{A: a, B: b})
	}
	return pairs, nil
}
