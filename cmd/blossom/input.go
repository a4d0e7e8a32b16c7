// SPDX-License-Identifier: MIT
// Package: blossom/cmd/blossom
//
// input.go — reading graph documents from files or stdin.

package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/blossom/converters"
)

// openInput opens path, or the app's stdin when path is empty or "-".
func openInput(c *cli.Context, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(c.App.Reader), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %s", path)
	}
	return f, nil
}

// loadDocument reads path in the given format.
func loadDocument(c *cli.Context, path, format string) (converters.Document, error) {
	in, err := openInput(c, path)
	if err != nil {
		return converters.Document{}, err
	}
	defer in.Close()

	switch format {
	case formatEdges:
		return converters.ReadEdgeList(in)
	case formatDOT:
		plain, closer, err := converters.Decompress(in)
		if err != nil {
			return converters.Document{}, err
		}
		defer closer.Close()
		data, err := io.ReadAll(plain)
		if err != nil {
			return converters.Document{}, errors.Wrap(err, "read DOT input")
		}
		return converters.ReadDOT(data)
	default:
		return converters.Document{}, errors.Newf("unknown input format %q", format)
	}
}
