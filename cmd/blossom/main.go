// SPDX-License-Identifier: MIT
// Package: blossom/cmd/blossom
//
// main.go — command-line front end for the matching library.

package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// newApp assembles the blossom application.
func newApp() *cli.App {
	return &cli.App{
		Name:     "blossom",
		HelpName: "blossom",
		Usage:    "maximum-cardinality matching in general graphs",
		Commands: []*cli.Command{
			&MatchCommand,
			&GenerateCommand,
			&VerifyCommand,
			&ProfileCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
