// SPDX-License-Identifier: MIT
// Package: blossom/cmd/blossom
//
// generate.go — the generate command: write a builder fixture as an edge list.

package main

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/converters"
	"github.com/katalvlaran/blossom/logger"
)

var (
	shapeFlag = cli.StringFlag{
		Name:     "shape",
		Usage:    "fixture family, one of: " + strings.Join(shapeNames(), ", "),
		Required: true,
	}
	nFlag = cli.IntFlag{
		Name:  "n",
		Usage: "vertex count (rows for grid, left side for bipartite)",
		Value: 10,
	}
	mFlag = cli.IntFlag{
		Name:  "m",
		Usage: "columns for grid, right side for bipartite",
		Value: 10,
	}
	pFlag = cli.Float64Flag{
		Name:  "p",
		Usage: "edge probability for random graphs",
		Value: 0.1,
	}
	degreeFlag = cli.IntFlag{
		Name:  "degree",
		Usage: "vertex degree for regular graphs",
		Value: 3,
	}
	solidFlag = cli.StringFlag{
		Name:  "solid",
		Usage: "Platonic solid: tetrahedron, cube, octahedron, dodecahedron or icosahedron",
		Value: "cube",
	}
	hubFlag = cli.BoolFlag{
		Name:  "hub",
		Usage: "add a hub vertex joined to every vertex of the Platonic shell",
	}
	idsFlag = cli.StringFlag{
		Name:  "ids",
		Usage: "vertex label scheme: " + strings.Join(idSchemeNames(), ", "),
		Value: "default",
	}
	gzipFlag = cli.BoolFlag{
		Name:  "gzip",
		Usage: "gzip-compress the edge list",
	}
	outFlag = cli.PathFlag{
		Name:  "out",
		Usage: "write to this file instead of stdout",
	}
)

// GenerateCommand writes a graph fixture as an edge list.
var GenerateCommand = cli.Command{
	Action: generateAction,
	Name:   "generate",
	Usage:  "write a graph fixture as an edge list",
	Flags: []cli.Flag{
		&shapeFlag,
		&nFlag,
		&mFlag,
		&pFlag,
		&degreeFlag,
		&solidFlag,
		&hubFlag,
		&idsFlag,
		&seedFlag,
		&gzipFlag,
		&outFlag,
		&logger.LogLevelFlag,
	},
}

// shapes maps a --shape value to the constructor it selects.
var shapes = map[string]func(c *cli.Context) (builder.Constructor, error){
	"cycle":    func(c *cli.Context) (builder.Constructor, error) { return builder.Cycle(c.Int(nFlag.Name)), nil },
	"path":     func(c *cli.Context) (builder.Constructor, error) { return builder.Path(c.Int(nFlag.Name)), nil },
	"star":     func(c *cli.Context) (builder.Constructor, error) { return builder.Star(c.Int(nFlag.Name)), nil },
	"wheel":    func(c *cli.Context) (builder.Constructor, error) { return builder.Wheel(c.Int(nFlag.Name)), nil },
	"complete": func(c *cli.Context) (builder.Constructor, error) { return builder.Complete(c.Int(nFlag.Name)), nil },
	"bipartite": func(c *cli.Context) (builder.Constructor, error) {
		return builder.CompleteBipartite(c.Int(nFlag.Name), c.Int(mFlag.Name)), nil
	},
	"grid": func(c *cli.Context) (builder.Constructor, error) {
		return builder.Grid(c.Int(nFlag.Name), c.Int(mFlag.Name)), nil
	},
	"platonic": func(c *cli.Context) (builder.Constructor, error) {
		solid, err := parseSolid(c.String(solidFlag.Name))
		if err != nil {
			return nil, err
		}
		return builder.PlatonicSolid(solid, c.Bool(hubFlag.Name)), nil
	},
	"petersen": func(*cli.Context) (builder.Constructor, error) { return builder.Petersen(), nil },
	"random": func(c *cli.Context) (builder.Constructor, error) {
		return builder.RandomSparse(c.Int(nFlag.Name), c.Float64(pFlag.Name)), nil
	},
	"regular": func(c *cli.Context) (builder.Constructor, error) {
		return builder.RandomRegular(c.Int(nFlag.Name), c.Int(degreeFlag.Name)), nil
	},
}

// idSchemes maps an --ids value to a label scheme. "symbol" holds at most
// 26 vertices; larger fixtures fail with builder.ErrOptionViolation.
var idSchemes = map[string]builder.IDFn{
	"default":  builder.DefaultIDFn,
	"symbol":   builder.SymbolIDFn,
	"excel":    builder.ExcelColumnIDFn,
	"alnum":    builder.AlphanumericIDFn,
	"hex":      builder.HexIDFn,
	"prefixed": builder.SymbolNumberIDFn("v"),
}

var solids = []builder.PlatonicName{
	builder.Tetrahedron, builder.Cube, builder.Octahedron, builder.Dodecahedron, builder.Icosahedron,
}

var titleCase = cases.Title(language.English)

func shapeNames() []string {
	names := maps.Keys(shapes)
	sort.Strings(names)
	return names
}

func idSchemeNames() []string {
	names := maps.Keys(idSchemes)
	sort.Strings(names)
	return names
}

// parseSolid accepts a solid name in any letter case.
func parseSolid(name string) (builder.PlatonicName, error) {
	want := titleCase.String(strings.TrimSpace(name))
	for _, s := range solids {
		if s.String() == want {
			return s, nil
		}
	}
	return 0, errors.Newf("unknown Platonic solid %q", name)
}

func generateAction(c *cli.Context) error {
	log := logger.NewLoggerTo(c.App.ErrWriter, c.String(logger.LogLevelFlag.Name), "Blossom-Generate")

	shape := c.String(shapeFlag.Name)
	ctor, ok := shapes[shape]
	if !ok {
		return errors.Newf("unknown shape %q, want one of: %s", shape, strings.Join(shapeNames(), ", "))
	}
	idFn, ok := idSchemes[c.String(idsFlag.Name)]
	if !ok {
		return errors.Newf("unknown id scheme %q, want one of: %s", c.String(idsFlag.Name), strings.Join(idSchemeNames(), ", "))
	}
	cons, err := ctor(c)
	if err != nil {
		return err
	}

	bp, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(idFn), builder.WithSeed(c.Int64(seedFlag.Name))},
		cons,
	)
	if err != nil {
		return errors.Wrapf(err, "generate %s", shape)
	}
	log.Infof("generated %s with %d vertices and %d edges", shape, bp.VertexCount(), len(bp.Edges))

	return writeFixture(c, converters.Document{Labels: bp.Labels, Edges: bp.Edges})
}

// writeFixture writes doc to --out or stdout, compressed when --gzip is set.
func writeFixture(c *cli.Context, doc converters.Document) (err error) {
	var w io.Writer = c.App.Writer
	if path := c.Path(outFlag.Name); path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return errors.Wrapf(ferr, "cannot create %s", path)
		}
		defer func() { err = errors.CombineErrors(err, f.Close()) }()
		w = f
	}
	if c.Bool(gzipFlag.Name) {
		zw := gzip.NewWriter(w)
		defer func() { err = errors.CombineErrors(err, zw.Close()) }()
		w = zw
	}
	return converters.WriteEdgeList(w, doc)
}
