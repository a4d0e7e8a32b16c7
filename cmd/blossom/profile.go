// SPDX-License-Identifier: MIT
// Package: blossom/cmd/blossom
//
// profile.go — the profile command: sweep edge density on random graphs and
// report matching size and search effort.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/logger"
	"github.com/katalvlaran/blossom/matching"
)

var (
	verticesFlag = cli.IntFlag{
		Name:  "vertices",
		Usage: "vertex count of every random graph",
		Value: 200,
	}
	maxPFlag = cli.Float64Flag{
		Name:  "max-p",
		Usage: "largest edge probability of the sweep",
		Value: 0.05,
	}
	stepsFlag = cli.IntFlag{
		Name:  "steps",
		Usage: "number of probabilities sampled in (0, max-p]",
		Value: 10,
	}
	trialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "random graphs solved per probability",
		Value: 5,
	}
	chartFlag = cli.PathFlag{
		Name:  "chart",
		Usage: "write an HTML line chart of the sweep to this file",
	}
)

// ProfileCommand sweeps RandomSparse density and reports averages.
var ProfileCommand = cli.Command{
	Action: profileAction,
	Name:   "profile",
	Usage:  "measure matching size and blossom activity on random graphs",
	Flags: []cli.Flag{
		&verticesFlag,
		&maxPFlag,
		&stepsFlag,
		&trialsFlag,
		&seedFlag,
		&chartFlag,
		&logger.LogLevelFlag,
	},
}

// profilePoint holds the averages for one probability.
type profilePoint struct {
	P             float64
	Size          float64
	Augmentations float64
	Contractions  float64
}

// profileConfig parameterises one sweep.
type profileConfig struct {
	Vertices int
	MaxP     float64
	Steps    int
	Trials   int
	Seed     int64
}

func profileAction(c *cli.Context) error {
	log := logger.NewLoggerTo(c.App.ErrWriter, c.String(logger.LogLevelFlag.Name), "Blossom-Profile")
	cfg := profileConfig{
		Vertices: c.Int(verticesFlag.Name),
		MaxP:     c.Float64(maxPFlag.Name),
		Steps:    c.Int(stepsFlag.Name),
		Trials:   c.Int(trialsFlag.Name),
		Seed:     c.Int64(seedFlag.Name),
	}

	start := time.Now()
	points, err := runProfile(c, cfg)
	if err != nil {
		return err
	}
	log.Noticef("profiled %d graphs in %s", cfg.Steps*cfg.Trials, logger.FormatElapsed(time.Since(start)))

	printProfileTable(c.App.Writer, points)

	if path := c.Path(chartFlag.Name); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "cannot create %s", path)
		}
		err = newProfileChart(cfg, points).Render(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return errors.Wrapf(err, "render chart %s", path)
		}
		log.Infof("chart written to %s", path)
	}
	return nil
}

// runProfile solves cfg.Trials random graphs for each of cfg.Steps
// probabilities spread evenly over (0, cfg.MaxP].
func runProfile(c *cli.Context, cfg profileConfig) ([]profilePoint, error) {
	if cfg.Steps < 1 || cfg.Trials < 1 {
		return nil, errors.Newf("profile: steps=%d and trials=%d must both be positive", cfg.Steps, cfg.Trials)
	}
	points := make([]profilePoint, cfg.Steps)
	for step := range points {
		p := cfg.MaxP * float64(step+1) / float64(cfg.Steps)
		pt := profilePoint{P: p}
		for trial := 0; trial < cfg.Trials; trial++ {
			seed := cfg.Seed + int64(step*cfg.Trials+trial)
			bp, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomSparse(cfg.Vertices, p),
			)
			if err != nil {
				return nil, errors.Wrapf(err, "profile: p=%.4f", p)
			}
			g, err := bp.Graph()
			if err != nil {
				return nil, errors.Wrap(err, "profile")
			}
			res, err := matching.Solve(g, matching.WithContext(c.Context))
			if err != nil {
				return nil, errors.Wrap(err, "profile")
			}
			pt.Size += float64(res.Size())
			pt.Augmentations += float64(res.Stats.Augmentations)
			pt.Contractions += float64(res.Stats.Contractions)
		}
		trials := float64(cfg.Trials)
		pt.Size /= trials
		pt.Augmentations /= trials
		pt.Contractions /= trials
		points[step] = pt
	}
	return points, nil
}

func printProfileTable(w io.Writer, points []profilePoint) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"p", "size", "augmentations", "contractions"})
	for _, pt := range points {
		t.AppendRow(table.Row{
			fmt.Sprintf("%.4f", pt.P),
			fmt.Sprintf("%.1f", pt.Size),
			fmt.Sprintf("%.1f", pt.Augmentations),
			fmt.Sprintf("%.1f", pt.Contractions),
		})
	}
	t.Render()
}

func lineData(points []profilePoint, value func(profilePoint) float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(points))
	for _, pt := range points {
		items = append(items, opts.LineData{Value: [2]float64{pt.P, value(pt)}})
	}
	return items
}

// newProfileChart plots the sweep averages against p.
func newProfileChart(cfg profileConfig, points []profilePoint) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Blossom matching profile",
			Subtitle: fmt.Sprintf("%d vertices, %d trials per point", cfg.Vertices, cfg.Trials),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "p", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "mean"}),
	)
	chart.AddSeries("size", lineData(points, func(pt profilePoint) float64 { return pt.Size })).
		AddSeries("augmentations", lineData(points, func(pt profilePoint) float64 { return pt.Augmentations })).
		AddSeries("contractions", lineData(points, func(pt profilePoint) float64 { return pt.Contractions }))
	return chart
}
