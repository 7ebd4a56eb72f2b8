// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotgen renders a plot from a CSV file.
//
// plotgen reads a CSV file with a header row, builds a plot spec
// from the flags, and writes an SVG image. The -geom flag selects
// the geometry: "points", "lines", "histogram", "trend", "density",
// "ecdf", or "spread". Visual defaults can come from a TOML theme
// file (see the theme package for the format).
//
// For example, to plot highway mileage against engine displacement
// with a fitted trend line and open the result:
//
//	plotgen -x displ -y hwy -geom trend -o mileage.svg -post "xdg-open" cars.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/r4ds/ggplot2club/component"
	"github.com/r4ds/ggplot2club/dataset"
	"github.com/r4ds/ggplot2club/plotspec"
	"github.com/r4ds/ggplot2club/render"
	"github.com/r4ds/ggplot2club/theme"
)

func main() {
	log.SetPrefix("plotgen: ")
	log.SetFlags(0)

	var (
		flagX      = flag.String("x", "", "bind the x channel to `column` (default: first column)")
		flagY      = flag.String("y", "", "bind the y channel to `column`")
		flagColor  = flag.String("color", "", "bind the color channel to `column`")
		flagGeom   = flag.String("geom", "points", "draw `geometry`")
		flagBins   = flag.Int("bins", 0, "histogram bin `count` (default 30)")
		flagTheme  = flag.String("theme", "", "load theme from TOML `file`")
		flagOut    = flag.String("o", "", "write SVG to `file` (default: stdout)")
		flagWidth  = flag.Int("w", 800, "output width in `pixels`")
		flagHeight = flag.Int("h", 600, "output height in `pixels`")
		flagPost   = flag.String("post", "", "run `command` on the output file")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	data, err := dataset.OpenCSV(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if *flagX == "" {
		*flagX = data.Columns()[0]
	}
	x := plotspec.Col(*flagX)
	mapping := plotspec.Mapping{plotspec.X: x}
	var y plotspec.ColumnRef
	if *flagY != "" {
		y = plotspec.Col(*flagY)
		mapping[plotspec.Y] = y
	}
	if *flagColor != "" {
		mapping[plotspec.Color] = plotspec.Col(*flagColor)
		mapping[plotspec.Fill] = plotspec.Col(*flagColor)
	}

	layers, err := geomLayers(*flagGeom, x, y, *flagBins)
	if err != nil {
		log.Fatal(err)
	}

	spec := plotspec.New(data, mapping).
		Compose(theme.Default()).
		Compose(layers)
	if *flagTheme != "" {
		th, err := theme.Load(*flagTheme)
		if err != nil {
			log.Fatal(err)
		}
		spec = spec.Compose(th)
	}

	out := os.Stdout
	if *flagOut != "" {
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := render.SVG(out, spec, *flagWidth, *flagHeight); err != nil {
		log.Fatal(err)
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			log.Fatal(err)
		}
	}

	if *flagPost != "" {
		if *flagOut == "" {
			log.Fatal("-post requires -o")
		}
		words, err := shellquote.Split(*flagPost)
		if err != nil {
			log.Fatalf("bad -post command: %v", err)
		}
		cmd := exec.Command(words[0], append(words[1:], *flagOut)...)
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
		if err := cmd.Run(); err != nil {
			log.Fatalf("-post command: %v", err)
		}
	}
}

// geomLayers builds the layer stack for the chosen geometry. Simple
// geometries map straight to a Geom; the rest delegate to the
// component package.
func geomLayers(geom string, x, y plotspec.ColumnRef, bins int) (plotspec.Layers, error) {
	needY := func() error {
		if y.IsZero() {
			return fmt.Errorf("geometry %q requires -y", geom)
		}
		return nil
	}

	switch geom {
	case "points":
		if err := needY(); err != nil {
			return nil, err
		}
		return plotspec.Layers{plotspec.NewGeom(plotspec.GeomPoints, nil, plotspec.Style{}, nil)}, nil

	case "lines":
		if err := needY(); err != nil {
			return nil, err
		}
		return plotspec.Layers{plotspec.NewGeom(plotspec.GeomLines, nil, plotspec.Style{}, nil)}, nil

	case "histogram":
		return component.Histogram(x, component.HistogramOptions{Bins: bins}), nil

	case "trend":
		if err := needY(); err != nil {
			return nil, err
		}
		return component.PointsWithTrend(x, y, component.TrendOptions{}), nil

	case "density":
		return component.Dist(x, component.DistOptions{}), nil

	case "ecdf":
		return component.Dist(x, component.DistOptions{Cumulative: true}), nil

	case "spread":
		if err := needY(); err != nil {
			return nil, err
		}
		return component.LinesWithSpread(x, y, component.SpreadOptions{}), nil
	}
	return nil, fmt.Errorf("unknown geometry %q", geom)
}
