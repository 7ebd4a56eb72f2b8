// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"image/color"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"

	"github.com/r4ds/ggplot2club/plotspec"
)

// HistogramOptions configures Histogram. The zero value is a
// reasonable default.
type HistogramOptions struct {
	// Bins is the number of equal-width bins. If Bins is 0, it
	// defaults to 30.
	Bins int

	// Fill is the fill color of the bars. nil selects the
	// geometry default.
	Fill color.Color

	// Outline adds a second geometry tracing the bin counts with
	// a line, the usual companion when comparing several
	// distributions.
	Outline bool
}

// Histogram returns layers that bin the x column into equal-width
// bins and draw the counts. Explicit options always win over the
// built-in defaults.
func Histogram(x plotspec.ColumnRef, o HistogramOptions) plotspec.Layers {
	xcol := mustColumn("Histogram", "x", x)
	if o.Bins == 0 {
		o.Bins = 30
	}

	bars := plotspec.NewGeom(plotspec.GeomSteps, plotspec.Mapping{
		plotspec.X: x,
		plotspec.Y: plotspec.Col("count"),
	}, plotspec.Style{Fill: o.Fill}, plotspec.Params{"step": "hmid"})
	bars.Stat = binStat{X: xcol, Bins: o.Bins}

	ls := plotspec.Layers{bars}
	if o.Outline {
		outline := plotspec.NewGeom(plotspec.GeomLines, plotspec.Mapping{
			plotspec.X: x,
			plotspec.Y: plotspec.Col("count"),
		}, plotspec.Style{}, nil)
		outline.Stat = binStat{X: xcol, Bins: o.Bins}
		ls = append(ls, outline)
	}
	return ls
}

// binStat bins column X into equal-width bins and emits bin left
// edges in X plus a "count" column. The last bin is closed on both
// sides so the maximum lands in it.
type binStat struct {
	X    string
	Bins int
}

func (b binStat) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(b.X))
		if len(xs) == 0 {
			return new(table.Builder).
				Add(b.X, []float64{}).
				Add("count", []float64{}).
				Done()
		}

		min, max := stats.Bounds(xs)
		if min == max {
			// All samples identical; make one non-degenerate
			// bin around them.
			min, max = min-0.5, max+0.5
		}

		edges := vec.Linspace(min, max, b.Bins+1)
		counts := make([]float64, b.Bins)
		w := (max - min) / float64(b.Bins)
		for _, x := range xs {
			i := int((x - min) / w)
			if i >= b.Bins {
				i = b.Bins - 1
			}
			counts[i]++
		}

		return new(table.Builder).
			Add(b.X, edges[:b.Bins]).
			Add("count", counts).
			Done()
	})
}
