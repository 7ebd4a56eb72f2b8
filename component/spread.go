// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"image/color"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"

	"github.com/r4ds/ggplot2club/plotspec"
)

// SpreadOptions configures LinesWithSpread.
type SpreadOptions struct {
	// Fill is the fill color of the spread band. nil selects the
	// area default.
	Fill color.Color

	// Color is the mean line color. nil selects the geometry
	// default.
	Color color.Color
}

// LinesWithSpread aggregates y over repeated x values and returns a
// band from the minimum to the maximum observation with the mean
// drawn as a line on top, the usual shape for repeated measurements.
func LinesWithSpread(x, y plotspec.ColumnRef, o SpreadOptions) plotspec.Layers {
	xcol := mustColumn("LinesWithSpread", "x", x)
	ycol := mustColumn("LinesWithSpread", "y", y)
	agg := spreadStat{X: xcol, Y: ycol}

	band := plotspec.NewGeom(plotspec.GeomArea, plotspec.Mapping{
		plotspec.X:     x,
		plotspec.Upper: plotspec.Col("max " + ycol),
		plotspec.Lower: plotspec.Col("min " + ycol),
	}, plotspec.Style{Fill: o.Fill}, nil)
	band.Stat = agg

	mean := plotspec.NewGeom(plotspec.GeomLines, plotspec.Mapping{
		plotspec.X: x,
		plotspec.Y: plotspec.Col("mean " + ycol),
	}, plotspec.Style{Color: o.Color}, nil)
	mean.Stat = agg

	return plotspec.Layers{band, mean}
}

// spreadStat groups rows by distinct X value and emits the mean,
// minimum, and maximum of Y for each, in ascending X order.
type spreadStat struct {
	X, Y string
}

func (s spreadStat) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs, ys []float64
		slice.Convert(&xs, t.MustColumn(s.X))
		slice.Convert(&ys, t.MustColumn(s.Y))

		byX := make(map[float64][]float64)
		for i, x := range xs {
			byX[x] = append(byX[x], ys[i])
		}
		ux := make([]float64, 0, len(byX))
		for x := range byX {
			ux = append(ux, x)
		}
		sort.Float64s(ux)

		means := make([]float64, len(ux))
		mins := make([]float64, len(ux))
		maxs := make([]float64, len(ux))
		for i, x := range ux {
			group := byX[x]
			means[i] = vec.Sum(group) / float64(len(group))
			mins[i], maxs[i] = stats.Bounds(group)
		}

		return new(table.Builder).
			Add(s.X, ux).
			Add("mean "+s.Y, means).
			Add("min "+s.Y, mins).
			Add("max "+s.Y, maxs).
			Done()
	})
}
