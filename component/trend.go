// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"image/color"

	"github.com/aclements/go-gg/ggstat"

	"github.com/r4ds/ggplot2club/plotspec"
)

// TrendOptions configures PointsWithTrend.
type TrendOptions struct {
	// Degree is the degree of the fitted polynomial. If Degree is
	// 0, a straight line is fit.
	Degree int

	// Color is the trend line color. nil selects the geometry
	// default.
	Color color.Color
}

// PointsWithTrend returns a scatter of y against x plus a least
// squares trend line fit to the same columns.
func PointsWithTrend(x, y plotspec.ColumnRef, o TrendOptions) plotspec.Layers {
	xcol := mustColumn("PointsWithTrend", "x", x)
	ycol := mustColumn("PointsWithTrend", "y", y)

	points := plotspec.NewGeom(plotspec.GeomPoints, plotspec.Mapping{
		plotspec.X: x,
		plotspec.Y: y,
	}, plotspec.Style{}, nil)

	line := plotspec.NewGeom(plotspec.GeomLines, plotspec.Mapping{
		plotspec.X: x,
		plotspec.Y: y,
	}, plotspec.Style{Color: o.Color}, nil)
	line.Stat = ggstat.LeastSquares{X: xcol, Y: ycol, Degree: o.Degree}

	return plotspec.Layers{points, line}
}
