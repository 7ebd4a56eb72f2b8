// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"github.com/aclements/go-gg/ggstat"

	"github.com/r4ds/ggplot2club/plotspec"
)

// DistOptions configures Dist.
type DistOptions struct {
	// Cumulative plots the empirical CDF instead of a density
	// estimate.
	Cumulative bool

	// Bandwidth is the kernel bandwidth for the density estimate.
	// 0 computes one from the data.
	Bandwidth float64
}

// Dist returns a layer showing the distribution of the x column,
// either as a kernel density estimate or, with Cumulative, as an
// empirical CDF drawn in steps.
func Dist(x plotspec.ColumnRef, o DistOptions) plotspec.Layers {
	xcol := mustColumn("Dist", "x", x)

	if o.Cumulative {
		steps := plotspec.NewGeom(plotspec.GeomSteps, plotspec.Mapping{
			plotspec.X: x,
			plotspec.Y: plotspec.Col("cumulative density"),
		}, plotspec.Style{}, nil)
		steps.Stat = ggstat.ECDF{X: xcol}
		return plotspec.Layers{steps}
	}

	density := plotspec.NewGeom(plotspec.GeomPaths, plotspec.Mapping{
		plotspec.X: x,
		plotspec.Y: plotspec.Col("probability density"),
	}, plotspec.Style{}, nil)
	density.Stat = ggstat.Density{X: xcol, Bandwidth: o.Bandwidth}
	return plotspec.Layers{density}
}
