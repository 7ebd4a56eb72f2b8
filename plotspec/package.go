// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotspec builds declarative plot specifications by value
// composition.
//
// A PlotSpec combines a data source, a mapping from visual channels
// to data columns, and an ordered sequence of layers. Layers come in
// four kinds: geometries draw marks, scales control how data maps to
// visual properties, themes set visual defaults, and annotations
// overlay fixed content with their own data. Specs and layers are
// immutable values; every operation returns a new spec and never
// modifies its inputs, so partially built specs can be shared and
// extended independently.
//
// plotspec deliberately does not draw anything. A finished spec is
// replayed against a rendering engine (see the render package, which
// targets github.com/aclements/go-gg); any column reference that does
// not resolve against the bound data surfaces there, at render time,
// not during composition.
//
// # Column references
//
// Mappings do not hold bare strings. A channel binds to a ColumnRef
// built with either Col, which names a column in the data source, or
// Lit, which inlines a constant value. The distinction is made
// explicitly at the call site, so a function that wraps layer
// construction can accept a ColumnRef parameter and forward it into
// the mapping it builds without the wrapper's own parameter name
// leaking in as a spurious label:
//
//	func ByClass(data table.Grouping, class plotspec.ColumnRef) *plotspec.PlotSpec {
//		return plotspec.New(data, plotspec.Mapping{
//			plotspec.X:    plotspec.Col("displ"),
//			plotspec.Y:    plotspec.Col("hwy"),
//			plotspec.Fill: class,
//		})
//	}
//
// ByClass(data, plotspec.Col("class")) binds the fill channel to the
// caller's "class" column, not to the name of the wrapper parameter.
package plotspec
