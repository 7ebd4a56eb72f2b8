// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotspec

import (
	"image/color"

	"github.com/aclements/go-gg/table"
)

// A Layer is one contribution to a plot: a geometry, a scale, a
// theme, or an annotation. Layers are immutable values; order
// matters, with later layers drawn on top of or overriding earlier
// ones.
type Layer interface {
	Element
	layer()
}

// An Element is anything Compose can append to a spec: a single
// Layer or a Layers sequence. Sequences are flattened, so a function
// that returns several related layers at once (say, a bar geometry
// plus its error bars) composes the same way a single layer does.
type Element interface {
	appendTo(dst []Layer) []Layer
}

// Layers is an ordered sequence of layers that composes as a unit.
type Layers []Layer

func (ls Layers) appendTo(dst []Layer) []Layer {
	return append(dst, ls...)
}

//go:generate stringer -type GeomKind

// GeomKind selects the mark a Geom draws. The kinds correspond to
// the mark types of the rendering engine.
type GeomKind int

const (
	// GeomPoints draws a point at each data point.
	GeomPoints GeomKind = iota

	// GeomLines connects data points in X order with line
	// segments.
	GeomLines

	// GeomPaths connects data points in data order.
	GeomPaths

	// GeomSteps connects data points in X order using only
	// horizontal and vertical segments.
	GeomSteps

	// GeomArea shades the region between the upper and lower
	// channels.
	GeomArea

	// GeomTiles draws a rectangle centered at each data point.
	GeomTiles

	// GeomTags attaches text labels to data points.
	GeomTags

	// GeomTooltips attaches hover tooltips to data points.
	GeomTooltips
)

// A Stat transforms a grouped table before a geometry draws it. It
// is satisfied by the stats in github.com/aclements/go-gg/ggstat as
// well as locally defined transforms.
type Stat interface {
	F(table.Grouping) table.Grouping
}

// Params carries extra geometry parameters that plotspec itself does
// not interpret. They are forwarded verbatim to the rendering
// engine, which either understands them or fails the render.
type Params map[string]interface{}

// Style holds the visual parameters of a geometry or annotation.
// Zero-valued fields mean "use the default for the geometry's kind",
// so a caller only states what it wants to override.
type Style struct {
	// Color is the stroke color. nil selects the kind's default.
	Color color.Color

	// Fill is the fill color. nil selects the kind's default.
	Fill color.Color

	// Opacity is the mark opacity in (0, 1]. 0 selects the
	// default, fully opaque.
	Opacity float64

	// Size is the mark size as a fraction of the smallest plot
	// dimension. 0 selects the engine default.
	Size float64
}

// merged returns s overlaid on the defaults for kind. Explicit
// fields of s always win.
func (s Style) merged(kind GeomKind) Style {
	def := defaultStyle(kind)
	if s.Color == nil {
		s.Color = def.Color
	}
	if s.Fill == nil {
		s.Fill = def.Fill
	}
	if s.Opacity == 0 {
		s.Opacity = def.Opacity
	}
	if s.Size == 0 {
		s.Size = def.Size
	}
	return s
}

func defaultStyle(kind GeomKind) Style {
	switch kind {
	case GeomArea:
		// Areas are usually background extents under a line.
		return Style{Fill: color.Gray{Y: 192}}
	}
	return Style{}
}

// A Geom is a geometry layer: one set of marks drawn from the spec's
// data. Its Mapping overlays the spec's mapping for this layer only;
// its Stat, if non-nil, transforms the data before the marks are
// placed.
type Geom struct {
	Kind    GeomKind
	Mapping Mapping
	Style   Style
	Stat    Stat
	Extra   Params
}

func (Geom) layer() {}
func (g Geom) appendTo(dst []Layer) []Layer {
	return append(dst, g)
}

// NewGeom constructs a Geom of the given kind with style merged over
// the kind's built-in defaults. Explicit fields of style always take
// precedence over the defaults. Extra parameters are carried
// verbatim and only interpreted by the rendering engine.
func NewGeom(kind GeomKind, m Mapping, style Style, extra Params) Geom {
	return Geom{
		Kind:    kind,
		Mapping: m.clone(),
		Style:   style.merged(kind),
		Extra:   extra,
	}
}

//go:generate stringer -type Transform

// Transform selects how a scale maps data values to positions along
// its channel.
type Transform int

const (
	// TransformDefault lets the engine pick a scale from the
	// column's type.
	TransformDefault Transform = iota

	// TransformLinear maps a continuous input interval linearly.
	TransformLinear

	// TransformTime scales time.Time values.
	TransformTime

	// TransformOrdinal spaces discrete values evenly in value
	// order.
	TransformOrdinal

	// TransformIdentity passes values through unscaled, for
	// columns that already hold physical values such as colors.
	TransformIdentity
)

// A Scale layer controls how one channel's data maps to its visual
// property. Composing a Scale for a channel that already has one
// replaces the earlier scale.
type Scale struct {
	// Channel is the visual channel this scale applies to.
	Channel string

	Transform Transform

	// Min and Max clamp the scale's input domain. nil leaves the
	// bound to the data.
	Min, Max *float64

	// Include extends the input domain to contain these values,
	// e.g. 0 to keep a Y axis anchored at zero.
	Include []float64

	// Palette supplies the output range for a discrete color
	// channel.
	Palette []color.Color
}

func (Scale) layer() {}
func (s Scale) appendTo(dst []Layer) []Layer {
	return append(dst, s)
}

// A Theme layer sets plot-wide visual defaults. Composing a second
// Theme does not stack: its non-zero fields overwrite the
// corresponding fields of the earlier theme and the rest are kept.
type Theme struct {
	// Title is the plot title.
	Title string

	// XLabel and YLabel override the automatic axis labels.
	XLabel, YLabel string

	// Palette is the default discrete palette for color and fill
	// scales that don't bring their own.
	Palette []color.Color

	// IncludeZero anchors the Y axis at zero. It is sticky: once
	// a composed theme sets it, a later theme cannot unset it.
	IncludeZero bool
}

func (Theme) layer() {}
func (t Theme) appendTo(dst []Layer) []Layer {
	return append(dst, t)
}

// merge returns t overwritten by the non-zero fields of over.
func (t Theme) merge(over Theme) Theme {
	if over.Title != "" {
		t.Title = over.Title
	}
	if over.XLabel != "" {
		t.XLabel = over.XLabel
	}
	if over.YLabel != "" {
		t.YLabel = over.YLabel
	}
	if over.Palette != nil {
		t.Palette = over.Palette
	}
	t.IncludeZero = t.IncludeZero || over.IncludeZero
	return t
}

// An Annotation is a fixed overlay with its own data source. It does
// not inherit the spec's mapping: its Mapping alone determines what
// it draws, so rebinding the spec's data never disturbs it.
type Annotation struct {
	// Data is the annotation's own data source. It must be
	// non-nil.
	Data table.Grouping

	Kind    GeomKind
	Mapping Mapping
	Style   Style
}

func (Annotation) layer() {}
func (a Annotation) appendTo(dst []Layer) []Layer {
	return append(dst, a)
}
