// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render replays a finished plotspec.PlotSpec against the
// go-gg rendering engine.
//
// This is where deferred validation happens: every column reference
// in the spec's effective mapping is resolved against the bound data
// source, and extra geometry parameters the composer carried
// verbatim are finally interpreted. A reference that does not
// resolve fails the whole render with a MissingColumnError before
// any drawing is attempted.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/r4ds/ggplot2club/plotspec"
)

// A MissingColumnError reports a mapping that references a column
// absent from the data source it is being rendered against.
type MissingColumnError struct {
	// Column is the referenced column.
	Column string

	// Columns lists the columns the data source actually has.
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not in data source (have %s)",
		e.Column, strings.Join(e.Columns, ", "))
}

// A BadParamError reports an extra geometry parameter the engine
// does not understand.
type BadParamError struct {
	// Name is the parameter name.
	Name string

	// Kind is the geometry the parameter was attached to.
	Kind plotspec.GeomKind
}

func (e *BadParamError) Error() string {
	return fmt.Sprintf("unknown parameter %q for %s", e.Name, e.Kind)
}

// New builds an engine plot from spec. It validates the spec's
// mapping against its data source and replays the layer sequence in
// order.
func New(spec *plotspec.PlotSpec) (*gg.Plot, error) {
	base := spec.Mapping()
	if err := checkMapping(base, spec.Data()); err != nil {
		return nil, err
	}

	plot := gg.NewPlot(spec.Data())
	layers := spec.Layers()

	// The engine binds a mark to its scales when the mark is
	// added, so scales and themes must configure the plot before
	// any geometry is laid down, whatever order they were composed
	// in. Themes go first: an explicit scale overrides the theme's
	// defaults.
	for _, l := range layers {
		if t, ok := l.(plotspec.Theme); ok {
			applyTheme(plot, t)
		}
	}
	for _, l := range layers {
		if sc, ok := l.(plotspec.Scale); ok {
			if err := applyScale(plot, sc); err != nil {
				return nil, err
			}
		}
	}

	for _, l := range layers {
		var err error
		switch l := l.(type) {
		case plotspec.Geom:
			err = applyGeom(plot, l, base)
		case plotspec.Annotation:
			err = applyAnnotation(plot, l)
		case plotspec.Scale, plotspec.Theme:
			// Applied above.
		default:
			err = fmt.Errorf("unknown layer type %T", l)
		}
		if err != nil {
			return nil, err
		}
	}
	return plot, nil
}

// SVG renders spec as an SVG image of the given pixel dimensions.
func SVG(w io.Writer, spec *plotspec.PlotSpec, width, height int) error {
	plot, err := New(spec)
	if err != nil {
		return err
	}
	return plot.WriteSVG(w, width, height)
}

// checkMapping verifies that every column reference in m resolves
// against data.
func checkMapping(m plotspec.Mapping, data table.Grouping) error {
	for _, ch := range m.Channels() {
		if name, ok := m[ch].Column(); ok && !hasColumn(data, name) {
			return missingColumn(name, data)
		}
	}
	return nil
}

func hasColumn(data table.Grouping, name string) bool {
	for _, col := range data.Columns() {
		if col == name {
			return true
		}
	}
	return false
}

func missingColumn(name string, data table.Grouping) error {
	cols := append([]string(nil), data.Columns()...)
	sort.Strings(cols)
	return &MissingColumnError{Column: name, Columns: cols}
}

func applyGeom(p *gg.Plot, g plotspec.Geom, base plotspec.Mapping) error {
	if g.Stat != nil {
		defer p.Save().Restore()
		p.Stat(g.Stat)
	}
	// Stats may add or drop columns, so the merged mapping is
	// checked against the data as the mark will see it.
	return addMark(p, g.Kind, base.Merge(g.Mapping), g.Style, g.Extra)
}

func applyAnnotation(p *gg.Plot, a plotspec.Annotation) error {
	// Annotations bring their own data and their own mapping;
	// nothing is inherited from the spec.
	defer p.Save().Restore()
	p.SetData(a.Data)
	return addMark(p, a.Kind, a.Mapping, a.Style, nil)
}

// addMark resolves the mapping's references for the channels kind
// uses and appends the corresponding engine layer.
func addMark(p *gg.Plot, kind plotspec.GeomKind, m plotspec.Mapping, style plotspec.Style, extra plotspec.Params) error {
	r := resolver{p: p, m: m}
	x := r.col(plotspec.X)
	y := r.col(plotspec.Y)

	// Style constants become constant columns, but an explicit
	// channel binding wins.
	colorCol := r.col(plotspec.Color)
	if colorCol == "" && style.Color != nil {
		colorCol = p.Const(style.Color)
	}
	fillCol := r.col(plotspec.Fill)
	if fillCol == "" && style.Fill != nil {
		fillCol = p.Const(style.Fill)
	}

	step, err := stepMode(kind, extra)
	if err != nil {
		return err
	}
	if r.err != nil {
		return r.err
	}

	switch kind {
	case plotspec.GeomPoints:
		// Opacity and size only apply to point marks.
		opacityCol := r.col(plotspec.Opacity)
		if opacityCol == "" && style.Opacity != 0 {
			opacityCol = p.Const(gg.Unscaled(style.Opacity))
		}
		sizeCol := r.col(plotspec.Size)
		if sizeCol == "" && style.Size != 0 {
			sizeCol = p.Const(gg.Unscaled(style.Size))
		}
		if r.err != nil {
			return r.err
		}
		p.Add(gg.LayerPoints{X: x, Y: y, Color: colorCol, Opacity: opacityCol, Size: sizeCol})

	case plotspec.GeomLines:
		p.Add(gg.LayerLines{X: x, Y: y, Color: colorCol, Fill: fillCol})

	case plotspec.GeomPaths:
		p.Add(gg.LayerPaths{X: x, Y: y, Color: colorCol, Fill: fillCol})

	case plotspec.GeomSteps:
		p.Add(gg.LayerSteps{
			LayerPaths: gg.LayerPaths{X: x, Y: y, Color: colorCol, Fill: fillCol},
			Step:       step,
		})

	case plotspec.GeomArea:
		upper := r.col(plotspec.Upper)
		lower := r.col(plotspec.Lower)
		if r.err != nil {
			return r.err
		}
		p.Add(gg.LayerArea{X: x, Upper: upper, Lower: lower, Fill: fillCol})

	case plotspec.GeomTiles:
		p.Add(gg.LayerTiles{X: x, Y: y, Fill: fillCol})

	case plotspec.GeomTags, plotspec.GeomTooltips:
		label := r.col(plotspec.Label)
		if r.err != nil {
			return r.err
		}
		if label == "" {
			return fmt.Errorf("%s requires a label channel", kind)
		}
		if kind == plotspec.GeomTags {
			p.Add(gg.LayerTags{X: x, Y: y, Label: label})
		} else {
			p.Add(gg.LayerTooltips{X: x, Y: y, Label: label})
		}

	default:
		return fmt.Errorf("unknown geometry kind %s", kind)
	}
	return nil
}

// A resolver turns mapping references into engine column names,
// recording the first resolution failure.
type resolver struct {
	p   *gg.Plot
	m   plotspec.Mapping
	err error
}

// col resolves channel ch to a column name. Unbound channels
// resolve to "", which the engine treats as the channel's default.
func (r *resolver) col(ch string) string {
	if r.err != nil {
		return ""
	}
	ref, ok := r.m[ch]
	if !ok || ref.IsZero() {
		return ""
	}
	if v, ok := ref.Value(); ok {
		return r.p.Const(v)
	}
	name, _ := ref.Column()
	if !hasColumn(r.p.Data(), name) {
		r.err = missingColumn(name, r.p.Data())
		return ""
	}
	return name
}

// stepMode interprets the extra parameters of a geometry. Steps
// accept a "step" parameter; anything else is an engine error.
func stepMode(kind plotspec.GeomKind, extra plotspec.Params) (gg.StepMode, error) {
	mode := gg.StepHV
	for name, val := range extra {
		if name != "step" || kind != plotspec.GeomSteps {
			return mode, &BadParamError{Name: name, Kind: kind}
		}
		s, ok := val.(string)
		if !ok {
			return mode, &BadParamError{Name: name, Kind: kind}
		}
		switch s {
		case "hv":
			mode = gg.StepHV
		case "vh":
			mode = gg.StepVH
		case "hmid":
			mode = gg.StepHMid
		case "vmid":
			mode = gg.StepVMid
		default:
			return mode, &BadParamError{Name: name, Kind: kind}
		}
	}
	return mode, nil
}
