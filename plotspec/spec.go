// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotspec

import (
	"log"
	"os"

	"github.com/aclements/go-gg/table"
)

// Warning is a logger for reporting conditions that don't prevent
// composition, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[plotspec] ", log.Lshortfile)

// A PlotSpec is a complete, immutable plot specification: a data
// source, a mapping from visual channels to column references, and
// an ordered layer sequence. All methods return a new PlotSpec and
// leave the receiver unchanged.
type PlotSpec struct {
	data    table.Grouping
	mapping Mapping
	layers  []Layer
}

// New returns a PlotSpec over data with the given channel mapping
// and no layers. data must be non-nil; m may be nil, in which case
// every geometry must bring its own mapping.
func New(data table.Grouping, m Mapping) *PlotSpec {
	if data == nil {
		panic("plotspec.New: nil data source")
	}
	return &PlotSpec{
		data:    data,
		mapping: m.clone(),
	}
}

// Data returns the spec's data source.
func (s *PlotSpec) Data() table.Grouping {
	return s.data
}

// Mapping returns a copy of the spec's channel mapping.
func (s *PlotSpec) Mapping() Mapping {
	return s.mapping.clone()
}

// Layers returns a copy of the spec's layer sequence.
func (s *PlotSpec) Layers() []Layer {
	return append([]Layer(nil), s.layers...)
}

// Compose returns a new spec with the given elements appended, in
// order, to s's layer sequence. Layers sequences are flattened, so
// composing one element that expands to several layers is the same
// as composing those layers one at a time.
//
// Geometries and annotations stack. Themes do not: a second theme
// overwrites the conflicting fields of the one already in the spec.
// Likewise a scale for a channel that already has one replaces the
// earlier scale in place.
func (s *PlotSpec) Compose(elements ...Element) *PlotSpec {
	var flat []Layer
	for _, el := range elements {
		if el == nil {
			panic("plotspec.Compose: nil element")
		}
		flat = el.appendTo(flat)
	}

	ns := s.shallowCopy()
	for _, l := range flat {
		ns.place(l)
	}
	return ns
}

// place appends l to ns.layers, applying the replace semantics for
// themes and same-channel scales. ns must be freshly copied and not
// yet shared.
func (ns *PlotSpec) place(l Layer) {
	switch l := l.(type) {
	case Theme:
		for i, prev := range ns.layers {
			if pt, ok := prev.(Theme); ok {
				ns.layers[i] = pt.merge(l)
				return
			}
		}
	case Scale:
		for i, prev := range ns.layers {
			if ps, ok := prev.(Scale); ok && ps.Channel == l.Channel {
				ns.layers[i] = l
				return
			}
		}
	case Annotation:
		if l.Data == nil {
			panic("plotspec.Compose: annotation without a data source")
		}
	}
	ns.layers = append(ns.layers, l)
}

// WithData returns a new spec bound to data, preserving the mapping
// and layers. The mapping's column references are not revalidated
// here; a reference the new data cannot satisfy fails at render
// time. Rebinding back to the original data restores the original
// spec.
func (s *PlotSpec) WithData(data table.Grouping) *PlotSpec {
	if data == nil {
		panic("plotspec.WithData: nil data source")
	}
	ns := s.shallowCopy()
	ns.data = data
	return ns
}

// WithMapping returns a new spec whose mapping is s's mapping
// overlaid by over: channels present in over replace the existing
// binding, all others are preserved. Overriding a channel the spec
// never bound is allowed but logged, since it usually indicates a
// misspelled channel name.
func (s *PlotSpec) WithMapping(over Mapping) *PlotSpec {
	for ch := range over {
		if _, ok := s.mapping[ch]; !ok {
			Warning.Printf("override for unbound channel %q", ch)
		}
	}
	ns := s.shallowCopy()
	ns.mapping = s.mapping.Merge(over)
	return ns
}

func (s *PlotSpec) shallowCopy() *PlotSpec {
	return &PlotSpec{
		data:    s.data,
		mapping: s.mapping,
		layers:  append([]Layer(nil), s.layers...),
	}
}
