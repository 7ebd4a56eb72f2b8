// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotspec

import "sort"

// Visual channels a Mapping can bind. Channels not listed here are
// rejected at render time.
const (
	X       = "x"
	Y       = "y"
	Upper   = "upper" // upper bound of an area geometry
	Lower   = "lower" // lower bound of an area geometry
	Color   = "color" // stroke color
	Fill    = "fill"
	Opacity = "opacity"
	Size    = "size"
	Label   = "label" // text for tag and tooltip geometries
)

// A Mapping binds visual channels to column references. The nil
// Mapping binds nothing.
type Mapping map[string]ColumnRef

// Merge returns a new Mapping with the bindings of m overlaid by
// over: channels present in over replace m's binding for that
// channel, all other channels of m are preserved. Neither input is
// modified.
func (m Mapping) Merge(over Mapping) Mapping {
	if len(over) == 0 {
		return m.clone()
	}
	nm := make(Mapping, len(m)+len(over))
	for ch, ref := range m {
		nm[ch] = ref
	}
	for ch, ref := range over {
		nm[ch] = ref
	}
	return nm
}

// Channels returns the bound channel names in sorted order.
func (m Mapping) Channels() []string {
	chs := make([]string, 0, len(m))
	for ch := range m {
		chs = append(chs, ch)
	}
	sort.Strings(chs)
	return chs
}

func (m Mapping) clone() Mapping {
	if m == nil {
		return nil
	}
	nm := make(Mapping, len(m))
	for ch, ref := range m {
		nm[ch] = ref
	}
	return nm
}
