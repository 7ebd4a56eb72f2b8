// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/r4ds/ggplot2club/plotspec"
)

func testData() table.Grouping {
	return table.NewBuilder(nil).
		Add("x", []float64{1, 2}).
		Add("y", []float64{3, 4}).
		Done()
}

func TestParse(t *testing.T) {
	got, err := Parse([]byte(`
title = "fuel economy"
x_label = "displacement"
include_zero = true
palette = ["#ff0000", "#00ff00"]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := plotspec.Theme{
		Title:       "fuel economy",
		XLabel:      "displacement",
		IncludeZero: true,
		Palette: []color.Color{
			color.RGBA{R: 0xff, A: 0xff},
			color.RGBA{G: 0xff, A: 0xff},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %+v; got %+v", want, got)
	}
}

func TestParseBadColor(t *testing.T) {
	if _, err := Parse([]byte(`palette = ["red"]`)); err == nil {
		t.Errorf("want error for a non-hex palette color")
	}
}

func TestParseBadTOML(t *testing.T) {
	if _, err := Parse([]byte(`title = `)); err == nil {
		t.Errorf("want error for malformed TOML")
	}
}

func TestComposeOverridesPreset(t *testing.T) {
	// A file theme composed after the preset overwrites only the
	// fields it sets.
	over, err := Parse([]byte(`title = "mine"`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	spec := plotspec.New(testData(), nil).
		Compose(Default()).
		Compose(over)

	var th plotspec.Theme
	for _, l := range spec.Layers() {
		if tl, ok := l.(plotspec.Theme); ok {
			th = tl
		}
	}
	if th.Title != "mine" {
		t.Errorf("want overridden title; got %q", th.Title)
	}
	if len(th.Palette) == 0 {
		t.Errorf("preset palette should survive the override")
	}
}
