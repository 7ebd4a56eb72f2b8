// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotspec

import (
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func testData() table.Grouping {
	return table.NewBuilder(nil).
		Add("displ", []float64{1.8, 2.0, 2.8, 3.1}).
		Add("hwy", []float64{29, 31, 26, 27}).
		Add("class", []string{"compact", "compact", "midsize", "midsize"}).
		Done()
}

func de(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}

func shouldPanic(t *testing.T, re string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		}
		if s, ok := err.(string); !ok || !strings.Contains(s, re) {
			t.Fatalf("want panic matching %q; got %v", re, err)
		}
	}()
	f()
}

func TestComposeAssociative(t *testing.T) {
	base := New(testData(), Mapping{X: Col("displ"), Y: Col("hwy")})

	l1 := Layers{
		NewGeom(GeomPoints, nil, Style{}, nil),
		Scale{Channel: Y, Include: []float64{0}},
	}
	l2 := Layers{
		NewGeom(GeomLines, nil, Style{}, nil),
		Theme{Title: "engine size vs. mileage"},
	}

	a := base.Compose(l1).Compose(l2)
	b := base.Compose(append(append(Layers{}, l1...), l2...))
	if !de(a, b) {
		t.Errorf("split and combined composition disagree:\n%+v\n%+v", a, b)
	}
}

func TestComposeDoesNotMutateBase(t *testing.T) {
	base := New(testData(), Mapping{X: Col("displ")})
	base = base.Compose(NewGeom(GeomPoints, nil, Style{}, nil))

	before := base.Layers()
	base.Compose(Theme{Title: "t"}, NewGeom(GeomLines, nil, Style{}, nil))
	if after := base.Layers(); !de(before, after) {
		t.Errorf("Compose mutated base layers: before %v, after %v", before, after)
	}
}

func TestComposeFlattens(t *testing.T) {
	base := New(testData(), nil)
	g1 := NewGeom(GeomPoints, nil, Style{}, nil)
	g2 := NewGeom(GeomLines, nil, Style{}, nil)
	g3 := NewGeom(GeomArea, nil, Style{}, nil)

	nested := base.Compose(Layers{g1, g2}, g3)
	flat := base.Compose(g1, g2, g3)
	if !de(nested, flat) {
		t.Errorf("nested sequence composed differently from flat layers")
	}
	if n := len(nested.Layers()); n != 3 {
		t.Errorf("want 3 layers; got %d", n)
	}
}

func TestComposeSingleGeom(t *testing.T) {
	base := New(testData(), Mapping{X: Col("displ")})
	g := NewGeom(GeomSteps, nil,
		Style{Fill: color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}},
		Params{"bins": 100})

	spec := base.Compose(g)
	layers := spec.Layers()
	if len(layers) != 1 {
		t.Fatalf("want exactly 1 layer; got %d", len(layers))
	}
	got, ok := layers[0].(Geom)
	if !ok {
		t.Fatalf("want a Geom layer; got %T", layers[0])
	}
	if !de(got, g) {
		t.Errorf("composed geometry was altered:\nwant %+v\ngot  %+v", g, got)
	}
}

func TestThemeReplaceSemantics(t *testing.T) {
	base := New(testData(), nil)
	spec := base.
		Compose(Theme{Title: "first", XLabel: "displacement"}).
		Compose(NewGeom(GeomPoints, nil, Style{}, nil)).
		Compose(Theme{Title: "second", IncludeZero: true})

	var themes []Theme
	for _, l := range spec.Layers() {
		if th, ok := l.(Theme); ok {
			themes = append(themes, th)
		}
	}
	if len(themes) != 1 {
		t.Fatalf("want 1 theme layer; got %d", len(themes))
	}
	want := Theme{Title: "second", XLabel: "displacement", IncludeZero: true}
	if !de(themes[0], want) {
		t.Errorf("want merged theme %+v; got %+v", want, themes[0])
	}
}

func TestScaleReplaceByChannel(t *testing.T) {
	base := New(testData(), nil)
	spec := base.
		Compose(Scale{Channel: Y, Include: []float64{0}}).
		Compose(Scale{Channel: X, Transform: TransformLinear}).
		Compose(Scale{Channel: Y, Transform: TransformLinear, Include: []float64{0, 100}})

	var scales []Scale
	for _, l := range spec.Layers() {
		if sc, ok := l.(Scale); ok {
			scales = append(scales, sc)
		}
	}
	if len(scales) != 2 {
		t.Fatalf("want 2 scale layers; got %d", len(scales))
	}
	// The Y scale keeps its original position but holds the later
	// value.
	want := Scale{Channel: Y, Transform: TransformLinear, Include: []float64{0, 100}}
	if !de(scales[0], want) {
		t.Errorf("want replaced Y scale %+v; got %+v", want, scales[0])
	}
}

func TestStyleOverridePrecedence(t *testing.T) {
	pink := color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}

	g := NewGeom(GeomArea, nil, Style{Fill: pink}, nil)
	if g.Style.Fill != pink {
		t.Errorf("explicit fill should win over the kind default; got %v", g.Style.Fill)
	}

	g = NewGeom(GeomArea, nil, Style{}, nil)
	if want := (color.Gray{Y: 192}); g.Style.Fill != want {
		t.Errorf("want default area fill %v; got %v", want, g.Style.Fill)
	}
}

func TestWithMappingIsolation(t *testing.T) {
	base := New(testData(), Mapping{X: Col("displ"), Y: Col("hwy"), Fill: Col("class")})
	spec := base.WithMapping(Mapping{Y: Col("displ")})

	m := spec.Mapping()
	if got, _ := m[Y].Column(); got != "displ" {
		t.Errorf("want y rebound to displ; got %v", m[Y])
	}
	if got, _ := m[X].Column(); got != "displ" {
		t.Errorf("x binding disturbed: %v", m[X])
	}
	if got, _ := m[Fill].Column(); got != "class" {
		t.Errorf("fill binding disturbed: %v", m[Fill])
	}
	if got, _ := base.Mapping()[Y].Column(); got != "hwy" {
		t.Errorf("WithMapping mutated base: %v", base.Mapping()[Y])
	}
}

func TestWithDataRoundTrip(t *testing.T) {
	d1 := testData()
	d2 := table.NewBuilder(nil).
		Add("displ", []float64{5, 6}).
		Add("hwy", []float64{15, 12}).
		Done()

	base := New(d1, Mapping{X: Col("displ"), Y: Col("hwy")}).
		Compose(NewGeom(GeomPoints, nil, Style{}, nil))

	back := base.WithData(d2).WithData(d1)
	if !de(base, back) {
		t.Errorf("rebinding to the original data did not restore the spec")
	}
}

func TestPanics(t *testing.T) {
	shouldPanic(t, "nil data source", func() { New(nil, nil) })

	base := New(testData(), nil)
	shouldPanic(t, "nil data source", func() { base.WithData(nil) })
	shouldPanic(t, "nil element", func() { base.Compose(nil) })
	shouldPanic(t, "annotation without a data source", func() {
		base.Compose(Annotation{Kind: GeomTags})
	})
}
