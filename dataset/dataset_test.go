// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestFromCSV(t *testing.T) {
	g, err := FromCSV(strings.NewReader(`model,displ,hwy
corolla,1.8,35
civic,1.6,32
`))
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}

	want := []string{"model", "displ", "hwy"}
	if got := g.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("want columns %v; got %v", want, got)
	}

	// Numeric columns are coerced.
	tab := g.Table(table.RootGroupID)
	if got := tab.MustColumn("displ"); !reflect.DeepEqual(got, []float64{1.8, 1.6}) {
		t.Errorf("want coerced displ column; got %#v", got)
	}
	if got := tab.MustColumn("model"); !reflect.DeepEqual(got, []string{"corolla", "civic"}) {
		t.Errorf("want string model column; got %#v", got)
	}
}

func TestFromCSVEmpty(t *testing.T) {
	if _, err := FromCSV(strings.NewReader("")); err == nil {
		t.Errorf("want error for empty input")
	}
}

func TestFromCSVRagged(t *testing.T) {
	_, err := FromCSV(strings.NewReader("a,b\n1\n"))
	if err == nil {
		t.Errorf("want error for ragged rows")
	}
}

func TestMileage(t *testing.T) {
	g := Mileage()
	want := []string{"Model", "Displ", "Hwy", "Class"}
	if got := g.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("want columns %v; got %v", want, got)
	}
	if n := g.Table(table.RootGroupID).Len(); n == 0 {
		t.Errorf("built-in table is empty")
	}
}
