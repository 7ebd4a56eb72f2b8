// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads tabular data sources for plot specs.
package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
)

// FromCSV reads CSV data with a header row into a table. Columns
// whose values all parse as numbers are coerced to numeric columns;
// everything else stays a string column.
func FromCSV(r io.Reader) (table.Grouping, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty CSV input")
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// OpenCSV reads the CSV file at path. See FromCSV.
func OpenCSV(path string) (table.Grouping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromCSV(f)
}

type car struct {
	Model string
	Displ float64
	Hwy   int
	Class string
}

// Mileage returns a small built-in fuel economy table, handy for
// examples and tests. Its columns are Model, Displ, Hwy, and Class.
func Mileage() table.Grouping {
	return table.TableFromStructs([]car{
		{"corolla", 1.8, 35, "compact"},
		{"civic", 1.6, 32, "compact"},
		{"sonata", 2.4, 31, "midsize"},
		{"passat", 2.0, 29, "midsize"},
		{"camry", 2.4, 31, "midsize"},
		{"caravan", 3.3, 22, "minivan"},
		{"mustang", 4.6, 23, "subcompact"},
		{"f150", 4.2, 17, "pickup"},
		{"ram 1500", 4.7, 15, "pickup"},
		{"forester", 2.5, 27, "suv"},
		{"explorer", 4.0, 19, "suv"},
		{"jetta", 1.9, 44, "compact"},
	})
}
