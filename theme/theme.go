// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme builds plotspec theme layers from presets or TOML
// theme files.
//
// A theme file looks like:
//
//	title = "fuel economy"
//	x_label = "engine displacement (l)"
//	y_label = "highway mileage (mpg)"
//	include_zero = true
//	palette = ["#4e79a7", "#f28e2b", "#e15759"]
package theme

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/r4ds/ggplot2club/plotspec"
)

// Config is the on-disk theme format.
type Config struct {
	Title       string   `toml:"title"`
	XLabel      string   `toml:"x_label"`
	YLabel      string   `toml:"y_label"`
	Palette     []string `toml:"palette"`
	IncludeZero bool     `toml:"include_zero"`
}

// Theme converts c into a theme layer, parsing palette entries as
// #rrggbb hex colors.
func (c Config) Theme() (plotspec.Theme, error) {
	t := plotspec.Theme{
		Title:       c.Title,
		XLabel:      c.XLabel,
		YLabel:      c.YLabel,
		IncludeZero: c.IncludeZero,
	}
	for _, s := range c.Palette {
		col, err := parseHex(s)
		if err != nil {
			return plotspec.Theme{}, err
		}
		t.Palette = append(t.Palette, col)
	}
	return t, nil
}

// Load reads a TOML theme file.
func Load(path string) (plotspec.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return plotspec.Theme{}, err
	}
	return Parse(data)
}

// Parse decodes TOML theme data.
func Parse(data []byte) (plotspec.Theme, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return plotspec.Theme{}, fmt.Errorf("parsing theme: %w", err)
	}
	return c.Theme()
}

func parseHex(s string) (color.Color, error) {
	var r, g, b uint8
	if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
		return nil, fmt.Errorf("bad palette color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Default is a plain theme with a qualitative ten-color palette.
func Default() plotspec.Theme {
	return plotspec.Theme{Palette: tableau10()}
}

func tableau10() []color.Color {
	hexes := []string{
		"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
		"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
	}
	pal := make([]color.Color, len(hexes))
	for i, h := range hexes {
		c, err := parseHex(h)
		if err != nil {
			panic("bad built-in palette: " + h)
		}
		pal[i] = c
	}
	return pal
}
