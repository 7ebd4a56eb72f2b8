// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"github.com/aclements/go-gg/gg"

	"github.com/r4ds/ggplot2club/plotspec"
)

// aesFor maps a plotspec channel to the engine aesthetic it scales.
// The color channel scales the engine's stroke aesthetic.
func aesFor(ch string) (string, bool) {
	switch ch {
	case plotspec.X, plotspec.Y, plotspec.Fill, plotspec.Opacity, plotspec.Size:
		return ch, true
	case plotspec.Color:
		return "stroke", true
	}
	// Upper, lower and label carry data, not scalable aesthetics.
	return "", false
}

func applyScale(p *gg.Plot, sc plotspec.Scale) error {
	aes, ok := aesFor(sc.Channel)
	if !ok {
		return fmt.Errorf("channel %q cannot carry a scale", sc.Channel)
	}

	var scaler gg.Scaler
	switch sc.Transform {
	case plotspec.TransformDefault:
		if len(sc.Palette) > 0 && sc.Min == nil && sc.Max == nil && len(sc.Include) == 0 {
			// A bare palette means a discrete color scale.
			scaler = gg.NewOrdinalScale()
			break
		}
		fallthrough
	case plotspec.TransformLinear:
		s := gg.NewLinearScaler()
		if sc.Min != nil {
			s = s.SetMin(*sc.Min)
		}
		if sc.Max != nil {
			s = s.SetMax(*sc.Max)
		}
		for _, v := range sc.Include {
			s = s.Include(v)
		}
		scaler = s

	case plotspec.TransformTime:
		scaler = gg.NewTimeScaler()

	case plotspec.TransformOrdinal:
		scaler = gg.NewOrdinalScale()

	case plotspec.TransformIdentity:
		scaler = gg.NewIdentityScale()

	default:
		return fmt.Errorf("unknown transform %s", sc.Transform)
	}

	if len(sc.Palette) > 0 {
		scaler.Ranger(gg.NewColorRanger(sc.Palette))
	}
	p.SetScale(aes, scaler)
	return nil
}

func applyTheme(p *gg.Plot, t plotspec.Theme) {
	if t.Title != "" {
		p.Add(gg.Title(t.Title))
	}
	if t.XLabel != "" {
		p.Add(gg.AxisLabel("x", t.XLabel))
	}
	if t.YLabel != "" {
		p.Add(gg.AxisLabel("y", t.YLabel))
	}
	if t.IncludeZero {
		p.SetScale("y", gg.NewLinearScaler().Include(0))
	}
	if len(t.Palette) > 0 {
		// Set the output range of the color scales while leaving
		// the scale type to be inferred from the data. Physical
		// color constants train an identity scale, which ignores
		// the ranger, so they keep their exact color. A Scale
		// layer for the same channel overrides this.
		for _, aes := range []string{"fill", "stroke"} {
			p.GetScale(aes).Ranger(gg.NewColorRanger(t.Palette))
		}
	}
}
