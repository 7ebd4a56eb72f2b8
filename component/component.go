// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package component provides reusable plot components: functions
// that assemble one or more plotspec layers for a common kind of
// visualization, with sensible defaults the caller can override.
//
// Components take their data columns as plotspec.ColumnRef values
// and forward them unchanged into the mappings they build, so the
// caller's column choice is what renders. Each component returns a
// plotspec.Layers value that composes as a unit.
package component

import (
	"fmt"

	"github.com/r4ds/ggplot2club/plotspec"
)

// mustColumn returns the column name ref is bound to, or panics.
// Components compute derived columns from their inputs, so they
// need column bindings, not literals.
func mustColumn(component, param string, ref plotspec.ColumnRef) string {
	name, ok := ref.Column()
	if !ok {
		panic(fmt.Sprintf("component.%s: %s must be a column reference, not %s",
			component, param, ref))
	}
	return name
}
