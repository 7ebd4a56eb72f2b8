// Copyright 2026 The ggplot2club Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotspec

import "fmt"

// A ColumnRef is a captured reference to either a named column of
// the data source or a literal value to inline. The zero ColumnRef
// is an unbound channel.
//
// Capture is explicit: Col binds by column name, Lit inlines a
// value. A function building a mapping on behalf of its caller
// forwards the caller's ColumnRef unchanged, so the binding the
// caller chose is the binding that renders.
type ColumnRef struct {
	col string
	val interface{}
	lit bool
}

// Col returns a ColumnRef bound to the named column. The name is
// resolved against the spec's data source at render time; a name
// that does not resolve is a render-time error, not a composition
// error.
func Col(name string) ColumnRef {
	return ColumnRef{col: name}
}

// Lit returns a ColumnRef that inlines val as a constant. The
// renderer materializes it as a constant column, so it can carry
// physical values such as a color.Color as well as data values.
func Lit(val interface{}) ColumnRef {
	return ColumnRef{val: val, lit: true}
}

// IsZero reports whether r is the zero ColumnRef, i.e. an unbound
// channel.
func (r ColumnRef) IsZero() bool {
	return !r.lit && r.col == ""
}

// Column returns the column name r is bound to. ok is false if r is
// a literal or unbound.
func (r ColumnRef) Column() (name string, ok bool) {
	return r.col, !r.lit && r.col != ""
}

// Value returns the literal value r inlines. ok is false if r is a
// column binding or unbound.
func (r ColumnRef) Value() (val interface{}, ok bool) {
	return r.val, r.lit
}

func (r ColumnRef) String() string {
	switch {
	case r.lit:
		return fmt.Sprintf("literal %v", r.val)
	case r.col == "":
		return "unbound"
	}
	return "column " + r.col
}
