// SPDX-License-Identifier: MIT
// Package: lvalign/frame
//
// column.go: typed columns.

package frame

import (
	"fmt"
	"math"
	"reflect"
)

// Kind is the storage type of a column.
type Kind uint8

// Column kinds. KindObject holds arbitrary, possibly mixed, values.
const (
	KindObject Kind = iota
	KindFloat
	KindInt
	KindBool
	KindString
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Column is a named, typed vector. Values are stored boxed so that object
// columns can hold heterogeneous data; typed constructors guarantee that every
// value of a float column is a float64, of an int column an int64, and so on.
// The zero Column is an empty object column with no name.
type Column struct {
	name   string
	kind   Kind
	values []any
}

// FloatColumn builds a KindFloat column.
func FloatColumn(name string, v ...float64) Column {
	vals := make([]any, len(v))
	for i, x := range v {
		vals[i] = x
	}

	return Column{name: name, kind: KindFloat, values: vals}
}

// IntColumn builds a KindInt column.
func IntColumn(name string, v ...int64) Column {
	vals := make([]any, len(v))
	for i, x := range v {
		vals[i] = x
	}

	return Column{name: name, kind: KindInt, values: vals}
}

// BoolColumn builds a KindBool column.
func BoolColumn(name string, v ...bool) Column {
	vals := make([]any, len(v))
	for i, x := range v {
		vals[i] = x
	}

	return Column{name: name, kind: KindBool, values: vals}
}

// StringColumn builds a KindString column.
func StringColumn(name string, v ...string) Column {
	vals := make([]any, len(v))
	for i, x := range v {
		vals[i] = x
	}

	return Column{name: name, kind: KindString, values: vals}
}

// ObjectColumn builds a KindObject column holding v as given.
func ObjectColumn(name string, v ...any) Column {
	vals := make([]any, len(v))
	copy(vals, v)

	return Column{name: name, kind: KindObject, values: vals}
}

// Name returns the column label.
func (c Column) Name() string { return c.name }

// Kind returns the storage kind.
func (c Column) Kind() Kind { return c.kind }

// Len returns the number of values.
func (c Column) Len() int { return len(c.values) }

// Value returns the i-th value. Panics on out-of-range i, like a slice index.
func (c Column) Value(i int) any { return c.values[i] }

// Values returns a copy of the values.
func (c Column) Values() []any {
	out := make([]any, len(c.values))
	copy(out, c.values)

	return out
}

// Floats returns the values as float64 when the column is KindFloat.
func (c Column) Floats() ([]float64, bool) {
	if c.kind != KindFloat {
		return nil, false
	}
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = v.(float64)
	}

	return out, true
}

// clone copies the value slice; boxed values themselves are immutable scalars
// for every typed kind, and object values are shared as the caller gave them.
func (c Column) clone() Column {
	return Column{name: c.name, kind: c.kind, values: c.Values()}
}

// take returns a column holding values at positions idx, in that order.
func (c Column) take(idx []int) Column {
	vals := make([]any, len(idx))
	for i, k := range idx {
		vals[i] = c.values[k]
	}

	return Column{name: c.name, kind: c.kind, values: vals}
}

// equal compares label, kind and values; NaN equals NaN.
func (c Column) equal(o Column) bool {
	if c.name != o.name || c.kind != o.kind || len(c.values) != len(o.values) {
		return false
	}
	for i := range c.values {
		if !valueEqual(c.values[i], o.values[i]) {
			return false
		}
	}

	return true
}

func valueEqual(a, b any) bool {
	fa, okA := a.(float64)
	fb, okB := b.(float64)
	if okA && okB {
		return fa == fb || (math.IsNaN(fa) && math.IsNaN(fb))
	}

	return reflect.DeepEqual(a, b)
}
