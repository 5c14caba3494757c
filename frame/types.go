// SPDX-License-Identifier: MIT

// Package frame: central Column and Frame types.
// This file declares Kind, Column, FloatColumn, StringColumn, Frame and the
// column constructors. Frame construction lives in frame.go; row and column
// operations live in methods_select.go and methods_mutate.go.
package frame

// Kind identifies the value type a Column stores.
type Kind int

const (
	// Float64 marks a numeric measurement column.
	Float64 Kind = iota

	// String marks a categorical column.
	String
)

// String returns a stable human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Column is a named, typed vector of values. Concrete implementations are
// FloatColumn and StringColumn; both keep their backing slice private and
// are copied, never shared, when a Frame is cloned or subset.
type Column interface {
	// Name returns the column name. Unique within a Frame.
	Name() string

	// Kind reports the stored value type.
	Kind() Kind

	// Len returns the number of values (== Frame.Len once attached).
	Len() int

	// clone returns a deep copy.
	clone() Column

	// take returns a deep copy restricted to the given row indices, in order.
	take(idx []int) Column
}

// FloatColumn is a named []float64 vector.
type FloatColumn struct {
	name string
	data []float64
}

// Floats constructs a FloatColumn from the given values. The slice is copied;
// later mutation of values does not affect the column.
func Floats(name string, values ...float64) *FloatColumn {
	d := make([]float64, len(values))
	copy(d, values)

	return &FloatColumn{name: name, data: d}
}

// Name returns the column name.
func (c *FloatColumn) Name() string { return c.name }

// Kind returns Float64.
func (c *FloatColumn) Kind() Kind { return Float64 }

// Len returns the number of values.
func (c *FloatColumn) Len() int { return len(c.data) }

func (c *FloatColumn) clone() Column {
	d := make([]float64, len(c.data))
	copy(d, c.data)

	return &FloatColumn{name: c.name, data: d}
}

func (c *FloatColumn) take(idx []int) Column {
	d := make([]float64, len(idx))
	for i, r := range idx {
		d[i] = c.data[r]
	}

	return &FloatColumn{name: c.name, data: d}
}

// StringColumn is a named []string vector.
type StringColumn struct {
	name string
	data []string
}

// Strings constructs a StringColumn from the given values. The slice is
// copied; later mutation of values does not affect the column.
func Strings(name string, values ...string) *StringColumn {
	d := make([]string, len(values))
	copy(d, values)

	return &StringColumn{name: name, data: d}
}

// Name returns the column name.
func (c *StringColumn) Name() string { return c.name }

// Kind returns String.
func (c *StringColumn) Kind() Kind { return String }

// Len returns the number of values.
func (c *StringColumn) Len() int { return len(c.data) }

func (c *StringColumn) clone() Column {
	d := make([]string, len(c.data))
	copy(d, c.data)

	return &StringColumn{name: c.name, data: d}
}

func (c *StringColumn) take(idx []int) Column {
	d := make([]string, len(idx))
	for i, r := range idx {
		d[i] = c.data[r]
	}

	return &StringColumn{name: c.name, data: d}
}

// Frame is the core in-memory tabular structure.
//
// Invariants (enforced by New and preserved by every method):
//   - every Column has identical length (rectangularity);
//   - column names are unique;
//   - byName maps each name to its position in cols.
type Frame struct {
	cols   []Column
	byName map[string]int
	opts   Options
}
