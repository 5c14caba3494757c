// SPDX-License-Identifier: MIT

// Package frame: Frame construction, accessors and cloning.
package frame

import "math"

// New constructs a Frame from the given columns.
// Implementation:
//   - Stage 1: resolve options against documented defaults.
//   - Stage 2: validate names (non-empty, unique) and rectangularity.
//   - Stage 3: deep-copy every column so the Frame owns its storage.
//
// Inputs:
//   - cols: columns in presentation order; may be empty (zero-width Frame).
//   - opts: functional options (numeric policy).
//
// Returns:
//   - *Frame: the constructed table.
//
// Errors:
//   - ErrEmptyColumnName, ErrDuplicateColumn, ErrLengthMismatch,
//     ErrNaNInf (only under WithValidateNaNInf).
//
// Complexity: O(total values).
func New(cols []Column, opts ...Option) (*Frame, error) {
	o := gatherOptions(opts...)

	f := &Frame{
		cols:   make([]Column, 0, len(cols)),
		byName: make(map[string]int, len(cols)),
		opts:   o,
	}

	n := -1 // row count of the first column; -1 until seen
	for _, c := range cols {
		if c.Name() == "" {
			return nil, ErrEmptyColumnName
		}
		if _, dup := f.byName[c.Name()]; dup {
			return nil, ErrDuplicateColumn
		}
		if n == -1 {
			n = c.Len()
		} else if c.Len() != n {
			return nil, ErrLengthMismatch
		}
		if o.validateNaNInf {
			if err := validateFinite(c); err != nil {
				return nil, err
			}
		}

		f.byName[c.Name()] = len(f.cols)
		f.cols = append(f.cols, c.clone())
	}

	return f, nil
}

// validateFinite rejects NaN/±Inf values in Float64 columns.
func validateFinite(c Column) error {
	fc, ok := c.(*FloatColumn)
	if !ok {
		return nil
	}
	for _, v := range fc.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// Len returns the number of rows. A zero-width Frame has zero rows.
func (f *Frame) Len() int {
	if f == nil || len(f.cols) == 0 {
		return 0
	}

	return f.cols[0].Len()
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	if f == nil {
		return 0
	}

	return len(f.cols)
}

// Names returns the column names in presentation order.
// The returned slice is a copy; the caller may mutate it freely.
func (f *Frame) Names() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.Name()
	}

	return out
}

// Column returns the named column.
//
// Errors: ErrNilFrame, ErrColumnNotFound.
func (f *Frame) Column(name string) (Column, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	i, ok := f.byName[name]
	if !ok {
		return nil, ErrColumnNotFound
	}

	return f.cols[i], nil
}

// Floats returns the backing []float64 of the named Float64 column.
// The slice is live: writes through it mutate the Frame. It should be used
// carefully and read-only unless in-place mutation is intended.
//
// Errors: ErrNilFrame, ErrColumnNotFound, ErrKindMismatch.
func (f *Frame) Floats(name string) ([]float64, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	fc, ok := c.(*FloatColumn)
	if !ok {
		return nil, ErrKindMismatch
	}

	return fc.data, nil
}

// Strings returns the backing []string of the named String column.
// The slice is live: writes through it mutate the Frame. It should be used
// carefully and read-only unless in-place mutation is intended.
//
// Errors: ErrNilFrame, ErrColumnNotFound, ErrKindMismatch.
func (f *Frame) Strings(name string) ([]string, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	sc, ok := c.(*StringColumn)
	if !ok {
		return nil, ErrKindMismatch
	}

	return sc.data, nil
}

// CloneEmpty returns a new Frame with the same schema (column names, kinds,
// options) but zero rows.
func (f *Frame) CloneEmpty() *Frame {
	if f == nil {
		return nil
	}

	clone := &Frame{
		cols:   make([]Column, len(f.cols)),
		byName: make(map[string]int, len(f.byName)),
		opts:   f.opts,
	}
	for i, c := range f.cols {
		clone.cols[i] = c.take(nil)
		clone.byName[c.Name()] = i
	}

	return clone
}

// Clone returns a deep copy of the Frame: all columns and values.
// The copy shares no storage with the original.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}

	clone := &Frame{
		cols:   make([]Column, len(f.cols)),
		byName: make(map[string]int, len(f.byName)),
		opts:   f.opts,
	}
	for i, c := range f.cols {
		clone.cols[i] = c.clone()
		clone.byName[c.Name()] = i
	}

	return clone
}
