// SPDX-License-Identifier: MIT

// Package frame: column mutation. The tutorial compares two mutation styles
// and frame keeps both: WithColumn builds a modified copy, AddWhere updates
// the receiver in place.
package frame

import "math"

// WithColumn returns a copy of the Frame with col added, or replacing an
// existing column of the same name at its original position.
// Implementation:
//   - Stage 1: validate receiver, name, length against rectangularity.
//   - Stage 2: clone the Frame, then splice the (cloned) column in.
//
// Errors:
//   - ErrNilFrame, ErrEmptyColumnName,
//   - ErrLengthMismatch (col.Len() != f.Len(), unless the Frame is zero-width),
//   - ErrNaNInf (only under WithValidateNaNInf).
//
// Complexity: O(total values).
func (f *Frame) WithColumn(col Column) (*Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	if col.Name() == "" {
		return nil, ErrEmptyColumnName
	}
	if len(f.cols) > 0 && col.Len() != f.Len() {
		return nil, ErrLengthMismatch
	}
	if f.opts.validateNaNInf {
		if err := validateFinite(col); err != nil {
			return nil, err
		}
	}

	clone := f.Clone()
	if i, ok := clone.byName[col.Name()]; ok {
		clone.cols[i] = col.clone() // replace in place, keep position
	} else {
		clone.byName[col.Name()] = len(clone.cols)
		clone.cols = append(clone.cols, col.clone())
	}

	return clone, nil
}

// AddWhere adds delta to the named Float64 column on every row for which
// pred returns true, mutating the Frame in place. It returns the number of
// rows changed. This is the "add 7 to one group's weight" primitive.
//
// Errors:
//   - ErrNilFrame, ErrColumnNotFound, ErrKindMismatch, ErrNilPredicate,
//   - ErrNaNInf when delta is NaN/±Inf under WithValidateNaNInf.
//
// Complexity: O(rows).
func (f *Frame) AddWhere(name string, delta float64, pred func(row int) bool) (int, error) {
	if f == nil {
		return 0, ErrNilFrame
	}
	if pred == nil {
		return 0, ErrNilPredicate
	}
	if f.opts.validateNaNInf && (math.IsNaN(delta) || math.IsInf(delta, 0)) {
		return 0, ErrNaNInf
	}

	vals, err := f.Floats(name)
	if err != nil {
		return 0, err
	}

	changed := 0
	for r := range vals {
		if pred(r) {
			vals[r] += delta
			changed++
		}
	}

	return changed, nil
}
