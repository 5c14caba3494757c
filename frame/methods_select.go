// SPDX-License-Identifier: MIT

// Package frame: row and column subsetting (Select, Filter, FilterEq, Head).
// All subsets are deep copies; the source Frame is never aliased or mutated.
package frame

// Select returns a new Frame containing only the named columns, in the
// order requested.
// Implementation:
//   - Stage 1: validate receiver and resolve every requested name.
//   - Stage 2: reject duplicate requests (the result must keep unique names).
//   - Stage 3: deep-copy the selected columns into a fresh Frame.
//
// Errors: ErrNilFrame, ErrColumnNotFound, ErrDuplicateColumn.
//
// Complexity: O(selected values).
func (f *Frame) Select(names ...string) (*Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}

	seen := make(map[string]struct{}, len(names))
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		i, ok := f.byName[name]
		if !ok {
			return nil, ErrColumnNotFound
		}
		if _, dup := seen[name]; dup {
			return nil, ErrDuplicateColumn
		}
		seen[name] = struct{}{}
		cols = append(cols, f.cols[i].clone())
	}

	return assemble(cols, f.opts), nil
}

// Filter returns a new Frame containing the rows for which pred returns true.
// Row order is preserved. pred receives the row index into the source Frame;
// use Floats/Strings to capture column views before filtering.
//
// Errors: ErrNilFrame, ErrNilPredicate.
//
// Complexity: O(rows × columns).
func (f *Frame) Filter(pred func(row int) bool) (*Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}

	idx := make([]int, 0, f.Len())
	for r := 0; r < f.Len(); r++ {
		if pred(r) {
			idx = append(idx, r)
		}
	}

	return f.takeRows(idx), nil
}

// FilterEq returns the rows whose value in the named String column equals
// value. This is the categorical-subsetting primitive: selecting "Dog" from
// the five-row sample returns exactly the two matching rows.
//
// Errors: ErrNilFrame, ErrColumnNotFound, ErrKindMismatch.
//
// Complexity: O(rows × columns).
func (f *Frame) FilterEq(name, value string) (*Frame, error) {
	keys, err := f.Strings(name)
	if err != nil {
		return nil, err
	}

	idx := make([]int, 0, len(keys))
	for r, k := range keys {
		if k == value {
			idx = append(idx, r)
		}
	}

	return f.takeRows(idx), nil
}

// Head returns the first n rows (all rows when n exceeds Len).
//
// Errors: ErrNilFrame, ErrBadCount (n < 0).
func (f *Frame) Head(n int) (*Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	if n < 0 {
		return nil, ErrBadCount
	}
	if n > f.Len() {
		n = f.Len()
	}

	idx := make([]int, n)
	for r := 0; r < n; r++ {
		idx[r] = r
	}

	return f.takeRows(idx), nil
}

// Take returns a new Frame built from the given source-row indices, in the
// order given. Indices may repeat; each occurrence copies the row again.
//
// Errors: ErrNilFrame, ErrRowOutOfRange.
//
// Complexity: O(len(idx) × columns).
func (f *Frame) Take(idx ...int) (*Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	n := f.Len()
	for _, r := range idx {
		if r < 0 || r >= n {
			return nil, ErrRowOutOfRange
		}
	}

	return f.takeRows(idx), nil
}

// takeRows builds a new Frame from the given source-row indices, in order.
func (f *Frame) takeRows(idx []int) *Frame {
	cols := make([]Column, len(f.cols))
	for i, c := range f.cols {
		cols[i] = c.take(idx)
	}

	return assemble(cols, f.opts)
}

// assemble wires pre-validated columns into a Frame without re-checking
// invariants. Callers must guarantee unique names and equal lengths.
func assemble(cols []Column, opts Options) *Frame {
	f := &Frame{
		cols:   cols,
		byName: make(map[string]int, len(cols)),
		opts:   opts,
	}
	for i, c := range cols {
		f.byName[c.Name()] = i
	}

	return f
}
