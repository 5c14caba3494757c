// SPDX-License-Identifier: MIT

// Package frameio: CSV reading and writing.
package frameio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/framekit/frame"
)

// ErrEmptyInput indicates CSV input without even a header row.
var ErrEmptyInput = errors.New("frameio: empty input")

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultComma is the field separator.
	DefaultComma = ','

	// DefaultInferTypes enables float-else-string column inference.
	DefaultInferTypes = true
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	comma      rune
	inferTypes bool
}

// WithComma sets the field separator (e.g. ';' or '\t').
func WithComma(comma rune) Option {
	return func(o *Options) { o.comma = comma }
}

// WithNoInference keeps every column as String, skipping numeric parsing.
func WithNoInference() Option {
	return func(o *Options) { o.inferTypes = false }
}

// gatherOptions applies user setters on top of documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		comma:      DefaultComma,
		inferTypes: DefaultInferTypes,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// ReadCSV parses CSV into a Frame.
// Implementation:
//   - Stage 1: read all records; the csv.Reader enforces rectangularity
//     (ragged rows error out). The first record is the header.
//   - Stage 2: per column, attempt float64 parsing of every value; a single
//     failure demotes the column to String (unless inference is off).
//   - Stage 3: assemble the Frame; duplicate header names surface as
//     frame.ErrDuplicateColumn.
//
// Errors: ErrEmptyInput, wrapped csv parse errors, frame construction
// sentinels.
//
// Complexity: O(rows × columns).
func ReadCSV(r io.Reader, opts ...Option) (*frame.Frame, error) {
	o := gatherOptions(opts...)

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("frameio: read: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := records[0]
	rows := records[1:]

	cols := make([]frame.Column, len(header))
	for j, name := range header {
		raw := make([]string, len(rows))
		for i, rec := range rows {
			raw[i] = rec[j]
		}

		if o.inferTypes {
			if vals, ok := parseFloats(raw); ok {
				cols[j] = frame.Floats(name, vals...)

				continue
			}
		}
		cols[j] = frame.Strings(name, raw...)
	}

	return frame.New(cols)
}

// parseFloats attempts to parse every value; ok is false on the first
// failure. Zero rows parse as an (empty) Float64 column.
func parseFloats(raw []string) ([]float64, bool) {
	vals := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}

	return vals, true
}

// WriteCSV writes the Frame as CSV: header row first, then one record per
// row. Float values use the shortest round-trippable representation
// (strconv 'g', precision -1), so ReadCSV(WriteCSV(f)) reproduces f.
//
// Errors: frame.ErrNilFrame, wrapped csv write errors.
//
// Complexity: O(rows × columns).
func WriteCSV(w io.Writer, f *frame.Frame, opts ...Option) error {
	if f == nil {
		return frame.ErrNilFrame
	}
	o := gatherOptions(opts...)

	cw := csv.NewWriter(w)
	cw.Comma = o.comma

	names := f.Names()
	if err := cw.Write(names); err != nil {
		return fmt.Errorf("frameio: write header: %w", err)
	}

	// Materialize per-column string views once.
	views := make([][]string, len(names))
	for j, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return err
		}
		switch c.Kind() {
		case frame.Float64:
			vals, ferr := f.Floats(name)
			if ferr != nil {
				return ferr
			}
			view := make([]string, len(vals))
			for i, v := range vals {
				view[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			views[j] = view
		case frame.String:
			vals, serr := f.Strings(name)
			if serr != nil {
				return serr
			}
			views[j] = vals
		}
	}

	record := make([]string, len(names))
	for i := 0; i < f.Len(); i++ {
		for j := range names {
			record[j] = views[j][i]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("frameio: write row %d: %w", i, err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("frameio: flush: %w", err)
	}

	return nil
}
