// SPDX-License-Identifier: MIT
// Package frame: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the frame
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package frame

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "frame: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilFrame indicates that a nil *Frame (receiver or argument) was used.
	ErrNilFrame = errors.New("frame: nil frame")

	// ErrEmptyColumnName indicates a column was constructed with an empty name.
	ErrEmptyColumnName = errors.New("frame: empty column name")

	// ErrDuplicateColumn indicates two columns share the same name within one
	// Frame, or a Select requested the same column twice.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrColumnNotFound indicates an operation referenced a non-existent column.
	ErrColumnNotFound = errors.New("frame: column not found")

	// ErrLengthMismatch indicates columns of differing lengths were combined
	// into one Frame, violating rectangularity.
	ErrLengthMismatch = errors.New("frame: column length mismatch")

	// ErrKindMismatch indicates an operation was applied to a column of the
	// wrong kind (e.g., Floats on a String column).
	ErrKindMismatch = errors.New("frame: column kind mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy.
	ErrNaNInf = errors.New("frame: NaN or Inf encountered")

	// ErrBadCount indicates a negative row count was requested.
	ErrBadCount = errors.New("frame: negative row count")

	// ErrNilPredicate indicates a nil row predicate was passed to Filter or
	// AddWhere.
	ErrNilPredicate = errors.New("frame: nil predicate")

	// ErrRowOutOfRange indicates that a row index is outside [0, Len).
	ErrRowOutOfRange = errors.New("frame: row index out of range")
)
