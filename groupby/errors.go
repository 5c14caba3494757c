// SPDX-License-Identifier: MIT
// Package groupby: sentinel error set (unified, consistent).
// All operations return these sentinels (possibly wrapped with the operation
// name); tests check them via errors.Is. Frame-level failures (unknown
// column, kind mismatch) surface as the frame package's sentinels, wrapped.

package groupby

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFrame indicates a nil *frame.Frame argument.
	ErrNilFrame = errors.New("groupby: nil frame")

	// ErrEmptyGroup indicates TopBy was asked for a per-group maximum over an
	// empty frame. Aggregations over empty frames return empty frames instead.
	ErrEmptyGroup = errors.New("groupby: no rows to select from")

	// ErrUnknownStrategy indicates an out-of-range Strategy value reached
	// execution. WithStrategy panics earlier on programmer error; this
	// sentinel guards values smuggled past the constructor.
	ErrUnknownStrategy = errors.New("groupby: unknown strategy")
)

// groupbyErrorf wraps err with the failing operation name, preserving
// errors.Is matching against both this package's and frame's sentinels.
func groupbyErrorf(op string, err error) error {
	return fmt.Errorf("groupby: %s: %w", op, err)
}
