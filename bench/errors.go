// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCases indicates Run was called with an empty case list.
	ErrNoCases = errors.New("bench: no cases to run")

	// ErrNilCaseFn indicates a Case without a function under test.
	ErrNilCaseFn = errors.New("bench: nil case function")

	// ErrEmptyCaseName indicates a Case without a name; summaries would be
	// indistinguishable in the report.
	ErrEmptyCaseName = errors.New("bench: empty case name")

	// ErrCaseFailed wraps the first error a case function returned; the run
	// aborts on it (a failing implementation has no meaningful timing).
	ErrCaseFailed = errors.New("bench: case failed")
)

// caseErrorf attaches the case name and underlying error to ErrCaseFailed,
// keeping errors.Is matching on the sentinel.
func caseErrorf(name string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrCaseFailed, name, err)
}
