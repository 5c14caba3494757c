// SPDX-License-Identifier: MIT

// Package frame: functional configuration for Frame construction and its
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: sentinels for user errors, never panics here.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package frame

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in gatherOptions.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Frame
	// construction and on WithColumn/AddWhere ingestion. The tutorial data is
	// hand-authored and synthetic generation stays within valid ranges, so
	// validation is off unless requested.
	DefaultValidateNaNInf = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-field-only to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf enables strict finite-value validation: New, WithColumn
// and AddWhere reject NaN and ±Inf in Float64 columns with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
