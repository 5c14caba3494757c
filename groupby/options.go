// SPDX-License-Identifier: MIT

// Package groupby: functional configuration.
// WithX constructors validate strictly (panic on nonsensical values —
// programmer error); gatherOptions resolves setters against documented
// defaults with last-writer-wins semantics.
package groupby

// DefaultStrategy is the aggregation mode used when none is requested.
const DefaultStrategy = HashScan

const panicUnknownStrategy = "groupby: WithStrategy: unknown strategy"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	strategy Strategy
}

// WithStrategy selects the aggregation strategy.
// Panics with a stable message on out-of-range values (programmer error).
func WithStrategy(s Strategy) Option {
	if s < HashScan || s > IndexScan {
		panic(panicUnknownStrategy)
	}

	return func(o *Options) { o.strategy = s }
}

// gatherOptions applies user setters on top of defaults.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		strategy: DefaultStrategy,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
