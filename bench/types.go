// SPDX-License-Identifier: MIT

// Package bench: Case, Summary, Report types and functional options.
package bench

import "time"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultRepetitions is the number of timed runs per case.
	DefaultRepetitions = 10

	// DefaultWarmup is the number of untimed runs before sampling starts.
	DefaultWarmup = 1
)

const (
	panicBadRepetitions = "bench: WithRepetitions: reps must be positive"
	panicBadWarmup      = "bench: WithWarmup: warmup must be non-negative"
)

// Case is a named function under test. Fn is invoked once per repetition;
// a non-nil error aborts the whole run.
type Case struct {
	Name string
	Fn   func() error
}

// Summary holds the per-case timing statistics over all repetitions.
type Summary struct {
	// Name is the case name, verbatim.
	Name string

	// Reps is the number of timed repetitions behind the statistics.
	Reps int

	// Mean, Median, Std, Min, Max summarize the per-repetition wall-clock
	// durations.
	Mean   time.Duration
	Median time.Duration
	Std    time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Report is the outcome of one Run: one Summary per case, in case order.
type Report struct {
	Summaries []Summary
}

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	reps   int
	warmup int
}

// WithRepetitions sets the number of timed runs per case.
// Panics with a stable message when reps <= 0.
func WithRepetitions(reps int) Option {
	if reps <= 0 {
		panic(panicBadRepetitions)
	}

	return func(o *Options) { o.reps = reps }
}

// WithWarmup sets the number of untimed runs before sampling.
// Panics with a stable message when warmup < 0.
func WithWarmup(warmup int) Option {
	if warmup < 0 {
		panic(panicBadWarmup)
	}

	return func(o *Options) { o.warmup = warmup }
}

// gatherOptions applies user setters on top of documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		reps:   DefaultRepetitions,
		warmup: DefaultWarmup,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
