// SPDX-License-Identifier: MIT

// Package bench: the run loop.
package bench

import "time"

// Run executes every case sequentially and returns the per-case summaries.
// Implementation:
//   - Stage 1: resolve options; validate the case list (names, functions).
//   - Stage 2: per case — warmup runs (untimed), then reps timed runs, one
//     wall-clock sample per repetition.
//   - Stage 3: summarize each sample set (mean/median/std/min/max).
//
// Cases run in insertion order, synchronously; nothing else executes between
// samples. A case error aborts the run with ErrCaseFailed — timings of a
// failing implementation are meaningless.
//
// Errors: ErrNoCases, ErrEmptyCaseName, ErrNilCaseFn, ErrCaseFailed.
//
// Complexity: O(cases × (warmup + reps)) invocations.
func Run(cases []Case, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)

	if len(cases) == 0 {
		return nil, ErrNoCases
	}
	for _, c := range cases {
		if c.Name == "" {
			return nil, ErrEmptyCaseName
		}
		if c.Fn == nil {
			return nil, ErrNilCaseFn
		}
	}

	report := &Report{Summaries: make([]Summary, 0, len(cases))}
	for _, c := range cases {
		for w := 0; w < o.warmup; w++ {
			if err := c.Fn(); err != nil {
				return nil, caseErrorf(c.Name, err)
			}
		}

		samples := make([]float64, o.reps) // seconds per repetition
		for r := 0; r < o.reps; r++ {
			start := time.Now()
			if err := c.Fn(); err != nil {
				return nil, caseErrorf(c.Name, err)
			}
			samples[r] = time.Since(start).Seconds()
		}

		report.Summaries = append(report.Summaries, summarize(c.Name, samples))
	}

	return report, nil
}

// summarize folds one case's per-repetition samples into a Summary.
func summarize(name string, samples []float64) Summary {
	lo, hi := minMax(samples)

	return Summary{
		Name:   name,
		Reps:   len(samples),
		Mean:   secondsToDuration(mean(samples)),
		Median: secondsToDuration(median(samples)),
		Std:    secondsToDuration(std(samples)),
		Min:    secondsToDuration(lo),
		Max:    secondsToDuration(hi),
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
