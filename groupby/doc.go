// Package groupby computes per-group summary statistics over a frame.Frame,
// with three interchangeable aggregation strategies and a per-group
// argmax selector.
//
// 🚀 What is groupby?
//
//	Grouped aggregation: one summary row per distinct value of a String key
//	column. The package provides:
//	  • Mean / Sum / Count per group
//	  • MeanRatio — grouped mean of a row-wise ratio (weight/height style)
//	  • TopBy — the row holding the per-group maximum of a numeric column
//
// ✨ Key features:
//   - three equivalent strategies, chosen via WithStrategy:
//     HashScan  — single pass, map-backed accumulators
//     SortScan  — stable sort of row indices by key, then run-length scan
//     IndexScan — build per-group row buckets once, then aggregate each
//   - all strategies produce numerically identical results: per-group
//     accumulation always follows source row order
//   - deterministic output: groups are emitted in lexicographic key order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/framekit/groupby"
//
//	g, err := groupby.Mean(f, "family", "weight",
//	  groupby.WithStrategy(groupby.SortScan))
//
// Performance:
//
//   - HashScan:  O(n) time, O(groups) extra memory
//   - SortScan:  O(n log n) time, O(n) extra memory, no map
//   - IndexScan: O(n) time, O(n) extra memory (full row buckets)
//
// See example_test.go for runnable walkthroughs and bench_test.go for the
// strategy comparison on synthetic data.
package groupby
