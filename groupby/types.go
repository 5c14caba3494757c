// SPDX-License-Identifier: MIT

// Package groupby: strategy enumeration.
package groupby

// Strategy controls how grouped aggregation is executed.
//
//   - HashScan  — one pass over the rows, accumulating into map-backed
//     buckets. Fastest on high-cardinality keys; allocates one accumulator
//     per group.
//   - SortScan  — stable-sort row indices by key, then scan equal-key runs.
//     No map at all; pays O(n log n) for the sort.
//   - IndexScan — build the full per-group row-index buckets first, then
//     aggregate each bucket. Costs O(n) extra memory but yields a reusable
//     grouping index shape (TopBy uses the same walk).
//
// All three produce numerically identical results: within each group the
// accumulation order is always the source row order, and groups are emitted
// in lexicographic key order.
type Strategy int

const (
	// HashScan mode: single pass, map-backed accumulators.
	HashScan Strategy = iota

	// SortScan mode: stable index sort, then run-length scan.
	SortScan

	// IndexScan mode: materialize row buckets, then aggregate per bucket.
	IndexScan
)

// String returns a stable strategy name for reports and logs.
func (s Strategy) String() string {
	switch s {
	case HashScan:
		return "hash-scan"
	case SortScan:
		return "sort-scan"
	case IndexScan:
		return "index-scan"
	default:
		return "unknown"
	}
}

// Strategies lists all selectable strategies in declaration order.
// Useful for benchmarks and equivalence checks that iterate every mode.
func Strategies() []Strategy {
	return []Strategy{HashScan, SortScan, IndexScan}
}
