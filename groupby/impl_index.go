// SPDX-License-Identifier: MIT

// Package groupby: IndexScan strategy.
package groupby

import "sort"

// defaultGroupHint sizes initial bucket storage; groups are typically few
// relative to rows in the workloads this package serves.
const defaultGroupHint = 16

// buildIndex materializes the per-group row-index buckets.
// Bucket contents preserve source row order (append order). Returned key
// list is sorted lexicographically.
//
// Complexity: O(n + g log g) time, O(n) extra memory.
func buildIndex(keys []string) ([]string, map[string][]int) {
	buckets := make(map[string][]int, defaultGroupHint)
	names := make([]string, 0, defaultGroupHint)
	for r, k := range keys {
		rows, ok := buckets[k]
		if !ok {
			names = append(names, k)
		}
		buckets[k] = append(rows, r)
	}
	sort.Strings(names)

	return names, buckets
}

// groupIndex aggregates by building the full grouping index first, then
// folding each bucket.
// Implementation:
//   - Stage 1: buildIndex — one pass to bucket row indices per key.
//   - Stage 2: fold every bucket in lexicographic key order; within a
//     bucket, rows are visited in source order, matching the accumulation
//     order of the other strategies.
//
// vals may be nil for count-only aggregation.
//
// Complexity: O(n + g log g) time, O(n) extra memory.
func groupIndex(keys []string, vals []float64) grouped {
	names, buckets := buildIndex(keys)

	g := grouped{
		keys:   names,
		sums:   make([]float64, len(names)),
		counts: make([]int, len(names)),
	}
	for i, k := range names {
		rows := buckets[k]
		if vals != nil {
			for _, r := range rows {
				g.sums[i] += vals[r]
			}
		}
		g.counts[i] = len(rows)
	}

	return g
}
