// SPDX-License-Identifier: MIT

// Package groupby: HashScan strategy.
package groupby

import "sort"

// groupHash aggregates with a single pass and map-backed accumulators.
// Implementation:
//   - Stage 1: one pass over rows; first sight of a key appends a bucket,
//     later rows accumulate into it. Per-group accumulation order is the
//     source row order.
//   - Stage 2: sort the first-seen bucket order into lexicographic key order
//     via an index permutation, then emit keys/sums/counts through it.
//
// vals may be nil for count-only aggregation.
//
// Determinism: map iteration never drives output; only insertion bookkeeping
// and the final sorted permutation do.
//
// Complexity: O(n + g log g) time for g groups, O(g) extra memory.
func groupHash(keys []string, vals []float64) grouped {
	order := make([]string, 0, defaultGroupHint)
	bucket := make(map[string]int, defaultGroupHint)
	sums := make([]float64, 0, defaultGroupHint)
	counts := make([]int, 0, defaultGroupHint)

	for r, k := range keys {
		i, ok := bucket[k]
		if !ok {
			i = len(order)
			bucket[k] = i
			order = append(order, k)
			sums = append(sums, 0)
			counts = append(counts, 0)
		}
		if vals != nil {
			sums[i] += vals[r]
		}
		counts[i]++
	}

	// Lexicographic emission via permutation over first-seen order.
	perm := make([]int, len(order))
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(a, b int) bool { return order[perm[a]] < order[perm[b]] })

	g := grouped{
		keys:   make([]string, len(order)),
		sums:   make([]float64, len(order)),
		counts: make([]int, len(order)),
	}
	for i, p := range perm {
		g.keys[i] = order[p]
		g.sums[i] = sums[p]
		g.counts[i] = counts[p]
	}

	return g
}
