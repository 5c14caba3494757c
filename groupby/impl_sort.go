// SPDX-License-Identifier: MIT

// Package groupby: SortScan strategy.
package groupby

import "sort"

// groupSort aggregates by stable-sorting row indices by key, then scanning
// equal-key runs.
// Implementation:
//   - Stage 1: build the identity permutation and stable-sort it by key.
//     Stability keeps ties in source row order, so per-group accumulation
//     order matches the other strategies exactly.
//   - Stage 2: walk the sorted permutation; each change of key closes a run.
//
// vals may be nil for count-only aggregation. Output is naturally in
// lexicographic key order.
//
// Complexity: O(n log n) time, O(n) extra memory, no map.
func groupSort(keys []string, vals []float64) grouped {
	n := len(keys)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })

	var g grouped
	for i := 0; i < n; i++ {
		r := idx[i]
		if i == 0 || keys[r] != g.keys[len(g.keys)-1] {
			g.keys = append(g.keys, keys[r])
			g.sums = append(g.sums, 0)
			g.counts = append(g.counts, 0)
		}
		last := len(g.keys) - 1
		if vals != nil {
			g.sums[last] += vals[r]
		}
		g.counts[last]++
	}

	return g
}
