// SPDX-License-Identifier: MIT

// Package groupby: per-group argmax selection (the nested-selection trick:
// "the row with the maximum height per family").
package groupby

import "github.com/katalvlaran/framekit/frame"

// TopBy returns one full row per group: the row holding the maximum value of
// the Float64 column by within each group of the String column key.
// Implementation:
//   - Stage 1: resolve key and by columns; reject empty frames.
//   - Stage 2: buildIndex, then scan each bucket for its argmax. Ties keep
//     the earliest row (strict > comparison).
//   - Stage 3: Take the winner rows in lexicographic group order.
//
// Returns a Frame with the source's full schema, one row per group.
//
// Errors: ErrNilFrame, ErrEmptyGroup, wrapped frame sentinels.
//
// Complexity: O(n + g log g) time, O(n) extra memory.
func TopBy(f *frame.Frame, key, by string) (*frame.Frame, error) {
	keys, vals, err := keyAndValues(f, key, by)
	if err != nil {
		return nil, groupbyErrorf(opTopBy, err)
	}
	if len(keys) == 0 {
		return nil, groupbyErrorf(opTopBy, ErrEmptyGroup)
	}

	names, buckets := buildIndex(keys)

	winners := make([]int, len(names))
	for i, k := range names {
		rows := buckets[k]
		best := rows[0]
		for _, r := range rows[1:] {
			if vals[r] > vals[best] {
				best = r
			}
		}
		winners[i] = best
	}

	out, err := f.Take(winners...)
	if err != nil {
		return nil, groupbyErrorf(opTopBy, err)
	}

	return out, nil
}
