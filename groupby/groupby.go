// SPDX-License-Identifier: MIT

// Package groupby: public aggregation surface.
//
// Exposed API:
//   - Mean(f, key, value)           -> one mean per group, column keeps value's name
//   - Sum(f, key, value)            -> one sum per group
//   - Count(f, key)                 -> group sizes in column "n"
//   - MeanRatio(f, key, num, den)   -> grouped mean of num/den in column "ratio"
//   - TopBy(f, key, by)             -> the argmax row of each group
//
// Determinism & Equivalence:
//   - Groups are emitted in lexicographic key order.
//   - Per-group accumulation follows source row order under every Strategy,
//     so all strategies return numerically identical frames.
package groupby

import "github.com/katalvlaran/framekit/frame"

// Operation name constants for unified error wrapping.
const (
	opMean      = "Mean"
	opSum       = "Sum"
	opCount     = "Count"
	opMeanRatio = "MeanRatio"
	opTopBy     = "TopBy"
)

// CountColumn is the name of the group-size column produced by Count.
const CountColumn = "n"

// RatioColumn is the name of the aggregate column produced by MeanRatio.
const RatioColumn = "ratio"

// grouped is the internal result shape shared by all strategies: one entry
// per distinct key, in lexicographic key order.
type grouped struct {
	keys   []string
	sums   []float64
	counts []int
}

// dispatch routes to the strategy implementation.
func dispatch(s Strategy, keys []string, vals []float64) (grouped, error) {
	switch s {
	case HashScan:
		return groupHash(keys, vals), nil
	case SortScan:
		return groupSort(keys, vals), nil
	case IndexScan:
		return groupIndex(keys, vals), nil
	default:
		return grouped{}, ErrUnknownStrategy
	}
}

// keyAndValues resolves the key column (String) and, when value is non-empty,
// the value column (Float64) of f.
func keyAndValues(f *frame.Frame, key, value string) ([]string, []float64, error) {
	if f == nil {
		return nil, nil, ErrNilFrame
	}
	keys, err := f.Strings(key)
	if err != nil {
		return nil, nil, err
	}
	if value == "" {
		return keys, nil, nil
	}
	vals, err := f.Floats(value)
	if err != nil {
		return nil, nil, err
	}

	return keys, vals, nil
}

// Mean computes the per-group mean of the named Float64 column.
// The result has one row per distinct key, lexicographically ordered, with
// columns [key, value] — the aggregate keeps the value column's name.
//
// Errors: ErrNilFrame, ErrUnknownStrategy, wrapped frame sentinels
// (ErrColumnNotFound, ErrKindMismatch).
//
// Complexity: strategy-dependent; see Strategy.
func Mean(f *frame.Frame, key, value string, opts ...Option) (*frame.Frame, error) {
	o := gatherOptions(opts...)

	keys, vals, err := keyAndValues(f, key, value)
	if err != nil {
		return nil, groupbyErrorf(opMean, err)
	}
	g, err := dispatch(o.strategy, keys, vals)
	if err != nil {
		return nil, groupbyErrorf(opMean, err)
	}

	means := make([]float64, len(g.keys))
	for i := range means {
		means[i] = g.sums[i] / float64(g.counts[i]) // counts are always >= 1
	}

	out, err := frame.New([]frame.Column{
		frame.Strings(key, g.keys...),
		frame.Floats(value, means...),
	})
	if err != nil {
		return nil, groupbyErrorf(opMean, err)
	}

	return out, nil
}

// Sum computes the per-group sum of the named Float64 column. Result shape
// mirrors Mean.
func Sum(f *frame.Frame, key, value string, opts ...Option) (*frame.Frame, error) {
	o := gatherOptions(opts...)

	keys, vals, err := keyAndValues(f, key, value)
	if err != nil {
		return nil, groupbyErrorf(opSum, err)
	}
	g, err := dispatch(o.strategy, keys, vals)
	if err != nil {
		return nil, groupbyErrorf(opSum, err)
	}

	out, err := frame.New([]frame.Column{
		frame.Strings(key, g.keys...),
		frame.Floats(value, g.sums...),
	})
	if err != nil {
		return nil, groupbyErrorf(opSum, err)
	}

	return out, nil
}

// Count reports group sizes in column CountColumn ("n").
//
// Errors: ErrNilFrame, ErrUnknownStrategy, wrapped frame sentinels; also
// ErrDuplicateColumn (wrapped) when the key column itself is named "n".
func Count(f *frame.Frame, key string, opts ...Option) (*frame.Frame, error) {
	o := gatherOptions(opts...)

	keys, _, err := keyAndValues(f, key, "")
	if err != nil {
		return nil, groupbyErrorf(opCount, err)
	}
	g, err := dispatch(o.strategy, keys, nil)
	if err != nil {
		return nil, groupbyErrorf(opCount, err)
	}

	ns := make([]float64, len(g.counts))
	for i, c := range g.counts {
		ns[i] = float64(c)
	}

	out, err := frame.New([]frame.Column{
		frame.Strings(key, g.keys...),
		frame.Floats(CountColumn, ns...),
	})
	if err != nil {
		return nil, groupbyErrorf(opCount, err)
	}

	return out, nil
}

// MeanRatio computes the grouped mean of the row-wise ratio num/den and
// returns it in column RatioColumn ("ratio"). This is the tutorial's
// canonical workload: mean weight-to-height ratio per family.
//
// Division follows IEEE-754: a zero denominator yields ±Inf in that row's
// ratio; callers wanting rejection should construct the source Frame with
// frame.WithValidateNaNInf and validate the derived column themselves.
func MeanRatio(f *frame.Frame, key, num, den string, opts ...Option) (*frame.Frame, error) {
	o := gatherOptions(opts...)

	keys, nums, err := keyAndValues(f, key, num)
	if err != nil {
		return nil, groupbyErrorf(opMeanRatio, err)
	}
	dens, err := f.Floats(den)
	if err != nil {
		return nil, groupbyErrorf(opMeanRatio, err)
	}

	ratio := make([]float64, len(nums))
	for i := range ratio {
		ratio[i] = nums[i] / dens[i]
	}

	g, err := dispatch(o.strategy, keys, ratio)
	if err != nil {
		return nil, groupbyErrorf(opMeanRatio, err)
	}

	means := make([]float64, len(g.keys))
	for i := range means {
		means[i] = g.sums[i] / float64(g.counts[i])
	}

	out, err := frame.New([]frame.Column{
		frame.Strings(key, g.keys...),
		frame.Floats(RatioColumn, means...),
	})
	if err != nil {
		return nil, groupbyErrorf(opMeanRatio, err)
	}

	return out, nil
}
