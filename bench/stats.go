// SPDX-License-Identifier: MIT

// Package bench: timing statistics. Single-pass mean/variance plus median
// over a sorted copy; inputs are per-repetition durations in seconds.
package bench

import (
	"math"
	"sort"
)

// mean computes the average of x; 0 for an empty slice.
func mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}

	return sum / float64(n)
}

// std computes the population standard deviation of x in a single pass.
func std(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	sum, sumSq := 0.0, 0.0
	for _, v := range x {
		sum += v
		sumSq += v * v
	}
	m := sum / n
	variance := (sumSq / n) - (m * m)
	if variance < 0 {
		variance = 0 // clamp numeric noise on near-constant samples
	}

	return math.Sqrt(variance)
}

// median returns the middle value of x (mean of the middle two for even
// lengths). Allocates a sorted copy; x itself is never reordered.
func median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)

	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5
	}

	return cp[mid]
}

// minMax returns the smallest and largest values of x; (0, 0) when empty.
func minMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}

	return lo, hi
}
