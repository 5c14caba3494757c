// SPDX-License-Identifier: MIT

// Package dataset: deterministic synthetic frames for benchmark-scale input.
package dataset

import (
	"errors"

	"github.com/katalvlaran/framekit/frame"
)

// ErrBadRowCount indicates a negative row count was requested.
var ErrBadRowCount = errors.New("dataset: negative row count")

// Value ranges for generated measurements. Both are strictly positive, so
// ratios and grouped means are always finite (guaranteed-valid ranges).
const (
	minWeight = 1.0
	maxWeight = 100.0
	minHeight = 0.1
	maxHeight = 2.0
)

// Stream identifiers for independent RNG substreams, one per random column.
const (
	streamSpecies uint64 = iota + 1
	streamWeight
	streamHeight
)

// speciesPool lists the categorical draw space; familyOf derives the
// grouping column the same way the sample table does.
var speciesPool = []string{"Dog", "Cat", "Horse", "Rabbit", "Sheep", "Goat"}

var familyOf = map[string]string{
	"Dog":    "canine",
	"Cat":    "feline",
	"Horse":  "equine",
	"Rabbit": "leporid",
	"Sheep":  "bovid",
	"Goat":   "bovid",
}

// Synthetic generates n rows with the sample schema: random species (family
// derived), weight in [1,100), height in [0.1,2.0).
// Implementation:
//   - Stage 1: validate n; n==0 yields an empty frame with the full schema.
//   - Stage 2: derive one independent RNG stream per random column from the
//     seed, so column draws never interleave — adding a column to the schema
//     cannot silently reshuffle existing ones.
//   - Stage 3: fill columns and assemble the Frame.
//
// Determinism: same (n, seed) ⇒ identical frame; seed==0 uses the fixed
// default stream (see rng.go).
//
// Errors: ErrBadRowCount.
//
// Complexity: O(n) time and memory.
func Synthetic(n int, seed int64) (*frame.Frame, error) {
	if n < 0 {
		return nil, ErrBadRowCount
	}

	specRNG := deriveRNG(seed, streamSpecies)
	weightRNG := deriveRNG(seed, streamWeight)
	heightRNG := deriveRNG(seed, streamHeight)

	species := make([]string, n)
	family := make([]string, n)
	weight := make([]float64, n)
	height := make([]float64, n)
	for i := 0; i < n; i++ {
		s := speciesPool[specRNG.Intn(len(speciesPool))]
		species[i] = s
		family[i] = familyOf[s]
		weight[i] = minWeight + weightRNG.Float64()*(maxWeight-minWeight)
		height[i] = minHeight + heightRNG.Float64()*(maxHeight-minHeight)
	}

	return frame.New([]frame.Column{
		frame.Strings("species", species...),
		frame.Floats("weight", weight...),
		frame.Floats("height", height...),
		frame.Strings("family", family...),
	})
}
