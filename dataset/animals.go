// SPDX-License-Identifier: MIT

// Package dataset: the fixed five-row sample table.
package dataset

import "github.com/katalvlaran/framekit/frame"

// Animals returns the five-row toy table: two Dog rows, one Cat, one Horse,
// one Rabbit, with weight/height measurements and the derived family
// grouping. Each call builds a fresh Frame; callers may mutate freely.
func Animals() *frame.Frame {
	f, err := frame.New([]frame.Column{
		frame.Strings("species", "Dog", "Cat", "Dog", "Horse", "Rabbit"),
		frame.Floats("weight", 22.5, 4.2, 30.1, 510, 2.1),
		frame.Floats("height", 0.55, 0.25, 0.62, 1.65, 0.18),
		frame.Strings("family", "canine", "feline", "canine", "equine", "leporid"),
	})
	if err != nil {
		// The literal table satisfies every Frame invariant; a failure here
		// is a programmer error in this file.
		panic("dataset: Animals: " + err.Error())
	}

	return f
}
