package groupby_test

import (
	"fmt"

	"github.com/katalvlaran/framekit/dataset"
	"github.com/katalvlaran/framekit/groupby"
)

// ExampleMean computes the mean weight per family over the five-row sample.
//
// Scenario:
//
//	canine holds the two Dog rows (22.5 and 30.1), every other family one
//	row. Groups come back in lexicographic order regardless of strategy.
func ExampleMean() {
	g, err := groupby.Mean(dataset.Animals(), "family", "weight")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fams, _ := g.Strings("family")
	ws, _ := g.Floats("weight")
	for i := range fams {
		fmt.Printf("%s %.1f\n", fams[i], ws[i])
	}
	// Output:
	// canine 26.3
	// equine 510.0
	// feline 4.2
	// leporid 2.1
}

// ExampleTopBy selects the tallest animal of each family — the
// nested-selection trick: one full source row per group.
func ExampleTopBy() {
	g, err := groupby.TopBy(dataset.Animals(), "family", "height")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sp, _ := g.Strings("species")
	hs, _ := g.Floats("height")
	for i := range sp {
		fmt.Printf("%s %.2f\n", sp[i], hs[i])
	}
	// Output:
	// Dog 0.62
	// Horse 1.65
	// Cat 0.25
	// Rabbit 0.18
}
