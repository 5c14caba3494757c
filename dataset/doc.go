// Package dataset supplies the data the rest of the module operates on: the
// fixed five-row animal table and a deterministic synthetic generator for
// benchmark-scale inputs.
//
// The sample table:
//
//	species  weight  height  family
//	Dog      22.5    0.55    canine
//	Cat       4.2    0.25    feline
//	Dog      30.1    0.62    canine
//	Horse   510.0    1.65    equine
//	Rabbit    2.1    0.18    leporid
//
// Synthetic frames share the same four-column schema. Generation is fully
// deterministic: the same (n, seed) pair always yields the same frame, and
// seed==0 selects a fixed default stream. Weights and heights stay inside
// guaranteed-valid positive ranges.
package dataset
