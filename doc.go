// Package framekit is your in-memory playground for wrangling small tabular
// datasets — typed columns, row subsetting, grouped aggregation, and a
// wall-clock harness for comparing equivalent implementations.
//
// 🚀 What is framekit?
//
//	A modern, deterministic, dependency-light library that brings together:
//		• Core primitives: typed columns, rectangular frames, safe cloning
//		• Subsetting: Select, Filter, FilterEq, Head, Take
//		• Mutation: WithColumn (copying) and AddWhere (in place)
//		• Grouped aggregation: Mean, Sum, Count, MeanRatio, TopBy —
//		  with three interchangeable strategies
//		• Data: the five-row animal sample and a seeded synthetic generator
//		• Benchmarking: repetition timing with mean/median/std summaries
//
// ✨ Why choose framekit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, deterministic output order
//   - Reproducible – fixed seeds yield identical frames on every platform
//
// Under the hood, everything is organized under these subpackages:
//
//	frame/   — the column-oriented table and its operations
//	groupby/ — per-group statistics and the strategy implementations
//	dataset/ — sample table and deterministic synthetic generation
//	bench/   — the wall-clock comparison harness
//	frameio/ — CSV reading and writing
//
// The cmd/framebench CLI ties it together: it runs the canonical workload
// (shift one family's weight, then compute the grouped mean weight/height
// ratio) under every strategy, verifies the results agree exactly, and
// prints the timing comparison.
//
//	go get github.com/katalvlaran/framekit
package framekit
