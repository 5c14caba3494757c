// Package bench is a small wall-clock benchmark harness: it times named
// cases over repeated runs and summarizes each case with mean, median,
// standard deviation, min and max.
//
// ✨ Key features:
//   - warmup runs excluded from the sample (WithWarmup)
//   - per-repetition wall-clock sampling; no averaging across reps
//   - cases run sequentially, in insertion order — no concurrency, so
//     timings are not polluted by scheduler noise between cases
//   - Report.Render prints a fixed-width comparison table
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/framekit/bench"
//
//	report, err := bench.Run([]bench.Case{
//	  {Name: "hash-scan", Fn: runHash},
//	  {Name: "sort-scan", Fn: runSort},
//	}, bench.WithRepetitions(30), bench.WithWarmup(3))
//	fmt.Println(report.Render())
//
// This harness complements, not replaces, testing.B: go test benchmarks
// measure library internals; bench drives user-facing comparisons whose
// per-repetition statistics must be reported, not reduced to one number.
package bench
