package groupby_test

import (
	"testing"

	"github.com/katalvlaran/framekit/dataset"
	"github.com/katalvlaran/framekit/groupby"
)

// benchmarkMeanRatio times the canonical workload — grouped mean
// weight/height ratio — on n synthetic rows under the given strategy.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkMeanRatio(b *testing.B, n int, s groupby.Strategy) {
	f, err := dataset.Synthetic(n, 42)
	if err != nil {
		b.Fatalf("Synthetic failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = groupby.MeanRatio(f, "family", "weight", "height", groupby.WithStrategy(s)); err != nil {
			b.Fatalf("MeanRatio failed: %v", err)
		}
	}
}

// BenchmarkMeanRatio_HashScanSmall benchmarks HashScan on 10k rows.
func BenchmarkMeanRatio_HashScanSmall(b *testing.B) {
	benchmarkMeanRatio(b, 10_000, groupby.HashScan)
}

// BenchmarkMeanRatio_HashScanLarge benchmarks HashScan on 100k rows.
func BenchmarkMeanRatio_HashScanLarge(b *testing.B) {
	benchmarkMeanRatio(b, 100_000, groupby.HashScan)
}

// BenchmarkMeanRatio_SortScanSmall benchmarks SortScan on 10k rows.
func BenchmarkMeanRatio_SortScanSmall(b *testing.B) {
	benchmarkMeanRatio(b, 10_000, groupby.SortScan)
}

// BenchmarkMeanRatio_SortScanLarge benchmarks SortScan on 100k rows.
func BenchmarkMeanRatio_SortScanLarge(b *testing.B) {
	benchmarkMeanRatio(b, 100_000, groupby.SortScan)
}

// BenchmarkMeanRatio_IndexScanSmall benchmarks IndexScan on 10k rows.
func BenchmarkMeanRatio_IndexScanSmall(b *testing.B) {
	benchmarkMeanRatio(b, 10_000, groupby.IndexScan)
}

// BenchmarkMeanRatio_IndexScanLarge benchmarks IndexScan on 100k rows.
func BenchmarkMeanRatio_IndexScanLarge(b *testing.B) {
	benchmarkMeanRatio(b, 100_000, groupby.IndexScan)
}

// BenchmarkFullWorkload times mutate-then-aggregate end to end: clone,
// +7 to one family's weight, grouped mean ratio.
func BenchmarkFullWorkload(b *testing.B) {
	f, err := dataset.Synthetic(100_000, 42)
	if err != nil {
		b.Fatalf("Synthetic failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		work := f.Clone()
		fams, err := work.Strings("family")
		if err != nil {
			b.Fatalf("Strings failed: %v", err)
		}
		if _, err = work.AddWhere("weight", 7, func(r int) bool { return fams[r] == "canine" }); err != nil {
			b.Fatalf("AddWhere failed: %v", err)
		}
		if _, err = groupby.MeanRatio(work, "family", "weight", "height"); err != nil {
			b.Fatalf("MeanRatio failed: %v", err)
		}
	}
}
