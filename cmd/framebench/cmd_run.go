package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/framekit/bench"
	"github.com/katalvlaran/framekit/dataset"
	"github.com/katalvlaran/framekit/frame"
	"github.com/katalvlaran/framekit/groupby"
)

var (
	flagRows   int
	flagReps   int
	flagWarmup int
	flagSeed   int64
	flagDelta  float64
	flagFamily string
)

// runCmd executes the canonical workload under every strategy and prints
// the timing comparison.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the strategy comparison benchmark",
	Long: `Generates N synthetic rows, then for each strategy and repetition:
clone the table, add delta to one family's weight in place, and compute the
grouped mean weight/height ratio. Before timing is reported, the strategies'
results are checked for exact equality.`,
	RunE: runBenchmark,
}

func init() {
	d := DefaultRunConfig()
	runCmd.Flags().IntVar(&flagRows, "rows", d.Rows, "synthetic row count")
	runCmd.Flags().IntVar(&flagReps, "reps", d.Repetitions, "timed repetitions per strategy")
	runCmd.Flags().IntVar(&flagWarmup, "warmup", d.Warmup, "untimed warmup runs per strategy")
	runCmd.Flags().Int64Var(&flagSeed, "seed", d.Seed, "generator seed (0 = fixed default stream)")
	runCmd.Flags().Float64Var(&flagDelta, "delta", d.Delta, "value added to the target family's weight")
	runCmd.Flags().StringVar(&flagFamily, "family", d.Family, "family whose weight is shifted")
}

// resolveConfig layers flags over the optional config file over defaults.
func resolveConfig(cmd *cobra.Command) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = LoadRunConfig(cfgPath); err != nil {
			return cfg, err
		}
	}

	// Explicit flags win over the file.
	if cmd.Flags().Changed("rows") {
		cfg.Rows = flagRows
	}
	if cmd.Flags().Changed("reps") {
		cfg.Repetitions = flagReps
	}
	if cmd.Flags().Changed("warmup") {
		cfg.Warmup = flagWarmup
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("delta") {
		cfg.Delta = flagDelta
	}
	if cmd.Flags().Changed("family") {
		cfg.Family = flagFamily
	}

	return cfg, cfg.validate()
}

// workload builds the per-repetition function for one strategy. Each run
// clones the source so the in-place weight shift never accumulates across
// repetitions.
func workload(src *frame.Frame, cfg RunConfig, s groupby.Strategy, out **frame.Frame) func() error {
	return func() error {
		work := src.Clone()
		fams, err := work.Strings("family")
		if err != nil {
			return err
		}
		if _, err = work.AddWhere("weight", cfg.Delta, func(r int) bool { return fams[r] == cfg.Family }); err != nil {
			return err
		}
		g, err := groupby.MeanRatio(work, "family", "weight", "height", groupby.WithStrategy(s))
		if err != nil {
			return err
		}
		*out = g

		return nil
	}
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger.Info("Generating synthetic table",
		zap.Int("rows", cfg.Rows),
		zap.Int64("seed", cfg.Seed))

	src, err := dataset.Synthetic(cfg.Rows, cfg.Seed)
	if err != nil {
		return fmt.Errorf("generate data: %w", err)
	}

	strategies := groupby.Strategies()
	results := make([]*frame.Frame, len(strategies))
	cases := make([]bench.Case, len(strategies))
	for i, s := range strategies {
		cases[i] = bench.Case{
			Name: s.String(),
			Fn:   workload(src, cfg, s, &results[i]),
		}
	}

	logger.Debug("Running harness",
		zap.Int("repetitions", cfg.Repetitions),
		zap.Int("warmup", cfg.Warmup))

	report, err := bench.Run(cases,
		bench.WithRepetitions(cfg.Repetitions),
		bench.WithWarmup(cfg.Warmup))
	if err != nil {
		return fmt.Errorf("benchmark: %w", err)
	}

	// Every strategy must agree before timings mean anything.
	for i := 1; i < len(results); i++ {
		if err = sameGroupedResult(results[0], results[i]); err != nil {
			return fmt.Errorf("strategy %s disagrees with %s: %w",
				strategies[i], strategies[0], err)
		}
	}
	logger.Info("Strategies verified identical", zap.Int("strategies", len(strategies)))

	fmt.Fprint(cmd.OutOrStdout(), report.Render())

	return nil
}

// sameGroupedResult demands exact equality of group keys and ratio means.
func sameGroupedResult(a, b *frame.Frame) error {
	ak, err := a.Strings("family")
	if err != nil {
		return err
	}
	bk, err := b.Strings("family")
	if err != nil {
		return err
	}
	if len(ak) != len(bk) {
		return fmt.Errorf("group counts differ: %d vs %d", len(ak), len(bk))
	}
	av, err := a.Floats(groupby.RatioColumn)
	if err != nil {
		return err
	}
	bv, err := b.Floats(groupby.RatioColumn)
	if err != nil {
		return err
	}
	for i := range ak {
		if ak[i] != bk[i] {
			return fmt.Errorf("group %d differs: %q vs %q", i, ak[i], bk[i])
		}
		if av[i] != bv[i] {
			return fmt.Errorf("mean for %q differs: %v vs %v", ak[i], av[i], bv[i])
		}
	}

	return nil
}
