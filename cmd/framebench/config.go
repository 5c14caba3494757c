package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds the benchmark run parameters. Flags override file values;
// file values override defaults.
type RunConfig struct {
	// Rows is the synthetic table size.
	Rows int `yaml:"rows"`

	// Repetitions and Warmup control the harness sampling.
	Repetitions int `yaml:"repetitions"`
	Warmup      int `yaml:"warmup"`

	// Seed feeds the deterministic generator (0 selects the fixed default
	// stream).
	Seed int64 `yaml:"seed"`

	// Delta is added to Family's weights before aggregating.
	Delta  float64 `yaml:"delta"`
	Family string  `yaml:"family"`
}

// DefaultRunConfig mirrors the tutorial's benchmark setup: 100k rows, +7 to
// the canine family's weight.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Rows:        100_000,
		Repetitions: 20,
		Warmup:      2,
		Seed:        42,
		Delta:       7,
		Family:      "canine",
	}
}

// LoadRunConfig reads a YAML file over the defaults. Unknown keys are
// rejected so typos fail loudly instead of silently benchmarking defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

// validate rejects values the harness or generator would refuse later,
// producing one friendly message instead of a deep panic/sentinel.
func (c RunConfig) validate() error {
	if c.Rows < 0 {
		return fmt.Errorf("config: rows must be non-negative, got %d", c.Rows)
	}
	if c.Repetitions <= 0 {
		return fmt.Errorf("config: repetitions must be positive, got %d", c.Repetitions)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("config: warmup must be non-negative, got %d", c.Warmup)
	}
	if c.Family == "" {
		return fmt.Errorf("config: family must be set")
	}

	return nil
}
