// Package benchconfig loads the configuration for the ppe benchmark
// command from an optional YAML file, with command-line flags taking
// precedence over whatever the file sets.
//
// This is an internal package not intended for direct use by
// applications; it supports cmd/bench only.
package benchconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one benchmark run: the equation shape to exercise
// (m G1 witnesses, n G2 witnesses) and how many times to repeat Setup,
// Verify and Randomize.
type Config struct {
	Name          string `yaml:"name"`
	WitnessesG1   int    `yaml:"witnessesG1"`
	WitnessesG2   int    `yaml:"witnessesG2"`
	Iterations    int    `yaml:"iterations"`
	Concurrency   int    `yaml:"concurrency"`
	OutputDir     string `yaml:"outputDir"`
	PrometheusURL string `yaml:"prometheusPushURL"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Name:        "default",
		WitnessesG1: 4,
		WitnessesG2: 4,
		Iterations:  100,
		Concurrency: 4,
		OutputDir:   ".",
	}
}

// Load reads a YAML file into Default()'s values, overriding only the
// keys present in the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("benchconfig: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("benchconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration describes a runnable benchmark.
func (c Config) Validate() error {
	if c.WitnessesG1 < 1 || c.WitnessesG2 < 1 {
		return fmt.Errorf("benchconfig: witness counts must be at least 1, got g1=%d g2=%d", c.WitnessesG1, c.WitnessesG2)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("benchconfig: iterations must be at least 1, got %d", c.Iterations)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("benchconfig: concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}
