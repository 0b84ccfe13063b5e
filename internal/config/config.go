// Package config loads nmsimplex run files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig describes one optimization run. Zero values mean "use the
// problem's default".
type RunConfig struct {
	// Problem is the registered problem name.
	Problem string `yaml:"problem"`

	// Start overrides the problem's starting point.
	Start []float64 `yaml:"start,omitempty"`

	// Epsilon overrides the convergence tolerance.
	Epsilon float64 `yaml:"epsilon,omitempty"`

	// Scale overrides the initial simplex edge length.
	Scale float64 `yaml:"scale,omitempty"`

	// MaxIterations overrides the iteration cap.
	MaxIterations int `yaml:"max_iterations,omitempty"`

	// LogLevel is "debug", "info", "warn" or "error". Default: info
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns a RunConfig with every override unset.
func Default() *RunConfig {
	return &RunConfig{LogLevel: "info"}
}

// Load reads and parses a run file.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML run file and validates it.
func Parse(data []byte) (*RunConfig, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the overrides that are set.
func (c *RunConfig) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon must be positive, got %v", c.Epsilon)
	}

	if c.Scale < 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}

	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}

	return nil
}
