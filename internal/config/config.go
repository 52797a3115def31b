// Package config loads the advisor's HCL configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/jokerpoker/internal/advisor"
)

// Config represents the complete configuration file
type Config struct {
	Engine EngineConfig `hcl:"engine,block"`
	Log    LogConfig    `hcl:"log,block"`
}

// EngineConfig tunes hold evaluation
type EngineConfig struct {
	Workers          int    `hcl:"workers,optional"`
	ExhaustiveBudget string `hcl:"exhaustive_budget,optional"`
	Samples          int    `hcl:"samples,optional"`
	Seed             int64  `hcl:"seed,optional"`
	Prune            *bool  `hcl:"prune,optional"`
}

// LogConfig controls the logger built by the CLI
type LogConfig struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	prune := true
	return &Config{
		Engine: EngineConfig{
			Samples: advisor.DefaultSamples,
			Seed:    1,
			Prune:   &prune,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Blocks are optional in the file but required by the schema, so
	// decode into a partial struct first.
	var partial struct {
		Engine *EngineConfig `hcl:"engine,block"`
		Log    *LogConfig    `hcl:"log,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &partial)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if partial.Engine != nil {
		config.Engine = *partial.Engine
	}
	if partial.Log != nil {
		config.Log = *partial.Log
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Engine.Samples == 0 {
		c.Engine.Samples = def.Engine.Samples
	}
	if c.Engine.Prune == nil {
		c.Engine.Prune = def.Engine.Prune
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Engine.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Engine.Workers)
	}
	if c.Engine.Samples < 0 {
		return fmt.Errorf("samples must be non-negative, got %d", c.Engine.Samples)
	}
	if _, err := c.Budget(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Budget parses the exhaustive budget. Empty means unbounded.
func (c *Config) Budget() (time.Duration, error) {
	if c.Engine.ExhaustiveBudget == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Engine.ExhaustiveBudget)
	if err != nil {
		return 0, fmt.Errorf("exhaustive_budget: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("exhaustive_budget must be non-negative, got %s", d)
	}
	return d, nil
}

// Pruning reports whether subset pruning is enabled
func (c *Config) Pruning() bool {
	return c.Engine.Prune == nil || *c.Engine.Prune
}

// AdvisorConfig converts the engine block into advisor settings. The
// caller fills in the logger and clock.
func (c *Config) AdvisorConfig() (advisor.Config, error) {
	budget, err := c.Budget()
	if err != nil {
		return advisor.Config{}, err
	}
	return advisor.Config{
		Workers:        c.Engine.Workers,
		Budget:         budget,
		Samples:        c.Engine.Samples,
		Seed:           c.Engine.Seed,
		DisablePruning: !c.Pruning(),
	}, nil
}
