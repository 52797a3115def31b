package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/jokerpoker/cmd/jokerpoker/shared"
	"github.com/lox/jokerpoker/internal/advisor"
	"github.com/lox/jokerpoker/internal/config"
	"github.com/lox/jokerpoker/poker"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config    string `short:"c" default:"jokerpoker.hcl" help:"Path to HCL configuration file"`
	LogLevel  string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	LogFormat string `help:"Log format: text, json, logfmt (overrides config)"`
}

// load reads the config file, applies flag overrides and builds the logger.
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}

	logger, err := shared.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Loaded configuration", "path", g.Config, "level", cfg.Log.Level)
	return cfg, logger, nil
}

// EngineFlags override the engine block of the config file.
type EngineFlags struct {
	Workers int    `help:"Holds scored in parallel (0 = config or GOMAXPROCS)"`
	Budget  string `help:"Wall-clock budget per exhaustive hold, e.g. 500ms (overrides config)"`
	Samples int    `help:"Sampled draws when the budget runs out (overrides config)"`
	Seed    *int64 `help:"Sampling seed (overrides config)"`
	NoPrune bool   `name:"no-prune" help:"Score all 32 holds"`
}

func (f EngineFlags) advisor(cfg *config.Config, logger *log.Logger) (*advisor.Advisor, error) {
	if f.Budget != "" {
		cfg.Engine.ExhaustiveBudget = f.Budget
	}
	if f.Workers > 0 {
		cfg.Engine.Workers = f.Workers
	}
	if f.Samples > 0 {
		cfg.Engine.Samples = f.Samples
	}
	if f.Seed != nil {
		cfg.Engine.Seed = *f.Seed
	}
	if f.NoPrune {
		prune := false
		cfg.Engine.Prune = &prune
	}

	ac, err := cfg.AdvisorConfig()
	if err != nil {
		return nil, err
	}
	ac.Logger = logger
	return advisor.New(ac), nil
}

// parseCards joins positional arguments so both "As Ks" and "AsKs" parse.
func parseCards(args []string) ([]poker.Card, error) {
	cards, err := poker.ParseCards(strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("parse cards: %w", err)
	}
	return cards, nil
}
