package main

import (
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/jokerpoker/internal/config"
	"github.com/lox/jokerpoker/poker"
)

func TestParseCardsJoinsArguments(t *testing.T) {
	t.Parallel()

	spaced, err := parseCards([]string{"As", "Ks", "Jk"})
	require.NoError(t, err)
	joined, err := parseCards([]string{"AsKsJk"})
	require.NoError(t, err)

	assert.Equal(t, spaced, joined)
	assert.Equal(t, poker.Joker, spaced[2])

	_, err = parseCards([]string{"Zz"})
	assert.ErrorIs(t, err, poker.ErrInvalidCard)
}

func TestEngineFlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	seed := int64(42)
	flags := EngineFlags{Budget: "1s", Samples: 10, Seed: &seed, NoPrune: true}
	cfg := config.Default()

	_, err := flags.advisor(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, "1s", cfg.Engine.ExhaustiveBudget)
	assert.Equal(t, 10, cfg.Engine.Samples)
	assert.Equal(t, int64(42), cfg.Engine.Seed)
	assert.False(t, cfg.Pruning())
}

func TestEngineFlagsRejectBadBudget(t *testing.T) {
	t.Parallel()

	_, err := EngineFlags{Budget: "later"}.advisor(config.Default(), nil)
	assert.Error(t, err)
}

func TestCLIParses(t *testing.T) {
	t.Parallel()

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("jokerpoker"), kong.Vars{"version": "test"})
	require.NoError(t, err)

	missing := filepath.Join(t.TempDir(), "none.hcl")
	_, err = parser.Parse([]string{"--config", missing, "advise", "As", "Ks", "Qs", "Js", "Ts", "--all", "--no-prune"})
	require.NoError(t, err)

	assert.Equal(t, missing, cli.Config)
	assert.Equal(t, []string{"As", "Ks", "Qs", "Js", "Ts"}, cli.Advise.Cards)
	assert.True(t, cli.Advise.All)
	assert.True(t, cli.Advise.Engine.NoPrune)
}
