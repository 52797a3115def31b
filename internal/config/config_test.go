package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/jokerpoker/internal/advisor"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jokerpoker.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Pruning())
}

func TestLoadFullConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
engine {
  workers           = 4
  exhaustive_budget = "250ms"
  samples           = 5000
  seed              = 99
  prune             = false
}

log {
  level  = "debug"
  format = "json"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.Equal(t, 5000, cfg.Engine.Samples)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Pruning())

	ac, err := cfg.AdvisorConfig()
	require.NoError(t, err)
	assert.Equal(t, advisor.Config{
		Workers:        4,
		Budget:         250 * time.Millisecond,
		Samples:        5000,
		Seed:           99,
		DisablePruning: true,
	}, ac)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
log {
  level = "warn"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, advisor.DefaultSamples, cfg.Engine.Samples)
	assert.True(t, cfg.Pruning())
}

func TestLoadInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", `engine {`, "failed to parse HCL file"},
		{"unknown attribute", `engine { turbo = true }`, "failed to decode HCL"},
		{"bad budget", `engine { exhaustive_budget = "soon" }`, "exhaustive_budget"},
		{"negative workers", `engine { workers = -1 }`, "workers must be non-negative"},
		{"bad format", `log { format = "xml" }`, "unknown log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
