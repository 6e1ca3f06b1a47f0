package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "entropy", cfg.Logger.ServiceName)
	assert.Empty(t, cfg.Logger.LogFile)

	assert.Equal(t, 100, cfg.Walk.Steps)
	assert.Equal(t, 3, cfg.Walk.Walkers)
	assert.Equal(t, int64(1337), cfg.Walk.Seed)
	assert.Equal(t, 1.0, cfg.Walk.MinSpeed)
	assert.Equal(t, 3.0, cfg.Walk.MaxSpeed)
	assert.Equal(t, "moore", cfg.Walk.Pattern)
	assert.True(t, cfg.Walk.RandomStart)
	assert.Equal(t, 1.0, cfg.Walk.StartRangeFactor)

	assert.Equal(t, int64(42), cfg.Noise.Seed)
	assert.Equal(t, 0.05, cfg.Noise.Frequency)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
logger:
  level: debug
  format: json
walk:
  steps: 250
  seed: 9001
  pattern: neumann
  random_start: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, 250, cfg.Walk.Steps)
	assert.Equal(t, int64(9001), cfg.Walk.Seed)
	assert.Equal(t, "neumann", cfg.Walk.Pattern)
	assert.False(t, cfg.Walk.RandomStart)
	// Untouched keys keep their defaults.
	assert.Equal(t, 3, cfg.Walk.Walkers)
	assert.Equal(t, 3.0, cfg.Walk.MaxSpeed)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ENTROPY_WALK_STEPS", "777")
	t.Setenv("ENTROPY_LOGGER_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 777, cfg.Walk.Steps)
	assert.Equal(t, "warn", cfg.Logger.Level)
}
