package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"unknown scenario", func(c *Config) { c.Game.Scenario = "nope" }, true},
		{"negative runs", func(c *Config) { c.Simulation.Runs = -1 }, true},
		{"bad journal type", func(c *Config) { c.Journal.Type = "postgres" }, true},
		{"csv missing files", func(c *Config) { c.Journal.RoundsFile = "" }, true},
		{"sqlite missing path", func(c *Config) { c.Journal.Type = "sqlite"; c.Journal.DBPath = "" }, true},
		{"journal none", func(c *Config) { c.Journal = JournalConfig{Type: "none"} }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Game.Scenario = "fresh_graduate"
	cfg.Game.Seed = 42
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Game.Scenario, loaded.Game.Scenario)
	assert.Equal(t, int64(42), loaded.Game.Seed)
	assert.Equal(t, cfg.Journal, loaded.Journal)
}

func TestSaveAndLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := Default()
	cfg.Simulation.Runs = 500
	require.NoError(t, cfg.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"runs\": 500")

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 500, loaded.Simulation.Runs)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journal:\n  type: postgres\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
