package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"moneypath/catalog"
)

// Config represents the complete simulation configuration
type Config struct {
	Game       GameConfig       `json:"game" yaml:"game"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// GameConfig contains campaign parameters
type GameConfig struct {
	Scenario string `json:"scenario,omitempty" yaml:"scenario,omitempty"` // empty draws a random one
	Seed     int64  `json:"seed,omitempty" yaml:"seed,omitempty"`         // 0 seeds from the clock
}

// SimulationConfig contains batch-run parameters
type SimulationConfig struct {
	Runs   int    `json:"runs" yaml:"runs"`
	Policy string `json:"policy" yaml:"policy"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type         string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	RoundsFile   string `json:"rounds_file,omitempty" yaml:"rounds_file,omitempty"`
	SessionsFile string `json:"sessions_file,omitempty" yaml:"sessions_file,omitempty"`
	DBPath       string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Game.Scenario != "" {
		if _, ok := catalog.ScenarioByID(c.Game.Scenario); !ok {
			return fmt.Errorf("unknown scenario: %s", c.Game.Scenario)
		}
	}
	if c.Simulation.Runs < 0 {
		return fmt.Errorf("simulation.runs must not be negative")
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.RoundsFile == "" || c.Journal.SessionsFile == "" {
			return fmt.Errorf("journal rounds_file and sessions_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Game: GameConfig{},
		Simulation: SimulationConfig{
			Runs:   100,
			Policy: "prudent",
		},
		Journal: JournalConfig{
			Type:         "csv",
			RoundsFile:   "./rounds.csv",
			SessionsFile: "./sessions.csv",
		},
	}
}
