package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration: balance tunables plus the paths the
// command-line harness needs.
type Config struct {
	Balance  Balance `yaml:"balance"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Catalog struct {
		Path string `yaml:"path"` // empty means built-in default ruleset
	} `yaml:"catalog"`
	Seed int64 `yaml:"seed"`
	Days int   `yaml:"days"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{Balance: Default()}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CHICKENMASTER_DB"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CHICKENMASTER_CATALOG"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("CHICKENMASTER_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("CHICKENMASTER_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Days = days
		}
	}

	// Defaults
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/chickenmaster.db"
	}
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.Days == 0 {
		cfg.Days = 30
	}

	return cfg, nil
}
