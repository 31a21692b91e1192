// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultAddr       = ":8000"
	DefaultStore      = "memory"
	DefaultConfigFile = "todosvc.toml"
)

// Config holds the full configuration for todosvc. The HTTP contract
// itself is config-free; everything here is deployment plumbing.
type Config struct {
	// Addr is the listen address for the HTTP server
	Addr string `toml:"addr"`

	// Store selects the repository backend: memory or sqlite
	Store string `toml:"store"`

	// SQLiteDSN overrides the sqlite data source; the default is an
	// in-memory database with process lifetime
	SQLiteDSN string `toml:"sqlite_dsn"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Addr:  DefaultAddr,
		Store: DefaultStore,
	}
}

// Load reads configuration from path (or the default file when path is
// empty), then applies environment overrides. A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	} else {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TODOSVC_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TODOSVC_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("TODOSVC_SQLITE_DSN"); v != "" {
		cfg.SQLiteDSN = v
	}
}

func (c *Config) validate() error {
	switch c.Store {
	case "memory", "sqlite":
		return nil
	default:
		return fmt.Errorf("invalid store %q: valid stores are memory, sqlite", c.Store)
	}
}
