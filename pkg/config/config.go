// Package config loads daygrid configuration.
//
// Configuration is layered: built-in defaults, then an optional TOML file at
// $XDG_CONFIG_HOME/daygrid/config.toml, then DAYGRID_* environment variables.
// Later layers win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Backend names accepted by [Store].
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config is the full daygrid configuration.
type Config struct {
	Store Store `toml:"store"`
	Redis Redis `toml:"redis"`
	Mongo Mongo `toml:"mongo"`
	Serve Serve `toml:"serve"`
}

// Store selects and tunes the entry store backend.
type Store struct {
	// Backend is one of file, redis, mongo, memory.
	Backend string `toml:"backend" env:"DAYGRID_STORE_BACKEND"`

	// Path overrides the entries file location (file backend only).
	Path string `toml:"path" env:"DAYGRID_STORE_PATH"`
}

// Redis configures the redis backend.
type Redis struct {
	Addr     string `toml:"addr" env:"DAYGRID_REDIS_ADDR"`
	Password string `toml:"password" env:"DAYGRID_REDIS_PASSWORD"`
	DB       int    `toml:"db" env:"DAYGRID_REDIS_DB"`
}

// Mongo configures the mongo backend.
type Mongo struct {
	URI      string `toml:"uri" env:"DAYGRID_MONGO_URI"`
	Database string `toml:"database" env:"DAYGRID_MONGO_DATABASE"`
}

// Serve configures the local HTTP API.
type Serve struct {
	Addr string `toml:"addr" env:"DAYGRID_SERVE_ADDR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store: Store{Backend: BackendFile},
		Redis: Redis{Addr: "localhost:6379"},
		Mongo: Mongo{URI: "mongodb://localhost:27017", Database: "daygrid"},
		Serve: Serve{Addr: "127.0.0.1:8787"},
	}
}

// Load reads the layered configuration. A missing config file is not an
// error; a malformed one is, since silently ignoring it would mask typos.
func Load(appName string) (Config, error) {
	cfg := Default()

	path, err := Path(appName)
	if err == nil {
		if data, rerr := os.ReadFile(path); rerr == nil {
			if _, derr := toml.Decode(string(data), &cfg); derr != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, derr)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Path returns the config file location using the XDG convention.
func Path(appName string) (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendMemory:
		return nil
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
}
