// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudygreybeard/dirfavs/pkg/store"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted when no flag is given.
const (
	EnvConfig = "DIRFAVS_CONFIG"
	EnvStore  = "DIRFAVS_STORE"
)

// Config represents the full configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Display  DisplayConfig  `yaml:"display"`
}

// StoreConfig selects where bookmarks are persisted.
type StoreConfig struct {
	Backend string `yaml:"backend"` // file or sqlite
	Path    string `yaml:"path"`    // empty means the backend default
}

// DefaultsConfig configures command defaults.
type DefaultsConfig struct {
	Category      string `yaml:"category"`
	RecentLimit   int    `yaml:"recent_limit"`
	FrequentLimit int    `yaml:"frequent_limit"`
}

// DisplayConfig configures human-readable output.
type DisplayConfig struct {
	TimeFormat string `yaml:"time_format"` // Go reference-time layout
}

// Default returns a configuration with sensible defaults.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend: store.KindFile,
		},
		Defaults: DefaultsConfig{
			Category:      "general",
			RecentLimit:   10,
			FrequentLimit: 10,
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
		},
	}
}

// Load reads configuration from a file, merging with defaults.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that cannot be repaired with a default.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case store.KindFile, store.KindSQLite:
	default:
		return fmt.Errorf("unknown store backend %q (available: %s, %s)", c.Store.Backend, store.KindFile, store.KindSQLite)
	}
	if c.Defaults.RecentLimit < 0 || c.Defaults.FrequentLimit < 0 {
		return fmt.Errorf("list limits must not be negative")
	}
	return nil
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dirfavs", "config.yaml")
}

// ResolvePath picks the config file: the flag value, then $DIRFAVS_CONFIG,
// then DefaultPath.
func ResolvePath(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return DefaultPath()
}

// DefaultStorePath returns the default snapshot location for backend.
func DefaultStorePath(backend string) string {
	home, _ := os.UserHomeDir()
	if backend == store.KindSQLite {
		return filepath.Join(home, ".dirfavs", "bookmarks.db")
	}
	return filepath.Join(home, ".bookmarks")
}

// StorePath picks the snapshot location: the flag value, then
// $DIRFAVS_STORE, then store.path, then the backend default. A leading ~/
// is expanded.
func (c Config) StorePath(flag string) string {
	path := flag
	if path == "" {
		path = os.Getenv(EnvStore)
	}
	if path == "" {
		path = c.Store.Path
	}
	if path == "" {
		return DefaultStorePath(c.Store.Backend)
	}
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "~" || len(path) > 1 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
