package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds server settings. Values come from the optional TOML
// file; command-line flags and environment variables override them at
// the CLI layer.
type Config struct {
	Port    int    `toml:"port"`
	BaseURL string `toml:"base_url"`
	DBPath  string `toml:"db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:   8080,
		DBPath: "./splitpixel.db",
	}
}

// Load reads a TOML config file. A missing file is not an error when
// path is the default location; callers pass explicit=true when the
// user named the file themselves.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
