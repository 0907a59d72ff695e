// Package config loads the tool configuration from config.toml in the
// tool's config directory. All settings are optional; a missing file
// yields the defaults.
package config

import (
	"fmt"
	"os"

	"github.com/DevVenusK/tuist/pkg/logging"
	"github.com/DevVenusK/tuist/pkg/paths"
	toml "github.com/pelletier/go-toml/v2"
)

var log = logging.GetLogger("config")

// Output formats accepted by the dump command and the format setting.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config holds the user-configurable tool settings.
type Config struct {
	// Format is the default output format for dump (yaml or json)
	Format string `toml:"format"`

	// Strict makes lint treat warnings as errors
	Strict bool `toml:"strict"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Format: FormatYAML}
}

// Load reads the configuration file from the config directory. A missing
// file is not an error; the defaults are returned.
func Load() (*Config, error) {
	return loadFrom(paths.ConfigFile())
}

func loadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug().Str("path", path).Msg("No config file, using defaults")
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Format != FormatYAML && cfg.Format != FormatJSON {
		return nil, fmt.Errorf("invalid format %q in config %s (expected %s or %s)", cfg.Format, path, FormatYAML, FormatJSON)
	}

	log.Debug().Str("path", path).Str("format", cfg.Format).Bool("strict", cfg.Strict).Msg("Config loaded")
	return cfg, nil
}
