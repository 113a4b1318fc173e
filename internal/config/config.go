// Package config loads optional tool configuration from birview.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest looked up in the working directory.
const FileName = "birview.toml"

// ErrBadColorMode indicates a color value outside auto|on|off.
var ErrBadColorMode = errors.New("color must be one of auto, on, off")

// Config is the tool configuration. Values act as flag defaults; explicit
// command-line flags always win.
type Config struct {
	Dump DumpConfig `toml:"dump"`
}

// DumpConfig configures the dump command.
type DumpConfig struct {
	Jobs  int    `toml:"jobs"`
	Color string `toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dump: DumpConfig{
			Jobs:  0,
			Color: "auto",
		},
	}
}

// Load reads birview.toml from dir. A missing file is not an error; the
// defaults are returned unchanged.
func Load(dir string) (*Config, error) {
	cfg := Default()
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Dump.Color {
	case "auto", "on", "off":
		return nil
	default:
		return fmt.Errorf("%w, got %q", ErrBadColorMode, c.Dump.Color)
	}
}
