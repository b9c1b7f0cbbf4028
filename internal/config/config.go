package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/term"

	"github.com/arcanaland/cardstack/card"
)

// Color modes for card display
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the library configuration
type Config struct {
	Display DisplayConfig `toml:"display"`
}

// DisplayConfig controls how cards are rendered
type DisplayConfig struct {
	Color string `toml:"color"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Color: ColorAuto},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardstack", "config.toml")
}

// Load loads the config file from the default path. A missing file yields
// the defaults. The card, deck and validator packages never call it; only
// an embedding program that wants configured display does.
func Load() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads the config file at path
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads TOML configuration. Keys left out keep their defaults.
func Decode(r io.Reader) (*Config, error) {
	config := Default()
	if _, err := toml.NewDecoder(r).Decode(config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid display.color %q: want %s, %s or %s",
		c.Display.Color, ColorAuto, ColorAlways, ColorNever)
}

// Style resolves the display settings into a card style. In auto mode,
// color is used only when fd is a terminal.
func (d DisplayConfig) Style(fd uintptr) card.Style {
	switch d.Color {
	case ColorAlways:
		return card.Style{Color: true}
	case ColorNever:
		return card.Style{}
	}
	return card.Style{Color: term.IsTerminal(int(fd))}
}
