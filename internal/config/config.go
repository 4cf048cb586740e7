// Package config handles the XDG configuration directory and display preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// PrefsFile is the optional display-preferences filename.
	PrefsFile = "prefs.toml"
)

// Display defaults when no prefs file exists.
const (
	DefaultPrompt = "todo> "
)

// Config holds configuration paths and settings. None of these affect
// the task operations themselves, only logging and presentation.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging on stderr.
	Debug bool

	// Quiet suppresses banners and success messages.
	Quiet bool

	// Color enables styled output.
	Color bool

	// Icons enables unicode status markers.
	Icons bool

	// Prompt is the interactive shell prompt.
	Prompt string
}

// prefs mirrors the prefs.toml layout. Pointer fields so absent keys
// keep their defaults.
type prefs struct {
	Color  *bool  `toml:"color"`
	Icons  *bool  `toml:"icons"`
	Prompt string `toml:"prompt"`
}

// New creates a Config with the default or specified config directory
// and merges prefs.toml when present. A missing prefs file is fine; a
// malformed one is an error.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:    dir,
		Color:  true,
		Icons:  true,
		Prompt: DefaultPrompt,
	}
	if err := cfg.loadPrefs(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// PrefsPath returns the path to the display-preferences file.
func (c *Config) PrefsPath() string {
	return filepath.Join(c.Dir, PrefsFile)
}

// EnsureDir creates the config directory if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// loadPrefs merges prefs.toml into the config.
func (c *Config) loadPrefs() error {
	var p prefs
	if _, err := toml.DecodeFile(c.PrefsPath(), &p); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("load %s: %w", c.PrefsPath(), err)
	}

	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icons != nil {
		c.Icons = *p.Icons
	}
	if p.Prompt != "" {
		c.Prompt = p.Prompt
	}
	return nil
}
