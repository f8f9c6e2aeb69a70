// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	fsutil "github.com/kk-code-lab/mpl/internal/fs"
	"github.com/kk-code-lab/mpl/internal/launcher"
	"gopkg.in/yaml.v3"
)

// Config mirrors config.yaml. Unset fields keep their defaults.
type Config struct {
	Player struct {
		Command       string `yaml:"command"`
		PauseFlag     string `yaml:"pause_flag"`
		SubFileOption string `yaml:"sub_file_option"`
	} `yaml:"player"`
	Listing struct {
		IgnoredNames   []string `yaml:"ignored_names"`
		SkipEmptyFiles *bool    `yaml:"skip_empty_files"`
	} `yaml:"listing"`
	Filter struct {
		ShowHidden bool `yaml:"show_hidden"`
	} `yaml:"filter"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	opts := launcher.DefaultOptions()
	cfg.Player.Command = opts.Command
	cfg.Player.PauseFlag = opts.PauseFlag
	cfg.Player.SubFileOption = opts.SubFileOption
	cfg.Listing.IgnoredNames = append([]string(nil), fsutil.DefaultIgnoredNames...)
	skip := true
	cfg.Listing.SkipEmptyFiles = &skip
	cfg.Log.Level = "info"
	return cfg
}

// Load reads the config from Path() and applies environment overrides.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads path, falling back to defaults when it does not exist, then
// applies environment overrides and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.merge(&fileCfg)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) merge(other *Config) {
	if strings.TrimSpace(other.Player.Command) != "" {
		c.Player.Command = other.Player.Command
	}
	if other.Player.PauseFlag != "" {
		c.Player.PauseFlag = other.Player.PauseFlag
	}
	if other.Player.SubFileOption != "" {
		c.Player.SubFileOption = other.Player.SubFileOption
	}
	if other.Listing.IgnoredNames != nil {
		c.Listing.IgnoredNames = other.Listing.IgnoredNames
	}
	if other.Listing.SkipEmptyFiles != nil {
		c.Listing.SkipEmptyFiles = other.Listing.SkipEmptyFiles
	}
	c.Filter.ShowHidden = other.Filter.ShowHidden
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.File != "" {
		c.Log.File = other.Log.File
	}
}

func (c *Config) applyEnv() {
	if cmd := strings.TrimSpace(os.Getenv(EnvPlayerCmd)); cmd != "" {
		c.Player.Command = cmd
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.Log.Level = level
	}
}

// Validate rejects a player command that is empty or cannot be split into
// arguments, and unknown log levels.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	argv, err := shellquote.Split(c.Player.Command)
	if err != nil {
		return fmt.Errorf("player.command: %w", err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("player.command: %w", launcher.ErrEmptyCommand)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "warning", "error", "none", "off":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}

// LauncherOptions returns the player settings for launcher.New.
func (c *Config) LauncherOptions() launcher.Options {
	return launcher.Options{
		Command:       c.Player.Command,
		PauseFlag:     c.Player.PauseFlag,
		SubFileOption: c.Player.SubFileOption,
	}
}

// ListOptions returns the directory listing policy.
func (c *Config) ListOptions() fsutil.ListOptions {
	opts := fsutil.DefaultListOptions()
	opts.IgnoredNames = append([]string(nil), c.Listing.IgnoredNames...)
	if c.Listing.SkipEmptyFiles != nil {
		opts.SkipEmpty = *c.Listing.SkipEmptyFiles
	}
	return opts
}
