package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "mpl"

const (
	EnvConfigPath  = "MPL_CONFIG"
	EnvPlayerCmd   = "MPVL_MPV_CMD"
	EnvLogLevel    = "MPL_LOG_LEVEL"
	envStateHome   = "XDG_STATE_HOME"
	envConfigHome  = "XDG_CONFIG_HOME"
	lastItemFile   = "last_item"
	logFileName    = "mpl.log"
	configFileName = "config.yaml"
)

// StateDir returns $XDG_STATE_HOME/mpl, defaulting to ~/.local/state/mpl.
// The directory is not created.
func StateDir() (string, error) {
	if base := strings.TrimSpace(os.Getenv(envStateHome)); base != "" && filepath.IsAbs(base) {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "state", appName), nil
}

// LastItemPath is where the remembered item is stored.
func LastItemPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, lastItemFile), nil
}

// DefaultLogPath is the rotating log file used when log.file is unset.
func DefaultLogPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// Path resolves the config file location: MPL_CONFIG, then
// $XDG_CONFIG_HOME/mpl/config.yaml, then ~/.config/mpl/config.yaml.
func Path() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvConfigPath)); override != "" {
		return override, nil
	}
	if base := strings.TrimSpace(os.Getenv(envConfigHome)); base != "" && filepath.IsAbs(base) {
		return filepath.Join(base, appName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", appName, configFileName), nil
}
