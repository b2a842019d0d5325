// Package config handles user settings and model definition files for onamer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName names the config directory and the environment prefix.
	AppName = "onamer"

	SettingsFile = "config.yaml"
	ModelsFile   = "models.yaml"
)

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// EnsureConfigDir creates dir, or the default directory when dir is empty,
// and returns its path.
func EnsureConfigDir(dir string) (string, error) {
	if dir == "" {
		d, err := GetConfigDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return dir, nil
}

// WriteIfMissing writes data to path unless the file already exists. It
// reports whether the file was written.
func WriteIfMissing(path string, data []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
