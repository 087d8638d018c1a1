// Package config manages user preferences and standard file locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir returns the presetctl config directory.
// Respects XDG_CONFIG_HOME; defaults to $HOME/.config/presetctl.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "presetctl"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".config", "presetctl"), nil
}

// dataDir returns the presetctl data directory.
// Respects XDG_DATA_HOME; defaults to $HOME/.local/share/presetctl.
func dataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "presetctl"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "presetctl"), nil
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.json"), nil
}

// DefaultPresetsDir returns the default directory holding preset files.
func DefaultPresetsDir() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "presets"), nil
}

// RegistryPath returns the full path to the snippet upload registry file.
func RegistryPath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "uploads.jsonl"), nil
}
