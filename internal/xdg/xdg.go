// Package xdg provides helpers to resolve XDG Base Directory paths for docquery.
// It falls back to the traditional ~/.config location when XDG_CONFIG_HOME is
// unset and keeps the application directory private.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "docquery"

// ConfigDir returns the XDG config directory for docquery.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/docquery when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
