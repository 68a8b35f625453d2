// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DatabasePath resolves the SQLite database path from configuration,
// falling back to the default under the user config directory.
func DatabasePath() string {
	if p := viper.GetString("database.path"); p != "" {
		return ExpandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "seline.db"
	}
	return filepath.Join(home, ".config", "seline", "seline.db")
}

// FetchTimeoutSeconds returns the per-source fetch timeout, defaulting to
// ten seconds.
func FetchTimeoutSeconds() int {
	if viper.IsSet("engine.fetch_timeout_seconds") {
		return viper.GetInt("engine.fetch_timeout_seconds")
	}
	return 10
}
