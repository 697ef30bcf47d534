// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".keepsake"
	DefaultDataDirName   = ".keepsake-db"
)

// Environment variable names for directory and identity overrides.
const (
	EnvConfigDir = "KEEPSAKE_CONFIG_DIR"
	EnvDataDir   = "KEEPSAKE_DATA_DIR"
	EnvIdentity  = "KEEPSAKE_IDENTITY"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > KEEPSAKE_CONFIG_DIR env > $(CWD)/.keepsake.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config.yaml data_dir > KEEPSAKE_DATA_DIR env > $(CWD)/.keepsake-db.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
