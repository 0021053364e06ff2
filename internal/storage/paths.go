// Package storage persists searched magic multiplier sets between runs.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessattacks"

// DataDirEnv overrides the platform data directory when set.
const DataDirEnv = "CHESSATTACKS_DATA"

// platformBase returns the per-user application data root.
func platformBase() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "AppData", "Roaming"), nil
	}

	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

// GetDataDir returns the application data directory, creating it if needed.
// $CHESSATTACKS_DATA wins over the platform default
// (~/Library/Application Support, %APPDATA% or $XDG_DATA_HOME).
func GetDataDir() (string, error) {
	dataDir := os.Getenv(DataDirEnv)
	if dataDir == "" {
		base, err := platformBase()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(base, appName)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// GetDatabaseDir returns the BadgerDB directory under the data directory.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "magics")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
