package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessgui"

// DataDir returns the directory holding the application's files, creating it
// if needed. A non-empty override is used as is; otherwise it is the
// platform data home joined with the application name:
//   - macOS: ~/Library/Application Support/chessgui/
//   - Windows: %APPDATA%/chessgui/
//   - others: $XDG_DATA_HOME/chessgui/ or ~/.local/share/chessgui/
func DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		home, err := dataHome()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, appName)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// dataHome is the per-user base directory for application data.
func dataHome() (string, error) {
	switch runtime.GOOS {
	case "darwin", "windows":
		// Application Support and %APPDATA% respectively.
		return os.UserConfigDir()
	}

	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

// databaseDir returns the BadgerDB directory inside DataDir(override).
func databaseDir(override string) (string, error) {
	dir, err := DataDir(override)
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
