package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/preload/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the directory searched for config files
	EnvConfigDir = "PRELOAD_CONFIG_DIR"

	// EnvStateDir overrides the directory holding the log file
	EnvStateDir = "PRELOAD_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names below the XDG base directories
const (
	// AppDirName is the directory name for preload files
	AppDirName = "preload"

	// LogFileName is the name of the log file
	LogFileName = "preload.log"
)

// ConfigDir returns the directory searched for a user config file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory for state files such as the log.
// XDG_STATE_HOME is read directly because xdg caches it at package init.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the default log file location
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// GetHomeDirectory returns the user's home directory, falling back to $HOME
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	if err == nil {
		return "", errors.New(errors.ErrInternal, "unable to determine home directory")
	}
	return "", errors.Wrap(err, errors.ErrInternal, "unable to determine home directory")
}

// ExpandHome expands a leading ~ to the home directory. Paths it cannot
// expand, including ~user forms, are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
