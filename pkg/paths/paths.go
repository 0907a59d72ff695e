// Package paths provides centralized path handling for the tool. It follows
// the XDG Base Directory specification and supports environment overrides
// for every directory it resolves.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for the tool
	EnvConfigDir = "TUIST_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for the tool
	EnvStateDir = "TUIST_STATE_DIR"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "tuist"

	// ConfigFileName is the name of the tool configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file in the state directory
	LogFileName = "tuist.log"
)

// ConfigDir returns the directory holding the tool configuration file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding mutable tool state such as logs.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigFile returns the path of the tool configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}
