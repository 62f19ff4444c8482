// Package paths resolves the configuration directory and the settings
// database location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// SettingsFileName is the settings database file inside the config directory.
const SettingsFileName = "settings.db"

// EnvConfigDir overrides the configuration directory location.
const EnvConfigDir = "SALONSMS_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/salonsms (fallback ~/.config/salonsms)
// macOS:   ~/Library/Application Support/salonsms
// Windows: %APPDATA%/salonsms
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "salonsms"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "salonsms"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "salonsms"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SALONSMS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveSettingsDB returns the settings database path following the
// precedence chain: config.yaml settings_db value > <configDir>/settings.db.
func ResolveSettingsDB(configDir, configYAMLValue string) (string, error) {
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	return filepath.Join(configDir, SettingsFileName), nil
}
