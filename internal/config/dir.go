// Package config resolves habitmd's configuration directory and the default
// settings read from it and from the environment.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the habitmd configuration directory.
//
// Resolution:
//   - $HABITMD_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/habitmd if set (respects XDG on any platform)
//   - %AppData%/habitmd on Windows
//   - ~/.config/habitmd on macOS and Linux
func Dir() string {
	if dir := os.Getenv("HABITMD_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "habitmd")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "habitmd")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "habitmd")
}
