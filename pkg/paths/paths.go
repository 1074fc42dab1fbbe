// Package paths locates devmk's description and configuration files.
// It follows the XDG Base Directory specification for user-level files.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/devmk/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for devmk
	EnvConfigDir = "DEVMK_CONFIG_DIR"

	// EnvXDGConfigHome is the standard XDG config home variable
	EnvXDGConfigHome = "XDG_CONFIG_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for devmk-specific files
	AppDirName = "devmk"

	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.toml"
)

// DescriptionFiles are the file names searched, in order, when no
// description path is given
var DescriptionFiles = []string{
	"devmk.toml",
	".devmk.toml",
	"devmk.yaml",
	"devmk.yml",
}

// ConfigDir returns the devmk config directory.
// DEVMK_CONFIG_DIR wins over XDG_CONFIG_HOME, which wins over the xdg default.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if home := os.Getenv(EnvXDGConfigHome); home != "" {
		return filepath.Join(home, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// UserConfigPath returns the path of the user-level config file
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// FindDescription returns the first description file present in dir
func FindDescription(dir string) (string, error) {
	for _, name := range DescriptionFiles {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrNotFound, "no description file found in %s", dir).
		WithDetail("dir", dir).
		WithDetail("candidates", DescriptionFiles)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not expanded
	return path
}
