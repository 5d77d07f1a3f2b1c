package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "BRICKSET_"
	// EnvConfigPath names the config file explicitly. It is read after .env
	// autoload, so it may be set there too.
	EnvConfigPath = EnvPrefix + "CONFIG"
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "brickset.yaml"
	// ConfigDirName is the directory under the user config dir
	ConfigDirName = "brickset"
)

// SearchPaths lists the implicit config locations, most specific first:
// ./brickset.yaml, $XDG_CONFIG_HOME/brickset/config.yaml and
// ~/.config/brickset/config.yaml.
func SearchPaths() []string {
	paths := []string{ConfigFileName}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, ConfigDirName, "config.yaml"))
	}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", ConfigDirName, "config.yaml"))
	}
	return paths
}

// FindConfigPath returns the config file Load should read, or "" when there
// is none. A path named by $BRICKSET_CONFIG must exist; the implicit
// locations are optional.
func FindConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if !isFile(path) {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, path, fs.ErrNotExist)
		}
		return path, nil
	}

	for _, path := range SearchPaths() {
		if isFile(path) {
			return filepath.Abs(path)
		}
	}
	return "", nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
