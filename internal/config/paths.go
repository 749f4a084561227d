package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A project keeps its config and session database under ConfigDirName at
// the project root.
const (
	ConfigDirName  = ".prescreen"
	ConfigFileName = "config.yml"
	DefaultDBPath  = ConfigDirName + "/session.duckdb"
)

// ConfigPath returns <root>/.prescreen/config.yml.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, ConfigFileName)
}

// RootFromConfigPath returns the directory relative session paths are
// anchored at: the parent of .prescreen, or the config's own directory
// for a config stored elsewhere.
func RootFromConfigPath(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) != ConfigDirName {
		return dir
	}
	return filepath.Dir(dir)
}

// ResolvePath anchors a relative path at root. Blank stays blank.
func ResolvePath(root, path string) string {
	path = strings.TrimSpace(path)
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return path
}

// FindConfigPath returns the nearest .prescreen/config.yml at or above
// startDir (the working directory when blank). It wraps ErrNotFound when
// the search reaches the filesystem root.
func FindConfigPath(startDir string) (string, error) {
	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for dir := start; ; dir = filepath.Dir(dir) {
		candidate := ConfigPath(dir)
		found, err := isConfigFile(candidate)
		if err != nil {
			return "", err
		}
		if found {
			return candidate, nil
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent", ErrNotFound, filepath.Join(ConfigDirName, ConfigFileName), start)
		}
	}
}

func isConfigFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("stat %q: %w", path, err)
	case info.IsDir():
		return false, fmt.Errorf("config path %q is a directory", path)
	}
	return true, nil
}
