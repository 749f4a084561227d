package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
source:
  # Remote endpoint serving the raw screening payload. Leave empty to use the
  # bundled fallback.
  endpoint: ""
  timeout_seconds: 10
  # Optional payload file (json or yaml) replacing the bundled fallback.
  fallback_path: ""
session:
  db_path: .prescreen/session.duckdb
  id: default
ui:
  mode: auto
  no_color: false
`

// DefaultConfigYAML returns the scaffolded config body.
func DefaultConfigYAML() string {
	return defaultConfig
}

// Scaffold writes the default config to path. It refuses to overwrite.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
