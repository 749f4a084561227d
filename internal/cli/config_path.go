package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"prescreen/internal/config"
)

// project is a loaded config and the directory its paths are relative to.
type project struct {
	cfg        config.Config
	root       string
	configPath string
}

// resolveConfigPath normalizes a config path or finds it from CWD. An empty
// result with a nil error means no config exists.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		found, err := config.FindConfigPath("")
		if errors.Is(err, config.ErrNotFound) {
			return "", nil
		}
		return found, err
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadProject loads the config, falling back to defaults rooted at CWD
// when none is found.
func loadProject(configPath string) (project, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return project{}, err
	}
	if resolved == "" {
		wd, err := os.Getwd()
		if err != nil {
			return project{}, fmt.Errorf("get working directory: %w", err)
		}
		return project{cfg: config.Default(), root: wd}, nil
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return project{}, err
	}
	return project{cfg: cfg, root: config.RootFromConfigPath(resolved), configPath: resolved}, nil
}

func (p project) dbPath() string {
	return config.ResolvePath(p.root, p.cfg.Session.DBPath)
}

func (p project) fallbackPath() string {
	return config.ResolvePath(p.root, p.cfg.Source.FallbackPath)
}
