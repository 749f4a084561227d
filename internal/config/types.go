package config

// Config is the prescreen configuration file.
type Config struct {
	Version int           `yaml:"version"`
	Source  SourceConfig  `yaml:"source"`
	Session SessionConfig `yaml:"session"`
	UI      UIConfig      `yaml:"ui"`
}

// SourceConfig describes where the raw payload comes from.
type SourceConfig struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	FallbackPath   string `yaml:"fallback_path"`
}

// SessionConfig describes where edits are persisted.
type SessionConfig struct {
	DBPath string `yaml:"db_path"`
	ID     string `yaml:"id"`
}

// UIConfig selects the editor host.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}
