package config

import "strings"

// DefaultTimeoutSeconds bounds a payload fetch.
const DefaultTimeoutSeconds = 10

// DefaultSessionID keys the persisted session when none is configured.
const DefaultSessionID = "default"

// Normalize fills defaults in place.
func Normalize(cfg *Config) {
	cfg.Source.Endpoint = strings.TrimSpace(cfg.Source.Endpoint)
	cfg.Source.FallbackPath = strings.TrimSpace(cfg.Source.FallbackPath)
	if cfg.Source.TimeoutSeconds == 0 {
		cfg.Source.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if strings.TrimSpace(cfg.Session.DBPath) == "" {
		cfg.Session.DBPath = DefaultDBPath
	}
	if strings.TrimSpace(cfg.Session.ID) == "" {
		cfg.Session.ID = DefaultSessionID
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "auto"
	}
}
