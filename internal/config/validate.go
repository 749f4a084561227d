package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Source.Endpoint != "" {
		parsed, err := url.Parse(cfg.Source.Endpoint)
		switch {
		case err != nil:
			collector.add("source.endpoint", fmt.Sprintf("invalid url: %v", err))
		case parsed.Scheme != "http" && parsed.Scheme != "https":
			collector.add("source.endpoint", "must use http or https")
		case parsed.Host == "":
			collector.add("source.endpoint", "must include a host")
		}
	}
	if cfg.Source.TimeoutSeconds < 0 {
		collector.add("source.timeout_seconds", "must be positive")
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		collector.add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}

	return collector.result()
}
