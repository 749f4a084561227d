package cli

import (
	"context"
	"os"
	"time"

	"prescreen/internal/bridge"
	"prescreen/internal/diag"
	"prescreen/internal/question"
	"prescreen/internal/sessionstore"
)

// hydrateOptions wires the configured remote and fallback sources. The
// persisted source is left to the caller.
func (p project) hydrateOptions(logger *diag.Logger) bridge.HydrateOptions {
	opts := bridge.HydrateOptions{Logger: logger}
	if p.cfg.Source.Endpoint != "" {
		timeout := time.Duration(p.cfg.Source.TimeoutSeconds) * time.Second
		opts.Client = bridge.NewClient(p.cfg.Source.Endpoint, timeout)
	}
	if path := p.fallbackPath(); path != "" {
		opts.Fallback = func() (question.RawPayload, error) {
			return question.LoadPayload(path)
		}
	}
	return opts
}

// persistedReader returns a read-only persisted source when the session
// database already exists. It never creates the database.
func (p project) persistedReader() func(ctx context.Context) (question.ScreeningData, bool, error) {
	path := p.dbPath()
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	sessionID := p.cfg.Session.ID
	return func(ctx context.Context) (question.ScreeningData, bool, error) {
		sessions, err := sessionstore.Open(ctx, path)
		if err != nil {
			return question.ScreeningData{}, false, err
		}
		defer sessions.Close()
		return sessions.Load(ctx, sessionID)
	}
}
