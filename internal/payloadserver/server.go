// Package payloadserver serves a screening payload file over HTTP so the
// bridge has a local remote source to hydrate from.
package payloadserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"prescreen/internal/diag"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8787"

// Config captures the settings for serving a payload file.
type Config struct {
	Addr           string
	PayloadPath    string
	AllowedOrigins []string
	Logger         *diag.Logger
	// Ready, when set, receives the bound address once the listener is up.
	Ready func(addr string)
}

// Serve starts the payload server and blocks until ctx is cancelled or the
// listener fails.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("payloadserver: context is nil")
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	addr := listener.Addr().String()
	cfg.Logger.Info("serving payload", "addr", addr, "path", cfg.PayloadPath)
	if cfg.Ready != nil {
		cfg.Ready(addr)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		cfg.Logger.Info("payload server stopped", "addr", addr)
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
