package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"prescreen/internal/payloadserver"
)

// TestServeRequiresPayload verifies serve needs a payload path.
func TestServeRequiresPayload(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"serve"}, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

// TestServePassesConfig verifies flags reach the payload server.
func TestServePassesConfig(t *testing.T) {
	original := servePayload
	t.Cleanup(func() { servePayload = original })

	var got payloadserver.Config
	servePayload = func(ctx context.Context, cfg payloadserver.Config) error {
		got = cfg
		cfg.Ready("127.0.0.1:9999")
		return nil
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"serve", "--payload", "payload.json", "--addr", "127.0.0.1:0", "--origins", "http://a.test, http://b.test"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	if got.PayloadPath != "payload.json" || got.Addr != "127.0.0.1:0" {
		t.Fatalf("unexpected config %+v", got)
	}
	if len(got.AllowedOrigins) != 2 || got.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", got.AllowedOrigins)
	}
	if !strings.Contains(out.String(), "http://127.0.0.1:9999/v1/screening") {
		t.Fatalf("expected serving url, got %q", out.String())
	}
}
