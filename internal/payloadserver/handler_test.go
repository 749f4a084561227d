package payloadserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"prescreen/internal/bridge"
	"prescreen/internal/question"
	"prescreen/internal/testutil"
)

const payloadYAML = `greeting_msg:
  text: Hello
  options: [Start]
questions:
  - type: single
    question: Ready?
    disqualifier: true
    options:
      - value: "Yes"
        score: 1
      - value: "No"
        score: 0
  - type: free_text
    question: Anything else?
`

func writePayload(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	return path
}

func serve(t *testing.T, handler http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "http://example.com"+target, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

// TestHandlerServesRawPayload verifies a YAML file is served as raw JSON.
func TestHandlerServesRawPayload(t *testing.T) {
	handler, err := NewHandler(Config{PayloadPath: writePayload(t, "payload.yml", payloadYAML)})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	resp := serve(t, handler, http.MethodGet, "/v1/screening")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	raw, err := question.ParsePayload(resp.Body.Bytes(), question.FormatJSON)
	if err != nil {
		t.Fatalf("parse served payload: %v", err)
	}
	if len(raw.Questions) != 2 || raw.Questions[0].Type != "single" {
		t.Fatalf("unexpected payload %+v", raw)
	}
}

// TestHandlerServesNormalizedPayload verifies the normalized view carries ids.
func TestHandlerServesNormalizedPayload(t *testing.T) {
	handler, err := NewHandler(Config{PayloadPath: writePayload(t, "payload.yml", payloadYAML)})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	resp := serve(t, handler, http.MethodGet, "/v1/screening/normalized")
	var data question.ScreeningData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Questions[0].ID != "q_0" || data.Questions[0].Type != question.SingleChoice {
		t.Fatalf("unexpected normalized data %+v", data.Questions[0])
	}
}

// TestHandlerHealthAndErrors verifies health, 404, and 405 responses.
func TestHandlerHealthAndErrors(t *testing.T) {
	handler, err := NewHandler(Config{PayloadPath: writePayload(t, "payload.yml", payloadYAML)})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	if resp := serve(t, handler, http.MethodGet, "/healthz"); resp.Code != http.StatusOK || resp.Body.String() != "ok" {
		t.Fatalf("unexpected health response %d %q", resp.Code, resp.Body.String())
	}
	if resp := serve(t, handler, http.MethodGet, "/missing"); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	resp := serve(t, handler, http.MethodPost, "/v1/screening")
	if resp.Code != http.StatusMethodNotAllowed || !strings.Contains(resp.Body.String(), "method not allowed") {
		t.Fatalf("expected 405, got %d %q", resp.Code, resp.Body.String())
	}
}

// TestNewHandlerRejectsInvalidPayload verifies the payload is validated at startup.
func TestNewHandlerRejectsInvalidPayload(t *testing.T) {
	if _, err := NewHandler(Config{}); err == nil {
		t.Fatalf("expected missing path error")
	}
	path := writePayload(t, "payload.json", `{"greeting_msg": {"text": "x"}}`)
	if _, err := NewHandler(Config{PayloadPath: path}); err == nil {
		t.Fatalf("expected payload without questions to be rejected")
	}
}

// TestServeFeedsBridge verifies a running server hydrates the bridge and shuts down on cancel.
func TestServeFeedsBridge(t *testing.T) {
	ctx := testutil.Context(t, 10*time.Second)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	path := writePayload(t, "payload.yml", payloadYAML)
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, Config{
			Addr:        "127.0.0.1:0",
			PayloadPath: path,
			Ready:       func(addr string) { ready <- addr },
		})
	}()

	var addr string
	select {
	case addr = <-ready:
	case err := <-done:
		t.Fatalf("serve exited early: %v", err)
	case <-ctx.Done():
		t.Fatalf("server did not start")
	}
	if body := testutil.HTTPGetOK(t, "http://"+addr+"/healthz"); string(body) != "ok" {
		t.Fatalf("unexpected health body %q", body)
	}

	result, err := bridge.Hydrate(ctx, bridge.HydrateOptions{
		Client: bridge.NewClient("http://"+addr+"/v1/screening", time.Second),
	})
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if result.Source != bridge.SourceRemote || result.Data.GreetingMessage.Text != "Hello" {
		t.Fatalf("unexpected hydrate result %+v", result)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(6 * time.Second):
		t.Fatalf("server did not shut down")
	}
}
