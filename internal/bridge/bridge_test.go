package bridge

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"prescreen/internal/diag"
	"prescreen/internal/question"
	"prescreen/internal/testutil"
)

const remotePayload = `{
  "greeting_msg": {"text": "Hello", "options": ["Go"]},
  "questions": [
    {"type": "single", "question": "Ready?", "options": [{"value": "Yes", "score": 1}, {"value": "No", "score": 0}]},
    {"type": "free_text", "question": "Anything else?"}
  ]
}`

// TestFallbackDataIsValid verifies the bundled payload normalizes cleanly.
func TestFallbackDataIsValid(t *testing.T) {
	data, err := FallbackData()
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if len(data.Questions) == 0 {
		t.Fatalf("expected fallback questions")
	}
	if err := question.Check(data); err != nil {
		t.Fatalf("fallback invariants: %v", err)
	}
	if !data.Questions[0].Disqualifier || !data.Questions[0].EnableScoring {
		t.Fatalf("expected first fallback question to be a scored disqualifier, got %+v", data.Questions[0])
	}
}

// TestFetchRawSuccess verifies a 200 response decodes into a raw payload.
func TestFetchRawSuccess(t *testing.T) {
	source := testutil.StartPayloadSource(t, testutil.PayloadSourceConfig{Body: remotePayload})
	raw, err := NewClient(source.URL, time.Second).FetchRaw(testutil.Context(t, 0))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if raw.GreetingMsg == nil || raw.GreetingMsg.Text != "Hello" || len(raw.Questions) != 2 {
		t.Fatalf("unexpected payload %+v", raw)
	}
}

// TestFetchRawStatusError verifies non-2xx responses are transport errors.
func TestFetchRawStatusError(t *testing.T) {
	source := testutil.StartPayloadSource(t, testutil.PayloadSourceConfig{Status: http.StatusInternalServerError, Body: `{"error":"down"}`})
	_, err := NewClient(source.URL, time.Second).FetchRaw(testutil.Context(t, 0))
	var transport *TransportError
	if !errors.As(err, &transport) || !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if transport.Status != http.StatusInternalServerError || !strings.Contains(err.Error(), "down") {
		t.Fatalf("unexpected transport error %v", err)
	}
}

// TestFetchRawBadBody verifies undecodable bodies are transport errors.
func TestFetchRawBadBody(t *testing.T) {
	source := testutil.StartPayloadSource(t, testutil.PayloadSourceConfig{Body: "<html>"})
	_, err := NewClient(source.URL, time.Second).FetchRaw(testutil.Context(t, 0))
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

// TestFetchRawTimeout verifies the client timeout ends a stalled request.
func TestFetchRawTimeout(t *testing.T) {
	source := testutil.StartPayloadSource(t, testutil.PayloadSourceConfig{Body: remotePayload, Delay: 2 * time.Second})
	_, err := NewClient(source.URL, 50*time.Millisecond).FetchRaw(testutil.Context(t, 0))
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

// TestNewClientDefaultTimeout verifies a zero timeout uses the default.
func TestNewClientDefaultTimeout(t *testing.T) {
	client := NewClient(" http://example ", 0)
	if client.client.Timeout != DefaultTimeout {
		t.Fatalf("expected default timeout, got %s", client.client.Timeout)
	}
	if client.Endpoint() != "http://example" {
		t.Fatalf("expected trimmed endpoint, got %q", client.Endpoint())
	}
}

// TestHydrateRemote verifies a good remote payload is normalized and used.
func TestHydrateRemote(t *testing.T) {
	source := testutil.StartPayloadSource(t, testutil.PayloadSourceConfig{Body: remotePayload})
	result, err := Hydrate(testutil.Context(t, 0), HydrateOptions{Client: NewClient(source.URL, time.Second)})
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if result.Source != SourceRemote || len(result.Data.Questions) != 2 || result.Data.Questions[0].ID != "q_0" {
		t.Fatalf("unexpected result %+v", result)
	}
}

// TestHydrateFallsBackOnServerError verifies a 500 yields the fallback and a warning.
func TestHydrateFallsBackOnServerError(t *testing.T) {
	source := testutil.StartPayloadSource(t, testutil.PayloadSourceConfig{Status: http.StatusInternalServerError})
	var logs bytes.Buffer
	result, err := Hydrate(testutil.Context(t, 0), HydrateOptions{
		Client: NewClient(source.URL, time.Second),
		Logger: diag.New(&logs, false, true),
	})
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if result.Source != SourceFallback || !errors.Is(result.Cause, ErrTransport) {
		t.Fatalf("expected fallback after transport error, got %+v", result)
	}
	if !strings.Contains(logs.String(), "[warn] payload fetch failed") {
		t.Fatalf("expected warning, got %q", logs.String())
	}
}

// TestHydrateFallsBackOnInvalidShape verifies a payload without questions is rejected.
func TestHydrateFallsBackOnInvalidShape(t *testing.T) {
	source := testutil.StartPayloadSource(t, testutil.PayloadSourceConfig{Body: `{"greeting_msg": {"text": "x"}}`})
	result, err := Hydrate(testutil.Context(t, 0), HydrateOptions{Client: NewClient(source.URL, time.Second)})
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if result.Source != SourceFallback || !errors.Is(result.Cause, question.ErrNormalization) {
		t.Fatalf("expected fallback after normalization error, got %+v", result)
	}
}

// TestHydratePersistedSkipsFetch verifies saved state wins without touching the network.
func TestHydratePersistedSkipsFetch(t *testing.T) {
	source := testutil.StartPayloadSource(t, testutil.PayloadSourceConfig{Body: remotePayload})
	saved, err := FallbackData()
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	saved.Questions = saved.Questions[:1]
	result, err := Hydrate(testutil.Context(t, 0), HydrateOptions{
		Client: NewClient(source.URL, time.Second),
		Persisted: func(context.Context) (question.ScreeningData, bool, error) {
			return saved, true, nil
		},
	})
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if result.Source != SourcePersisted || len(result.Data.Questions) != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if source.Hits() != 0 {
		t.Fatalf("expected no fetch, got %d requests", source.Hits())
	}
}

// TestHydratePersistedError verifies a failing persisted load is reported.
func TestHydratePersistedError(t *testing.T) {
	_, err := Hydrate(testutil.Context(t, 0), HydrateOptions{
		Persisted: func(context.Context) (question.ScreeningData, bool, error) {
			return question.ScreeningData{}, false, errors.New("disk gone")
		},
	})
	if err == nil || !strings.Contains(err.Error(), "disk gone") {
		t.Fatalf("expected persisted error, got %v", err)
	}
}

// TestHydrateNoEndpoint verifies an empty endpoint goes straight to the fallback.
func TestHydrateNoEndpoint(t *testing.T) {
	result, err := Hydrate(testutil.Context(t, 0), HydrateOptions{Client: NewClient("", 0)})
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if result.Source != SourceFallback || result.Cause != nil {
		t.Fatalf("unexpected result %+v", result)
	}
}

// TestHydrateCustomFallback verifies a configured fallback replaces the bundled one.
func TestHydrateCustomFallback(t *testing.T) {
	result, err := Hydrate(testutil.Context(t, 0), HydrateOptions{
		Fallback: func() (question.RawPayload, error) {
			return question.ParsePayload([]byte(remotePayload), question.FormatJSON)
		},
	})
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if len(result.Data.Questions) != 2 || result.Data.GreetingMessage.Text != "Hello" {
		t.Fatalf("expected custom fallback data, got %+v", result.Data)
	}
}

// TestHydrateBrokenCustomFallback verifies the bundled payload backs a broken custom one.
func TestHydrateBrokenCustomFallback(t *testing.T) {
	bundled, _ := FallbackData()
	result, err := Hydrate(testutil.Context(t, 0), HydrateOptions{
		Fallback: func() (question.RawPayload, error) { return question.RawPayload{}, errors.New("missing file") },
	})
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if len(result.Data.Questions) != len(bundled.Questions) {
		t.Fatalf("expected bundled fallback, got %+v", result.Data)
	}
}

// TestHydrateCancelled verifies a cancelled context is reported.
func TestHydrateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Hydrate(ctx, HydrateOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}
