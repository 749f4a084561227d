package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// PayloadSourceConfig describes a canned payload endpoint.
type PayloadSourceConfig struct {
	Status      int
	Body        string
	ContentType string
	// Delay stalls every response, for timeout tests.
	Delay time.Duration
}

// PayloadSource is a running canned payload endpoint.
type PayloadSource struct {
	URL  string
	hits atomic.Int64
}

// Hits returns how many requests the source has served.
func (s *PayloadSource) Hits() int {
	return int(s.hits.Load())
}

// StartPayloadSource launches an httptest server that answers every request
// with the configured status and body. It is closed when the test ends.
func StartPayloadSource(t testing.TB, cfg PayloadSourceConfig) *PayloadSource {
	t.Helper()
	if cfg.Status == 0 {
		cfg.Status = http.StatusOK
	}
	if cfg.ContentType == "" {
		cfg.ContentType = "application/json"
	}
	source := &PayloadSource{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		source.hits.Add(1)
		if cfg.Delay > 0 {
			select {
			case <-time.After(cfg.Delay):
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", cfg.ContentType)
		w.WriteHeader(cfg.Status)
		_, _ = w.Write([]byte(cfg.Body))
	}))
	t.Cleanup(server.Close)
	source.URL = server.URL
	return source
}
