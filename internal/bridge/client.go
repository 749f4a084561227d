// Package bridge hydrates the question store from persisted state, a remote
// payload source, or the bundled fallback.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"prescreen/internal/question"
)

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 10 * time.Second

// maxPayloadBytes caps the response body read from the source.
const maxPayloadBytes = 4 << 20

// Client fetches raw payloads from a remote endpoint. It never retries.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient constructs a client for endpoint. A non-positive timeout uses
// DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		client:   &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the configured source URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchRaw requests the payload and decodes it. Non-2xx responses,
// transport failures, and bodies that are not JSON return a
// *TransportError. Bodies that decode but violate the payload shape return
// a question.NormalizationError.
func (c *Client) FetchRaw(ctx context.Context) (question.RawPayload, error) {
	body, status, err := c.get(ctx)
	if err != nil {
		return question.RawPayload{}, &TransportError{Endpoint: c.endpoint, Status: status, Err: err}
	}
	if status < 200 || status >= 300 {
		return question.RawPayload{}, &TransportError{Endpoint: c.endpoint, Status: status, Err: decodeHTTPError(body)}
	}
	raw, err := question.ParsePayload(body, question.FormatJSON)
	if err != nil {
		if errors.Is(err, question.ErrNormalization) {
			return question.RawPayload{}, err
		}
		return question.RawPayload{}, &TransportError{Endpoint: c.endpoint, Status: status, Err: err}
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func decodeHTTPError(body []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return errors.New(resp.Error)
	}
	return fmt.Errorf("unexpected status")
}
