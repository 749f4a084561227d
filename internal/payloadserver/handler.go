package payloadserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"prescreen/internal/question"
)

// NewHandler loads and validates the payload once, then routes requests.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.PayloadPath == "" {
		return nil, errors.New("payloadserver: payload path is required")
	}
	raw, err := question.LoadPayload(cfg.PayloadPath)
	if err != nil {
		return nil, fmt.Errorf("payloadserver: %w", err)
	}
	data, err := question.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("payloadserver: %w", err)
	}
	rawBody, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("payloadserver: encode payload: %w", err)
	}
	normalizedBody, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("payloadserver: encode normalized payload: %w", err)
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/v1/screening", func(sr chi.Router) {
		sr.Get("/", writeJSON(rawBody))
		sr.Get("/normalized", writeJSON(normalizedBody))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	return r, nil
}

func writeJSON(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}
