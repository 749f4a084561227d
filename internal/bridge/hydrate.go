package bridge

import (
	"context"
	"errors"
	"fmt"

	"prescreen/internal/diag"
	"prescreen/internal/question"
)

// Source records where hydrated data came from.
type Source string

const (
	SourcePersisted Source = "persisted"
	SourceRemote    Source = "remote"
	SourceFallback  Source = "fallback"
)

// HydrateOptions wires the inputs of Hydrate. Every field is optional.
type HydrateOptions struct {
	// Persisted returns previously saved data; ok=false means nothing is saved.
	Persisted func(ctx context.Context) (data question.ScreeningData, ok bool, err error)
	// Client is the remote source. A nil client or an empty endpoint skips
	// the fetch.
	Client *Client
	// Fallback replaces the bundled payload. If it fails, the bundled
	// payload is used instead.
	Fallback func() (question.RawPayload, error)
	Logger   *diag.Logger
}

// Result is the outcome of Hydrate.
type Result struct {
	Data   question.ScreeningData
	Source Source
	// Cause is the failure that forced the fallback, if any.
	Cause error
}

// Hydrate picks the initial collection: persisted state first, then the
// remote source, then the fallback. Fetch and normalization failures are
// logged and absorbed. Errors are returned only for a failed persisted
// load, a broken bundled fallback, or a cancelled context.
func Hydrate(ctx context.Context, opts HydrateOptions) (Result, error) {
	logger := opts.Logger
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if opts.Persisted != nil {
		data, ok, err := opts.Persisted(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("load persisted session: %w", err)
		}
		if ok && len(data.Questions) > 0 {
			logger.Info("restored persisted session", "questions", len(data.Questions))
			return Result{Data: data, Source: SourcePersisted}, nil
		}
	}

	var cause error
	if opts.Client != nil && opts.Client.Endpoint() != "" {
		data, err := fetchRemote(ctx, opts.Client)
		if err == nil {
			logger.Info("loaded remote payload", "endpoint", opts.Client.Endpoint(), "questions", len(data.Questions))
			return Result{Data: data, Source: SourceRemote}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		cause = err
		logFailure(logger, opts.Client.Endpoint(), err)
	} else {
		logger.Debug("no payload endpoint configured")
	}

	data, err := fallbackData(opts.Fallback, logger)
	if err != nil {
		return Result{}, err
	}
	logger.Info("using fallback payload", "questions", len(data.Questions))
	return Result{Data: data, Source: SourceFallback, Cause: cause}, nil
}

func fetchRemote(ctx context.Context, client *Client) (question.ScreeningData, error) {
	raw, err := client.FetchRaw(ctx)
	if err != nil {
		return question.ScreeningData{}, err
	}
	return question.Normalize(raw)
}

func logFailure(logger *diag.Logger, endpoint string, err error) {
	var transport *TransportError
	switch {
	case errors.As(err, &transport):
		logger.Warn("payload fetch failed", "endpoint", endpoint, "status", transport.Status, "err", transport.Err)
	case errors.Is(err, question.ErrNormalization):
		logger.Warn("payload rejected", "endpoint", endpoint, "err", err)
	default:
		logger.Warn("payload unavailable", "endpoint", endpoint, "err", err)
	}
}

func fallbackData(custom func() (question.RawPayload, error), logger *diag.Logger) (question.ScreeningData, error) {
	if custom != nil {
		raw, err := custom()
		if err == nil {
			data, normErr := question.Normalize(raw)
			if normErr == nil {
				return data, nil
			}
			err = normErr
		}
		logger.Warn("configured fallback unusable; using bundled payload", "err", err)
	}
	return FallbackData()
}
