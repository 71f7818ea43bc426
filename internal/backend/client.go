// Package backend implements the HTTP client for the reservation backend:
// typed API surfaces over a shared envelope-decoding core, with the bearer
// credential attached by an interceptor transport.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Client is the shared HTTP core used by all typed API surfaces.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client for the backend at baseURL. invalidate is called by
// the transport whenever the backend rejects a session credential; pass nil
// to skip invalidation (tests). A non-positive timeout falls back to the
// default.
func New(baseURL string, timeout time.Duration, invalidate ports.InvalidateFunc, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				next:       http.DefaultTransport,
				invalidate: invalidate,
			},
		},
		log: log,
	}
}

// envelope is the backend's canonical response wrapper. Some list endpoints
// nest pagination metadata inside data, others attach it as a sibling; both
// shapes are accepted and normalized by decodePage.
type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
	Meta    *ports.PageMeta     `json:"meta"`
}

// do issues one request and decodes the response envelope into out. Non-2xx
// responses become *domain.APIError carrying the backend's message; network
// failures become domain.ErrBackendUnavailable; a rejected credential has
// already been converted to domain.ErrSessionExpired by the transport.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	_, err := c.doEnvelope(ctx, method, path, query, body, out)
	return err
}

func (c *Client) doEnvelope(ctx context.Context, method, path string, query url.Values, body, out any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, domain.ErrSessionExpired
		}
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode < 400 {
				return nil, fmt.Errorf("%w: malformed response", domain.ErrBackendUnavailable)
			}
		}
	}

	if resp.StatusCode >= 400 {
		return nil, &domain.APIError{
			Status:  resp.StatusCode,
			Message: env.Message,
			Fields:  env.Errors,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("%w: decode response: %v", domain.ErrBackendUnavailable, err)
		}
	}
	return &env, nil
}

// notFoundAs rewrites a backend 404 into the given sentinel so callers can
// branch on resource-specific errors.
func notFoundAs(err, sentinel error) error {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return sentinel
	}
	return err
}
