// Package backend wraps the order-system backend behind typed adapter
// calls: order fetch, order search, issue classification, and reply
// drafting. Every call is a single blocking round trip with normalized
// errors; there are no retries.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 30 * time.Second

// maxResponseBytes caps how much of a backend response body is read.
const maxResponseBytes = 1 << 20

// CallObserver receives one event per backend call, typically to drive
// metrics. status is "success" or "error".
type CallObserver func(call, status string, seconds float64)

// Config configures a backend Client.
type Config struct {
	// BaseURL is the backend root, e.g. http://localhost:8000.
	BaseURL string
	// Timeout bounds each round trip. Zero means 30s.
	Timeout time.Duration
	// Observer is invoked once per call. May be nil.
	Observer CallObserver
}

// Client is a stateless adapter over the order-system backend. It is
// safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	observer   CallObserver
}

// New creates a backend client for the given configuration.
func New(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: invalid base url %q: %w", cfg.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend: base url %q must be http or https", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		observer:   cfg.Observer,
	}, nil
}

// observe reports one finished call to the observer, if set.
func (c *Client) observe(call string, start time.Time, err error) {
	if c.observer == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	c.observer(call, status, time.Since(start).Seconds())
}

// do performs one backend round trip and returns the HTTP status and
// body. payload, when non-nil, is sent as a JSON POST body; otherwise
// the request is a GET. Transport failures are wrapped; HTTP error
// statuses are returned to the caller to interpret.
func (c *Client) do(ctx context.Context, path string, query url.Values, payload any) (int, []byte, error) {
	u := *c.baseURL
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var req *http.Request
	var err error
	if payload != nil {
		body, merr := json.Marshal(payload)
		if merr != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", merr)
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
		if err == nil {
			req.Header.Set("Content-Type", "application/json")
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	}
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}
