// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/praxis-foundation/praxis/lib/httpx"
)

// apiPrefix is the versioned path prefix under the backend root. All
// request paths in this package are relative to it.
const apiPrefix = "/v1/"

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the backend root (e.g., "https://backend.example.org").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client is an unauthenticated backend client. It holds the backend root
// URL and HTTP transport, shared across Sessions.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new unauthenticated backend client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("backend: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("backend: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// CloseIdleConnections closes idle HTTP connections in the underlying
// transport's connection pool. Call this after a network disruption to
// force subsequent requests onto fresh TCP connections.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Response is the outcome of one HTTP exchange with the backend: the
// status code and the fully-read body. Callers that opted out of
// automatic logout receive non-2xx Responses as-is for domain-specific
// interpretation.
type Response struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the raw response body.
	Body []byte
}

// OK reports whether the status code is in the 200-299 range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode JSON-decodes the response body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("backend: decoding response body: %w", err)
	}
	return nil
}

// CallOptions configures one authenticated call. The zero value is a
// plain JSON GET: Accept header attached, no body, no renewal, forced
// logout on failure.
type CallOptions struct {
	// Body is JSON-encoded as the request body when non-nil.
	Body any
	// RawBody is sent verbatim when non-empty (multipart uploads).
	// ContentType must be set alongside it. RawBody is a byte slice,
	// not a reader, so the renewal retry can replay it.
	RawBody []byte
	// ContentType overrides the Content-Type header for RawBody.
	ContentType string
	// Query is appended to the request URL when non-nil.
	Query url.Values
	// OmitAccept leaves out the "Accept: application/json" header, for
	// endpoints that answer in plain text.
	OmitAccept bool
	// Refresh enables the renew-on-401 protocol for this call.
	Refresh bool
	// NoAutoLogout hands non-2xx responses (and transport failures)
	// back to the caller instead of forcing a logout. Used by mutating
	// endpoints where the user must keep the chance to retry in place.
	NoAutoLogout bool
	// ErrorMessage is shown instead of the generic warning when this
	// call ends in a forced logout.
	ErrorMessage string
}

// do performs a single HTTP exchange. accessToken may be empty for
// unauthenticated endpoints. The returned error indicates a transport
// failure; HTTP-level failures come back as a Response.
func (c *Client) do(ctx context.Context, method, path, accessToken string, opts CallOptions) (*Response, error) {
	requestURL := c.baseURL + apiPrefix + path
	if opts.Query != nil {
		requestURL += "?" + opts.Query.Encode()
	}

	var bodyReader io.Reader
	contentType := ""
	switch {
	case opts.RawBody != nil:
		bodyReader = bytes.NewReader(opts.RawBody)
		contentType = opts.ContentType
	case opts.Body != nil:
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("backend: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("backend: creating request: %w", err)
	}

	if !opts.OmitAccept {
		request.Header.Set("Accept", "application/json")
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	if accessToken != "" {
		request.Header.Set("Authorization", "Bearer "+accessToken)
	}

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	body, err := httpx.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("backend: reading %s %s response: %w", method, path, err)
	}

	c.logger.Debug("backend call",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"duration", time.Since(start),
	)
	return &Response{StatusCode: response.StatusCode, Body: body}, nil
}
