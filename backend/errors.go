// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package backend

import (
	"errors"
	"fmt"
)

// ErrSessionEnded marks errors returned after a forced logout: the
// credential pair has been cleared, a warning has been shown, and the user
// has been navigated back to the login route. Callers that opted out of
// automatic logout never see this error for plain non-2xx responses — only
// for renewal failure, which is always terminal.
//
//	if errors.Is(err, backend.ErrSessionEnded) { ... }
var ErrSessionEnded = errors.New("session ended")

// APIError represents a non-2xx response from the backend on a path where
// the orchestrator did not hand the raw response back to the caller.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the raw response body, kept for diagnostics.
	Body []byte
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 256 {
		body = body[:256]
	}
	return fmt.Sprintf("backend: status %d: %s", e.StatusCode, body)
}

// IsStatus checks whether err is an *APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}
