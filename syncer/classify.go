// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/praxis-foundation/praxis/backend"
)

const messageUnreachable = "Couldn't reach our servers. Are you online?"

// warnFailure classifies a failed round-trip into a user-facing warning.
// Transport-level failures read as a connectivity problem; HTTP-level
// failures go through messageFor with the status code. A session that
// already ended has warned and navigated on its own, so nothing more is
// shown.
func (s *Syncer) warnFailure(err error, messageFor func(status int) string) {
	if errors.Is(err, backend.ErrSessionEnded) {
		return
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		s.notifier.ShowWarning(messageFor(apiErr.StatusCode))
		return
	}
	s.notifier.ShowWarning(messageUnreachable)
}

func answerStatusMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "Session expired. Please login again."
	case http.StatusBadRequest:
		return "Can't save an empty answer."
	default:
		return fmt.Sprintf("Something went wrong (got %d response)", status)
	}
}

func submitStatusMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "Session expired. Please login again."
	default:
		return fmt.Sprintf("Something went wrong (got %d response)", status)
	}
}

func gradingStatusMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "Session expired. Please login again."
	default:
		return fmt.Sprintf("Error %d: %s", status, http.StatusText(status))
	}
}
