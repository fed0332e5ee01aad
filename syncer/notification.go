// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer

import (
	"context"
	"errors"
	"slices"

	"github.com/praxis-foundation/praxis/backend"
)

// fetchNotifications replaces the notification set wholesale. A failed
// fetch replaces it with an empty set rather than leaving stale entries
// behind.
func (s *Syncer) fetchNotifications(ctx context.Context) {
	notifications, err := s.backend.FetchNotifications(ctx)
	if err != nil {
		s.logger.Warn("fetching notifications failed", "error", err)
		notifications = []backend.Notification{}
	}
	s.store.SetNotifications(notifications)
}

// acknowledgeNotifications removes the selected notifications from local
// state, then confirms the acknowledgment with the backend. The removal
// is not reverted when the confirmation fails.
func (s *Syncer) acknowledgeNotifications(ctx context.Context, intent AcknowledgeNotifications) {
	notifications := s.store.Notifications()

	selected := notifications
	if intent.Filter != nil {
		selected = intent.Filter(notifications)
	}
	if len(selected) == 0 {
		return
	}

	ids := make([]int64, len(selected))
	for i, notification := range selected {
		ids[i] = notification.ID
	}

	remaining := make([]backend.Notification, 0, len(notifications))
	for _, notification := range notifications {
		if !slices.Contains(ids, notification.ID) {
			remaining = append(remaining, notification)
		}
	}
	s.store.SetNotifications(remaining)

	if err := s.backend.AcknowledgeNotifications(ctx, ids); err != nil {
		if !errors.Is(err, backend.ErrSessionEnded) {
			s.notifier.ShowWarning("Something went wrong, couldn't acknowledge")
		}
	}
}

func (s *Syncer) notifyChat(ctx context.Context, intent NotifyChat) {
	if err := s.backend.NotifyChat(ctx, intent.AssessmentID, intent.SubmissionID); err != nil {
		s.logger.Debug("chat notify failed", "error", err)
	}
}
