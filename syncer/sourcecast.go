// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer

import (
	"context"
	"time"

	"github.com/praxis-foundation/praxis/backend"
)

func (s *Syncer) fetchSourcecastIndex(ctx context.Context) {
	entries, err := s.backend.FetchSourcecastIndex(ctx)
	if err != nil {
		s.logger.Warn("fetching sourcecast index failed", "error", err)
		return
	}
	s.store.SetSourcecastIndex(entries)
}

func (s *Syncer) saveSourcecast(ctx context.Context, intent SaveSourcecast) {
	if s.role() == backend.RoleStudent {
		s.notifier.ShowWarning("Only staff can save sourcecast.")
		return
	}

	if err := s.backend.UploadSourcecast(ctx, intent.Upload); err != nil {
		s.warnFailure(err, submitStatusMessage)
		return
	}
	s.notifier.ShowSuccess("Saved!", time.Second)
	s.navigator.NavigateTo("/sourcecast")
}
