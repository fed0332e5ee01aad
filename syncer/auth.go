// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer

import (
	"context"
	"errors"

	"github.com/praxis-foundation/praxis/backend"
)

// login runs the full sign-in flow: exchange the login code, fetch the
// profile, then enter the academy. Any failure returns to the login
// route; when the session ended itself it has already warned and
// navigated there.
func (s *Syncer) login(ctx context.Context, intent Login) {
	if err := s.backend.Authenticate(ctx, intent.Code); err != nil {
		s.logger.Warn("login failed", "error", err)
		if !errors.Is(err, backend.ErrSessionEnded) {
			s.navigator.NavigateTo("/")
		}
		return
	}
	user, err := s.backend.FetchUser(ctx)
	if err != nil {
		s.logger.Warn("fetching profile after login failed", "error", err)
		if !errors.Is(err, backend.ErrSessionEnded) {
			s.navigator.NavigateTo("/")
		}
		return
	}
	s.store.SetUser(user)
	s.navigator.NavigateTo("/academy")
}

func (s *Syncer) fetchUser(ctx context.Context) {
	user, err := s.backend.FetchUser(ctx)
	if err != nil {
		s.logger.Warn("fetching profile failed", "error", err)
		return
	}
	s.store.SetUser(user)
}
