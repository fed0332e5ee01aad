// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/praxis-foundation/praxis/backend"
)

// Config holds the collaborators of a Syncer.
type Config struct {
	// Backend is the remote side. Required.
	Backend Backend
	// Store is the local state store. Required.
	Store Store
	// Notifier receives success and warning messages. Required.
	Notifier backend.Notifier
	// Navigator receives route changes (login, academy, sourcecast).
	// Required.
	Navigator backend.Navigator
	// Logger is used for structured logging. If nil, slog.Default() is
	// used.
	Logger *slog.Logger
}

// Syncer dispatches intents to their synchronization tasks, each task
// running as an independent unit of work.
type Syncer struct {
	backend   Backend
	store     Store
	notifier  backend.Notifier
	navigator backend.Navigator
	logger    *slog.Logger

	group sync.WaitGroup
}

// New creates a Syncer.
func New(config Config) (*Syncer, error) {
	if config.Backend == nil {
		return nil, fmt.Errorf("syncer: Backend is required")
	}
	if config.Store == nil {
		return nil, fmt.Errorf("syncer: Store is required")
	}
	if config.Notifier == nil {
		return nil, fmt.Errorf("syncer: Notifier is required")
	}
	if config.Navigator == nil {
		return nil, fmt.Errorf("syncer: Navigator is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{
		backend:   config.Backend,
		store:     config.Store,
		notifier:  config.Notifier,
		navigator: config.Navigator,
		logger:    logger,
	}, nil
}

// Dispatch spawns an independent unit of work for the intent and returns
// immediately. Units of the same intent type may run concurrently; no
// ordering is enforced between them.
func (s *Syncer) Dispatch(ctx context.Context, intent Intent) {
	s.group.Add(1)
	go func() {
		defer s.group.Done()
		s.handle(ctx, intent)
	}()
}

// Run consumes intents from the channel until it closes or the context
// is cancelled, then waits for in-flight units to drain.
func (s *Syncer) Run(ctx context.Context, intents <-chan Intent) {
	defer s.group.Wait()
	for {
		select {
		case <-ctx.Done():
			return
		case intent, ok := <-intents:
			if !ok {
				return
			}
			s.Dispatch(ctx, intent)
		}
	}
}

// Wait blocks until all dispatched units of work have finished.
func (s *Syncer) Wait() {
	s.group.Wait()
}

func (s *Syncer) handle(ctx context.Context, intent Intent) {
	switch intent := intent.(type) {
	case Login:
		s.login(ctx, intent)
	case FetchUser:
		s.fetchUser(ctx)
	case FetchAssessmentOverviews:
		s.fetchAssessmentOverviews(ctx)
	case FetchAssessment:
		s.fetchAssessment(ctx, intent)
	case SubmitAnswer:
		s.submitAnswer(ctx, intent)
	case SubmitAssessment:
		s.submitAssessment(ctx, intent)
	case FetchGradingOverviews:
		s.fetchGradingOverviews(ctx, intent)
	case FetchGrading:
		s.fetchGrading(ctx, intent)
	case SubmitGrading:
		s.submitGrading(ctx, intent)
	case Unsubmit:
		s.unsubmit(ctx, intent)
	case FetchNotifications:
		s.fetchNotifications(ctx)
	case AcknowledgeNotifications:
		s.acknowledgeNotifications(ctx, intent)
	case NotifyChat:
		s.notifyChat(ctx, intent)
	case FetchSourcecastIndex:
		s.fetchSourcecastIndex(ctx)
	case SaveSourcecast:
		s.saveSourcecast(ctx, intent)
	default:
		s.logger.Warn("unhandled intent", "type", fmt.Sprintf("%T", intent))
	}
}

// role returns the logged-in user's role, or "" when no profile is
// present.
func (s *Syncer) role() backend.Role {
	user, ok := s.store.User()
	if !ok {
		return ""
	}
	return user.Role
}
