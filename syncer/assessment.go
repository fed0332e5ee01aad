// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer

import (
	"context"
	"errors"
	"time"

	"github.com/praxis-foundation/praxis/backend"
)

func (s *Syncer) fetchAssessmentOverviews(ctx context.Context) {
	overviews, err := s.backend.FetchAssessmentOverviews(ctx)
	if err != nil {
		s.logger.Warn("fetching assessment overviews failed", "error", err)
		return
	}
	s.store.SetAssessmentOverviews(overviews)
}

func (s *Syncer) fetchAssessment(ctx context.Context, intent FetchAssessment) {
	assessment, err := s.backend.FetchAssessment(ctx, intent.ID)
	if err != nil {
		s.logger.Warn("fetching assessment failed", "id", intent.ID, "error", err)
		return
	}
	s.store.SetAssessment(assessment)
}

// submitAnswer saves one answer. The confirmed answer is then written
// into the current assessment's question list and the unsaved-changes
// flag is cleared.
func (s *Syncer) submitAnswer(ctx context.Context, intent SubmitAnswer) {
	if s.role() != backend.RoleStudent {
		s.notifier.ShowWarning("Only students can submit answers.")
		return
	}

	if err := s.backend.SubmitAnswer(ctx, intent.QuestionID, intent.Answer); err != nil {
		s.warnFailure(err, answerStatusMessage)
		return
	}
	s.notifier.ShowSuccess("Saved!", time.Second)

	assessmentID, ok := s.store.CurrentAssessmentID()
	if !ok {
		return
	}
	assessment, ok := s.store.Assessment(assessmentID)
	if !ok {
		return
	}
	for i, question := range assessment.Questions {
		if question.ID == intent.QuestionID {
			assessment.Questions[i].Answer = intent.Answer
		}
	}
	s.store.SetAssessment(assessment)
	s.store.SetHasUnsavedChanges(false)
}

// submitAssessment finalizes a submission and moves the overview's
// status to submitted.
func (s *Syncer) submitAssessment(ctx context.Context, intent SubmitAssessment) {
	if s.role() != backend.RoleStudent {
		s.notifier.ShowWarning("Only students can submit assessments.")
		return
	}

	if err := s.backend.SubmitAssessment(ctx, intent.ID); err != nil {
		if !errors.Is(err, backend.ErrSessionEnded) {
			s.notifier.ShowWarning("Something went wrong. Please try again.")
		}
		return
	}
	s.notifier.ShowSuccess("Submitted!", 2*time.Second)

	overviews := s.store.AssessmentOverviews()
	for i, overview := range overviews {
		if overview.ID == intent.ID {
			overviews[i].Status = backend.StatusSubmitted
		}
	}
	s.store.SetAssessmentOverviews(overviews)
}
