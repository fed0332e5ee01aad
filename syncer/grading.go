// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer

import (
	"context"
	"time"

	"github.com/praxis-foundation/praxis/backend"
)

func (s *Syncer) fetchGradingOverviews(ctx context.Context, intent FetchGradingOverviews) {
	overviews, err := s.backend.FetchGradingOverviews(ctx, intent.GroupOnly)
	if err != nil {
		s.logger.Warn("fetching grading overviews failed", "error", err)
		return
	}
	s.store.SetGradingOverviews(overviews)
}

func (s *Syncer) fetchGrading(ctx context.Context, intent FetchGrading) {
	questions, err := s.backend.FetchGrading(ctx, intent.SubmissionID)
	if err != nil {
		s.logger.Warn("fetching grading detail failed", "submission", intent.SubmissionID, "error", err)
		return
	}
	s.store.SetGrading(intent.SubmissionID, questions)
}

// submitGrading saves the adjustments for one question and patches them
// into the stored grading detail.
func (s *Syncer) submitGrading(ctx context.Context, intent SubmitGrading) {
	if s.role() == backend.RoleStudent {
		s.notifier.ShowWarning("Only staff can submit answers.")
		return
	}

	err := s.backend.SubmitGrading(ctx, intent.SubmissionID, intent.QuestionID,
		intent.GradeAdjustment, intent.XPAdjustment)
	if err != nil {
		s.warnFailure(err, gradingStatusMessage)
		return
	}
	s.notifier.ShowSuccess("Saved!", time.Second)

	questions, ok := s.store.Grading(intent.SubmissionID)
	if !ok {
		return
	}
	for i, entry := range questions {
		if entry.Question.ID == intent.QuestionID {
			questions[i].Grade.GradeAdjustment = intent.GradeAdjustment
			questions[i].Grade.XPAdjustment = intent.XPAdjustment
		}
	}
	s.store.SetGrading(intent.SubmissionID, questions)
}

// unsubmit reverts a submission to attempted. The target must currently
// be submitted in the local overview list; otherwise the task warns and
// performs no network call.
func (s *Syncer) unsubmit(ctx context.Context, intent Unsubmit) {
	overviews := s.store.GradingOverviews()
	found := false
	for _, overview := range overviews {
		if overview.SubmissionID == intent.SubmissionID &&
			overview.SubmissionStatus == backend.StatusSubmitted {
			found = true
			break
		}
	}
	if !found {
		s.notifier.ShowWarning("400: Bad Request")
		return
	}

	if err := s.backend.Unsubmit(ctx, intent.SubmissionID); err != nil {
		s.warnFailure(err, gradingStatusMessage)
		return
	}
	s.notifier.ShowSuccess("Unsubmit successful", time.Second)

	// Re-read: another unit may have replaced the list during the
	// round-trip.
	overviews = s.store.GradingOverviews()
	for i, overview := range overviews {
		if overview.SubmissionID == intent.SubmissionID {
			overviews[i].SubmissionStatus = backend.StatusAttempted
		}
	}
	s.store.SetGradingOverviews(overviews)
}
