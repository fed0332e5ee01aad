// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer

import "github.com/praxis-foundation/praxis/backend"

// Store is the local state store the tasks read from and write to. Every
// method is a single atomic operation; the tasks never hold a lock across
// a network call, so interleaved units of work observe each other's
// writes between suspension points.
type Store interface {
	User() (backend.User, bool)
	SetUser(user backend.User)

	AssessmentOverviews() []backend.AssessmentOverview
	SetAssessmentOverviews(overviews []backend.AssessmentOverview)

	Assessment(id int64) (backend.Assessment, bool)
	SetAssessment(assessment backend.Assessment)

	// CurrentAssessmentID identifies the assessment open in the
	// workspace, the one whose question list an answer submission
	// patches.
	CurrentAssessmentID() (int64, bool)
	SetCurrentAssessment(id int64)

	SetHasUnsavedChanges(unsaved bool)

	GradingOverviews() []backend.GradingOverview
	SetGradingOverviews(overviews []backend.GradingOverview)

	Grading(submissionID int64) ([]backend.GradingQuestion, bool)
	SetGrading(submissionID int64, questions []backend.GradingQuestion)

	Notifications() []backend.Notification
	SetNotifications(notifications []backend.Notification)

	SourcecastIndex() []backend.SourcecastEntry
	SetSourcecastIndex(entries []backend.SourcecastEntry)
}
