// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer

import "github.com/praxis-foundation/praxis/backend"

// Intent is a named request for synchronization work. Each intent type
// maps to exactly one task.
type Intent interface {
	intent()
}

// Login exchanges a login code for a session, fetches the user profile,
// and navigates to the academy on success.
type Login struct {
	Code string
}

// FetchUser refreshes the user profile.
type FetchUser struct{}

// FetchAssessmentOverviews refreshes the assessment list.
type FetchAssessmentOverviews struct{}

// FetchAssessment refreshes one assessment's detail.
type FetchAssessment struct {
	ID int64
}

// SubmitAnswer saves one question's answer. Student-only.
type SubmitAnswer struct {
	QuestionID int64
	Answer     any
}

// SubmitAssessment finalizes the submission of an assessment.
// Student-only.
type SubmitAssessment struct {
	ID int64
}

// FetchGradingOverviews refreshes the grading rows.
type FetchGradingOverviews struct {
	GroupOnly bool
}

// FetchGrading refreshes one submission's grading detail.
type FetchGrading struct {
	SubmissionID int64
}

// SubmitGrading saves grade and XP adjustments for one question.
// Staff-only.
type SubmitGrading struct {
	SubmissionID    int64
	QuestionID      int64
	GradeAdjustment int
	XPAdjustment    int
}

// Unsubmit reverts a submitted assessment back to attempted. The target
// must currently be submitted in the local grading overviews.
type Unsubmit struct {
	SubmissionID int64
}

// FetchNotifications replaces the notification set wholesale.
type FetchNotifications struct{}

// AcknowledgeNotifications marks a subset of the current notifications
// as read. A nil Filter selects all of them; an empty selection is a
// no-op. The selected notifications are removed from local state before
// the round-trip and are not restored on failure.
type AcknowledgeNotifications struct {
	Filter func(notifications []backend.Notification) []backend.Notification
}

// NotifyChat tells the backend about chat activity. Fire-and-forget.
type NotifyChat struct {
	AssessmentID int64
	SubmissionID int64
}

// FetchSourcecastIndex refreshes the sourcecast index.
type FetchSourcecastIndex struct{}

// SaveSourcecast uploads a sourcecast recording. Staff-only.
type SaveSourcecast struct {
	Upload backend.SourcecastUpload
}

func (Login) intent()                    {}
func (FetchUser) intent()                {}
func (FetchAssessmentOverviews) intent() {}
func (FetchAssessment) intent()          {}
func (SubmitAnswer) intent()             {}
func (SubmitAssessment) intent()         {}
func (FetchGradingOverviews) intent()    {}
func (FetchGrading) intent()             {}
func (SubmitGrading) intent()            {}
func (Unsubmit) intent()                 {}
func (FetchNotifications) intent()       {}
func (AcknowledgeNotifications) intent() {}
func (NotifyChat) intent()               {}
func (FetchSourcecastIndex) intent()     {}
func (SaveSourcecast) intent()           {}
