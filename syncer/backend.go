// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer

import (
	"context"

	"github.com/praxis-foundation/praxis/backend"
)

// Backend is the remote side of the synchronization layer. It is
// satisfied by *backend.Session and by the offline substitute.
type Backend interface {
	Authenticate(ctx context.Context, code string) error
	FetchUser(ctx context.Context) (backend.User, error)
	FetchAssessmentOverviews(ctx context.Context) ([]backend.AssessmentOverview, error)
	FetchAssessment(ctx context.Context, id int64) (backend.Assessment, error)
	SubmitAnswer(ctx context.Context, questionID int64, answer any) error
	SubmitAssessment(ctx context.Context, id int64) error
	FetchGradingOverviews(ctx context.Context, groupOnly bool) ([]backend.GradingOverview, error)
	FetchGrading(ctx context.Context, submissionID int64) ([]backend.GradingQuestion, error)
	SubmitGrading(ctx context.Context, submissionID, questionID int64, gradeAdjustment, xpAdjustment int) error
	Unsubmit(ctx context.Context, submissionID int64) error
	FetchNotifications(ctx context.Context) ([]backend.Notification, error)
	AcknowledgeNotifications(ctx context.Context, ids []int64) error
	NotifyChat(ctx context.Context, assessmentID, submissionID int64) error
	FetchSourcecastIndex(ctx context.Context) ([]backend.SourcecastEntry, error)
	UploadSourcecast(ctx context.Context, upload backend.SourcecastUpload) error
}

var _ Backend = (*backend.Session)(nil)
