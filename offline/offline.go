// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

// Package offline provides a disconnected-development substitute for the
// backend session. It satisfies the syncer.Backend interface with
// fixture-backed reads and always-successful writes, so the
// synchronization tasks run unchanged without a reachable backend.
package offline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/praxis-foundation/praxis/backend"
	"github.com/praxis-foundation/praxis/library"
	"github.com/praxis-foundation/praxis/syncer"
)

// Fixtures holds the canned domain state served by the offline backend.
type Fixtures struct {
	User                backend.User                        `json:"user"`
	AssessmentOverviews []backend.AssessmentOverview        `json:"assessmentOverviews"`
	Assessments         []backend.Assessment                `json:"assessments"`
	GradingOverviews    []backend.GradingOverview           `json:"gradingOverviews"`
	Gradings            map[int64][]backend.GradingQuestion `json:"gradings"`
	Notifications       []backend.Notification              `json:"notifications"`
	SourcecastIndex     []backend.SourcecastEntry           `json:"sourcecastIndex"`
}

// LoadFixtures reads a JSONC fixture file. Comments and trailing commas
// are allowed, so fixture files can be annotated.
func LoadFixtures(path string) (Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("offline: reading fixtures: %w", err)
	}
	var fixtures Fixtures
	if err := json.Unmarshal(jsonc.ToJSON(raw), &fixtures); err != nil {
		return Fixtures{}, fmt.Errorf("offline: parsing %s: %w", path, err)
	}
	return fixtures, nil
}

// DefaultFixtures is the built-in development data set: a staff user and
// a small academy.
func DefaultFixtures() Fixtures {
	runes, _ := library.Symbols(library.Runes)
	return Fixtures{
		User: backend.User{
			Name:  "DevStaff",
			Role:  backend.RoleStaff,
			Grade: 0,
			Story: backend.Story{Story: "mission-1", PlayStory: true},
		},
		AssessmentOverviews: []backend.AssessmentOverview{
			{
				ID:           1,
				Title:        "An Odyssey to Runes",
				Category:     "Mission",
				ShortSummary: "Draw your first rune.",
				MaxGrade:     100,
				MaxXP:        500,
				Status:       backend.StatusAttempted,
				Story:        "mission-1",
			},
		},
		Assessments: []backend.Assessment{
			{
				ID:       1,
				Title:    "An Odyssey to Runes",
				Category: "Mission",
				Questions: []backend.Question{
					{
						ID:      1,
						Type:    backend.QuestionProgramming,
						Content: "Show a heart.",
						Library: backend.Library{
							Chapter: 2,
							External: backend.ExternalLibrary{
								Name:    library.Runes,
								Symbols: runes,
							},
						},
						Testcases:          []backend.Testcase{},
						AutogradingResults: []backend.AutogradingResult{},
						MaxGrade:           100,
						MaxXP:              500,
					},
				},
			},
		},
		GradingOverviews: []backend.GradingOverview{
			{
				AssessmentID:       1,
				AssessmentName:     "An Odyssey to Runes",
				AssessmentCategory: "Mission",
				StudentID:          10,
				StudentName:        "DevStudent",
				SubmissionID:       1,
				SubmissionStatus:   backend.StatusSubmitted,
				GroupName:          "1D",
				InitialGrade:       60,
				CurrentGrade:       60,
				MaxGrade:           100,
				InitialXP:          250,
				CurrentXP:          250,
				MaxXP:              500,
			},
		},
		Gradings: map[int64][]backend.GradingQuestion{
			1: {
				{
					Question: backend.Question{
						ID:      1,
						Type:    backend.QuestionProgramming,
						Content: "Show a heart.",
						Answer:  "show(heart);",
					},
					Student: backend.Student{ID: 10, Name: "DevStudent"},
					Grade:   backend.Grade{Grade: 60, XP: 250},
				},
			},
		},
		Notifications: []backend.Notification{
			{ID: 1, Type: "submitted", AssessmentID: 1, SubmissionID: 1},
		},
	}
}

// Backend serves fixtures in place of a live backend. Reads come from
// the fixture set; writes succeed immediately without touching it, the
// way the synchronization tasks expect (they patch the local store
// themselves after a confirmed mutation).
type Backend struct {
	fixtures Fixtures
	logger   *slog.Logger
}

var _ syncer.Backend = (*Backend)(nil)

// New creates an offline backend serving the given fixtures. A nil
// logger falls back to slog.Default().
func New(fixtures Fixtures, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{fixtures: fixtures, logger: logger}
}

func (b *Backend) Authenticate(_ context.Context, code string) error {
	b.logger.Info("offline login", "code", code)
	return nil
}

func (b *Backend) FetchUser(context.Context) (backend.User, error) {
	return b.fixtures.User, nil
}

func (b *Backend) FetchAssessmentOverviews(context.Context) ([]backend.AssessmentOverview, error) {
	return b.fixtures.AssessmentOverviews, nil
}

func (b *Backend) FetchAssessment(_ context.Context, id int64) (backend.Assessment, error) {
	for _, assessment := range b.fixtures.Assessments {
		if assessment.ID == id {
			return assessment, nil
		}
	}
	return backend.Assessment{}, &backend.APIError{StatusCode: http.StatusNotFound}
}

func (b *Backend) SubmitAnswer(context.Context, int64, any) error {
	return nil
}

func (b *Backend) SubmitAssessment(context.Context, int64) error {
	return nil
}

func (b *Backend) FetchGradingOverviews(context.Context, bool) ([]backend.GradingOverview, error) {
	return b.fixtures.GradingOverviews, nil
}

func (b *Backend) FetchGrading(_ context.Context, submissionID int64) ([]backend.GradingQuestion, error) {
	questions, ok := b.fixtures.Gradings[submissionID]
	if !ok {
		return nil, &backend.APIError{StatusCode: http.StatusNotFound}
	}
	return questions, nil
}

func (b *Backend) SubmitGrading(context.Context, int64, int64, int, int) error {
	return nil
}

func (b *Backend) Unsubmit(context.Context, int64) error {
	return nil
}

func (b *Backend) FetchNotifications(context.Context) ([]backend.Notification, error) {
	return b.fixtures.Notifications, nil
}

func (b *Backend) AcknowledgeNotifications(context.Context, []int64) error {
	return nil
}

func (b *Backend) NotifyChat(context.Context, int64, int64) error {
	return nil
}

func (b *Backend) FetchSourcecastIndex(context.Context) ([]backend.SourcecastEntry, error) {
	return b.fixtures.SourcecastIndex, nil
}

func (b *Backend) UploadSourcecast(context.Context, backend.SourcecastUpload) error {
	return nil
}
