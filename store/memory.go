// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

// Package store provides the local state store of the synchronization
// layer: an in-memory implementation of the syncer.Store interface and a
// durable snapshot file for carrying the domain state across runs.
package store

import (
	"slices"
	"sync"

	"github.com/praxis-foundation/praxis/backend"
	"github.com/praxis-foundation/praxis/syncer"
)

// Memory is an in-memory state store. Every method is one atomic
// operation under a single mutex; getters return clones so callers can
// mutate their copy freely before writing it back.
type Memory struct {
	mu                  sync.Mutex
	user                *backend.User
	assessmentOverviews []backend.AssessmentOverview
	assessments         map[int64]backend.Assessment
	currentAssessment   *int64
	hasUnsavedChanges   bool
	gradingOverviews    []backend.GradingOverview
	gradings            map[int64][]backend.GradingQuestion
	notifications       []backend.Notification
	sourcecastIndex     []backend.SourcecastEntry
}

var _ syncer.Store = (*Memory)(nil)

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{
		assessments: make(map[int64]backend.Assessment),
		gradings:    make(map[int64][]backend.GradingQuestion),
	}
}

func (m *Memory) User() (backend.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return backend.User{}, false
	}
	return *m.user, true
}

func (m *Memory) SetUser(user backend.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
}

func (m *Memory) AssessmentOverviews() []backend.AssessmentOverview {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.assessmentOverviews)
}

func (m *Memory) SetAssessmentOverviews(overviews []backend.AssessmentOverview) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assessmentOverviews = slices.Clone(overviews)
}

func (m *Memory) Assessment(id int64) (backend.Assessment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	assessment, ok := m.assessments[id]
	if !ok {
		return backend.Assessment{}, false
	}
	assessment.Questions = slices.Clone(assessment.Questions)
	return assessment, true
}

func (m *Memory) SetAssessment(assessment backend.Assessment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	assessment.Questions = slices.Clone(assessment.Questions)
	m.assessments[assessment.ID] = assessment
}

func (m *Memory) CurrentAssessmentID() (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.currentAssessment == nil {
		return 0, false
	}
	return *m.currentAssessment, true
}

func (m *Memory) SetCurrentAssessment(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentAssessment = &id
}

func (m *Memory) SetHasUnsavedChanges(unsaved bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hasUnsavedChanges = unsaved
}

// HasUnsavedChanges reports the workspace dirty flag.
func (m *Memory) HasUnsavedChanges() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hasUnsavedChanges
}

func (m *Memory) GradingOverviews() []backend.GradingOverview {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.gradingOverviews)
}

func (m *Memory) SetGradingOverviews(overviews []backend.GradingOverview) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gradingOverviews = slices.Clone(overviews)
}

func (m *Memory) Grading(submissionID int64) ([]backend.GradingQuestion, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	questions, ok := m.gradings[submissionID]
	if !ok {
		return nil, false
	}
	return slices.Clone(questions), true
}

func (m *Memory) SetGrading(submissionID int64, questions []backend.GradingQuestion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gradings[submissionID] = slices.Clone(questions)
}

func (m *Memory) Notifications() []backend.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.notifications)
}

func (m *Memory) SetNotifications(notifications []backend.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = slices.Clone(notifications)
}

func (m *Memory) SourcecastIndex() []backend.SourcecastEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.sourcecastIndex)
}

func (m *Memory) SetSourcecastIndex(entries []backend.SourcecastEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourcecastIndex = slices.Clone(entries)
}
