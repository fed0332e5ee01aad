// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// FetchUser retrieves the logged-in user's profile.
func (s *Session) FetchUser(ctx context.Context) (User, error) {
	response, err := s.Call(ctx, http.MethodGet, "user", CallOptions{Refresh: true})
	if err != nil {
		return User{}, err
	}
	var user User
	if err := response.Decode(&user); err != nil {
		return User{}, fmt.Errorf("backend: parsing user profile: %w", err)
	}
	return user, nil
}

// FetchAssessmentOverviews retrieves the assessment list.
func (s *Session) FetchAssessmentOverviews(ctx context.Context) ([]AssessmentOverview, error) {
	response, err := s.Call(ctx, http.MethodGet, "assessments", CallOptions{Refresh: true})
	if err != nil {
		return nil, err
	}
	var wire []wireOverview
	if err := response.Decode(&wire); err != nil {
		return nil, fmt.Errorf("backend: parsing assessment overviews: %w", err)
	}
	overviews := make([]AssessmentOverview, len(wire))
	for i, w := range wire {
		overviews[i] = w.reshape()
	}
	return overviews, nil
}

// FetchAssessment retrieves one assessment with its full question list.
func (s *Session) FetchAssessment(ctx context.Context, id int64) (Assessment, error) {
	path := "assessments/" + strconv.FormatInt(id, 10)
	response, err := s.Call(ctx, http.MethodGet, path, CallOptions{Refresh: true})
	if err != nil {
		return Assessment{}, err
	}
	var wire wireAssessment
	if err := response.Decode(&wire); err != nil {
		return Assessment{}, fmt.Errorf("backend: parsing assessment %d: %w", id, err)
	}
	assessment := Assessment{
		ID:          wire.ID,
		Title:       wire.Title,
		Category:    capitalise(wire.Type),
		LongSummary: wire.LongSummary,
		MissionPDF:  wire.MissionPDF,
		Questions:   make([]Question, len(wire.Questions)),
	}
	for i, q := range wire.Questions {
		assessment.Questions[i] = q.reshape()
	}
	return assessment, nil
}

// SubmitAnswer saves one question's answer. The answer travels as a
// string: program text as-is, anything else (an MCQ choice index) in its
// JSON form. Failure leaves the session intact so the caller can warn in
// place and retry.
func (s *Session) SubmitAnswer(ctx context.Context, questionID int64, answer any) error {
	text, ok := answer.(string)
	if !ok {
		encoded, err := json.Marshal(answer)
		if err != nil {
			return fmt.Errorf("backend: encoding answer: %w", err)
		}
		text = string(encoded)
	}

	path := "assessments/question/" + strconv.FormatInt(questionID, 10) + "/submit"
	return s.mutate(ctx, path, CallOptions{
		Body:         map[string]any{"answer": text},
		OmitAccept:   true,
		Refresh:      true,
		NoAutoLogout: true,
	})
}

// SubmitAssessment finalizes an assessment submission.
func (s *Session) SubmitAssessment(ctx context.Context, id int64) error {
	path := "assessments/" + strconv.FormatInt(id, 10) + "/submit"
	return s.mutate(ctx, path, CallOptions{OmitAccept: true, Refresh: true, NoAutoLogout: true})
}

// FetchGradingOverviews retrieves the grading rows visible to the
// logged-in staff member. With groupOnly set the server restricts the
// rows to the grader's own group.
func (s *Session) FetchGradingOverviews(ctx context.Context, groupOnly bool) ([]GradingOverview, error) {
	response, err := s.Call(ctx, http.MethodGet, "grading", CallOptions{
		Query:   url.Values{"group": []string{strconv.FormatBool(groupOnly)}},
		Refresh: true,
	})
	if err != nil {
		return nil, err
	}
	var wire []wireGradingOverview
	if err := response.Decode(&wire); err != nil {
		return nil, fmt.Errorf("backend: parsing grading overviews: %w", err)
	}
	overviews := make([]GradingOverview, len(wire))
	for i, w := range wire {
		overviews[i] = w.reshape()
	}
	return overviews, nil
}

// FetchGrading retrieves the question-by-question grading detail of one
// submission.
func (s *Session) FetchGrading(ctx context.Context, submissionID int64) ([]GradingQuestion, error) {
	path := "grading/" + strconv.FormatInt(submissionID, 10)
	response, err := s.Call(ctx, http.MethodGet, path, CallOptions{Refresh: true})
	if err != nil {
		return nil, err
	}
	var wire []wireGradingQuestion
	if err := response.Decode(&wire); err != nil {
		return nil, fmt.Errorf("backend: parsing grading detail %d: %w", submissionID, err)
	}
	questions := make([]GradingQuestion, len(wire))
	for i, w := range wire {
		questions[i] = w.reshape()
	}
	return questions, nil
}

// SubmitGrading saves the grade and XP adjustments for one question of
// one submission.
func (s *Session) SubmitGrading(ctx context.Context, submissionID, questionID int64, gradeAdjustment, xpAdjustment int) error {
	path := "grading/" + strconv.FormatInt(submissionID, 10) + "/" + strconv.FormatInt(questionID, 10)
	return s.mutate(ctx, path, CallOptions{
		Body: map[string]any{
			"grading": map[string]any{
				"adjustment":   gradeAdjustment,
				"xpAdjustment": xpAdjustment,
			},
		},
		OmitAccept:   true,
		Refresh:      true,
		NoAutoLogout: true,
	})
}

// Unsubmit reverts a submitted assessment back to attempted on the
// server.
func (s *Session) Unsubmit(ctx context.Context, submissionID int64) error {
	path := "grading/" + strconv.FormatInt(submissionID, 10) + "/unsubmit"
	return s.mutate(ctx, path, CallOptions{OmitAccept: true, Refresh: true, NoAutoLogout: true})
}

// FetchNotifications retrieves the pending notification set. The call
// never forces a logout; failures come back as errors for the caller to
// classify.
func (s *Session) FetchNotifications(ctx context.Context) ([]Notification, error) {
	response, err := s.Call(ctx, http.MethodGet, "notification", CallOptions{NoAutoLogout: true})
	if err != nil {
		return nil, err
	}
	if !response.OK() {
		return nil, &APIError{StatusCode: response.StatusCode, Body: response.Body}
	}
	var wire []wireNotification
	if err := response.Decode(&wire); err != nil {
		return nil, fmt.Errorf("backend: parsing notifications: %w", err)
	}
	notifications := make([]Notification, len(wire))
	for i, w := range wire {
		notifications[i] = w.reshape()
	}
	return notifications, nil
}

// AcknowledgeNotifications marks the given notifications as read.
func (s *Session) AcknowledgeNotifications(ctx context.Context, ids []int64) error {
	return s.mutate(ctx, "notification/acknowledge", CallOptions{
		Body:         map[string]any{"notificationIds": ids},
		NoAutoLogout: true,
	})
}

// NotifyChat tells the backend that chat activity happened on an
// assessment or a submission. Fire-and-forget: the caller typically
// ignores the error.
func (s *Session) NotifyChat(ctx context.Context, assessmentID, submissionID int64) error {
	body := map[string]any{}
	if assessmentID != 0 {
		body["assessmentId"] = assessmentID
	}
	if submissionID != 0 {
		body["submissionId"] = submissionID
	}
	return s.mutate(ctx, "chat/notify", CallOptions{
		Body:         body,
		NoAutoLogout: true,
	})
}

// FetchSourcecastIndex retrieves the sourcecast recording index.
func (s *Session) FetchSourcecastIndex(ctx context.Context) ([]SourcecastEntry, error) {
	response, err := s.Call(ctx, http.MethodGet, "sourcecast", CallOptions{Refresh: true})
	if err != nil {
		return nil, err
	}
	var entries []SourcecastEntry
	if err := response.Decode(&entries); err != nil {
		return nil, fmt.Errorf("backend: parsing sourcecast index: %w", err)
	}
	return entries, nil
}

// mutate performs a POST whose response body carries no data of
// interest. A non-2xx response becomes an *APIError so callers can
// classify it by status without forcing a logout.
func (s *Session) mutate(ctx context.Context, path string, opts CallOptions) error {
	response, err := s.Call(ctx, http.MethodPost, path, opts)
	if err != nil {
		return err
	}
	if !response.OK() {
		return &APIError{StatusCode: response.StatusCode, Body: response.Body}
	}
	return nil
}
