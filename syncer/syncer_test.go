// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package syncer_test

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"testing"
	"time"

	"github.com/praxis-foundation/praxis/backend"
	"github.com/praxis-foundation/praxis/store"
	"github.com/praxis-foundation/praxis/syncer"
)

// fakeBackend implements syncer.Backend through optional function
// fields. A nil field means the call succeeds with zero values.
type fakeBackend struct {
	authenticate             func(code string) error
	fetchUser                func() (backend.User, error)
	fetchAssessmentOverviews func() ([]backend.AssessmentOverview, error)
	fetchAssessment          func(id int64) (backend.Assessment, error)
	submitAnswer             func(questionID int64, answer any) error
	submitAssessment         func(id int64) error
	fetchGradingOverviews    func(groupOnly bool) ([]backend.GradingOverview, error)
	fetchGrading             func(submissionID int64) ([]backend.GradingQuestion, error)
	submitGrading            func(submissionID, questionID int64, gradeAdjustment, xpAdjustment int) error
	unsubmit                 func(submissionID int64) error
	fetchNotifications       func() ([]backend.Notification, error)
	acknowledgeNotifications func(ids []int64) error
	notifyChat               func(assessmentID, submissionID int64) error
	fetchSourcecastIndex     func() ([]backend.SourcecastEntry, error)
	uploadSourcecast         func(upload backend.SourcecastUpload) error
}

func (f *fakeBackend) Authenticate(_ context.Context, code string) error {
	if f.authenticate == nil {
		return nil
	}
	return f.authenticate(code)
}

func (f *fakeBackend) FetchUser(context.Context) (backend.User, error) {
	if f.fetchUser == nil {
		return backend.User{}, nil
	}
	return f.fetchUser()
}

func (f *fakeBackend) FetchAssessmentOverviews(context.Context) ([]backend.AssessmentOverview, error) {
	if f.fetchAssessmentOverviews == nil {
		return nil, nil
	}
	return f.fetchAssessmentOverviews()
}

func (f *fakeBackend) FetchAssessment(_ context.Context, id int64) (backend.Assessment, error) {
	if f.fetchAssessment == nil {
		return backend.Assessment{}, nil
	}
	return f.fetchAssessment(id)
}

func (f *fakeBackend) SubmitAnswer(_ context.Context, questionID int64, answer any) error {
	if f.submitAnswer == nil {
		return nil
	}
	return f.submitAnswer(questionID, answer)
}

func (f *fakeBackend) SubmitAssessment(_ context.Context, id int64) error {
	if f.submitAssessment == nil {
		return nil
	}
	return f.submitAssessment(id)
}

func (f *fakeBackend) FetchGradingOverviews(_ context.Context, groupOnly bool) ([]backend.GradingOverview, error) {
	if f.fetchGradingOverviews == nil {
		return nil, nil
	}
	return f.fetchGradingOverviews(groupOnly)
}

func (f *fakeBackend) FetchGrading(_ context.Context, submissionID int64) ([]backend.GradingQuestion, error) {
	if f.fetchGrading == nil {
		return nil, nil
	}
	return f.fetchGrading(submissionID)
}

func (f *fakeBackend) SubmitGrading(_ context.Context, submissionID, questionID int64, gradeAdjustment, xpAdjustment int) error {
	if f.submitGrading == nil {
		return nil
	}
	return f.submitGrading(submissionID, questionID, gradeAdjustment, xpAdjustment)
}

func (f *fakeBackend) Unsubmit(_ context.Context, submissionID int64) error {
	if f.unsubmit == nil {
		return nil
	}
	return f.unsubmit(submissionID)
}

func (f *fakeBackend) FetchNotifications(context.Context) ([]backend.Notification, error) {
	if f.fetchNotifications == nil {
		return nil, nil
	}
	return f.fetchNotifications()
}

func (f *fakeBackend) AcknowledgeNotifications(_ context.Context, ids []int64) error {
	if f.acknowledgeNotifications == nil {
		return nil
	}
	return f.acknowledgeNotifications(ids)
}

func (f *fakeBackend) NotifyChat(_ context.Context, assessmentID, submissionID int64) error {
	if f.notifyChat == nil {
		return nil
	}
	return f.notifyChat(assessmentID, submissionID)
}

func (f *fakeBackend) FetchSourcecastIndex(context.Context) ([]backend.SourcecastEntry, error) {
	if f.fetchSourcecastIndex == nil {
		return nil, nil
	}
	return f.fetchSourcecastIndex()
}

func (f *fakeBackend) UploadSourcecast(_ context.Context, upload backend.SourcecastUpload) error {
	if f.uploadSourcecast == nil {
		return nil
	}
	return f.uploadSourcecast(upload)
}

type recordingNotifier struct {
	successes []string
	warnings  []string
}

func (n *recordingNotifier) ShowSuccess(message string, duration time.Duration) {
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) ShowWarning(message string) {
	n.warnings = append(n.warnings, message)
}

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) NavigateTo(path string) {
	n.paths = append(n.paths, path)
}

func newTestSyncer(t *testing.T, remote syncer.Backend, state syncer.Store) (*syncer.Syncer, *recordingNotifier, *recordingNavigator) {
	t.Helper()
	notifier := &recordingNotifier{}
	navigator := &recordingNavigator{}
	s, err := syncer.New(syncer.Config{
		Backend:   remote,
		Store:     state,
		Notifier:  notifier,
		Navigator: navigator,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s, notifier, navigator
}

// dispatch runs one intent to completion.
func dispatch(t *testing.T, s *syncer.Syncer, intent syncer.Intent) {
	t.Helper()
	s.Dispatch(context.Background(), intent)
	s.Wait()
}

func studentStore() *store.Memory {
	state := store.NewMemory()
	state.SetUser(backend.User{Name: "alice", Role: backend.RoleStudent})
	return state
}

func staffStore() *store.Memory {
	state := store.NewMemory()
	state.SetUser(backend.User{Name: "bob", Role: backend.RoleStaff})
	return state
}

func TestLogin(t *testing.T) {
	t.Run("success enters the academy", func(t *testing.T) {
		state := store.NewMemory()
		remote := &fakeBackend{
			authenticate: func(code string) error {
				if code != "code-123" {
					t.Errorf("unexpected code: %q", code)
				}
				return nil
			},
			fetchUser: func() (backend.User, error) {
				return backend.User{Name: "alice", Role: backend.RoleStudent}, nil
			},
		}
		s, _, navigator := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.Login{Code: "code-123"})

		user, ok := state.User()
		if !ok || user.Name != "alice" {
			t.Errorf("unexpected user: %+v %v", user, ok)
		}
		if !slices.Equal(navigator.paths, []string{"/academy"}) {
			t.Errorf("unexpected navigation: %v", navigator.paths)
		}
	})

	t.Run("malformed auth response returns to the login route", func(t *testing.T) {
		state := store.NewMemory()
		remote := &fakeBackend{
			authenticate: func(string) error {
				return errors.New("parsing auth response: unexpected end of JSON input")
			},
		}
		s, notifier, navigator := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.Login{Code: "code-123"})

		if !slices.Equal(navigator.paths, []string{"/"}) {
			t.Errorf("expected navigation back to the login route, got %v", navigator.paths)
		}
		if len(notifier.warnings) != 0 {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
		if _, ok := state.User(); ok {
			t.Error("no user must be stored after a failed login")
		}
	})

	t.Run("authentication failure stops the flow", func(t *testing.T) {
		state := store.NewMemory()
		userFetched := false
		remote := &fakeBackend{
			authenticate: func(string) error {
				return backend.ErrSessionEnded
			},
			fetchUser: func() (backend.User, error) {
				userFetched = true
				return backend.User{}, nil
			},
		}
		s, _, navigator := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.Login{Code: "bad"})

		if userFetched {
			t.Error("profile must not be fetched after a failed login")
		}
		if len(navigator.paths) != 0 {
			t.Errorf("unexpected navigation: %v", navigator.paths)
		}
		if _, ok := state.User(); ok {
			t.Error("no user must be stored after a failed login")
		}
	})
}

func TestSubmitAnswer(t *testing.T) {
	t.Run("saves and patches the current assessment", func(t *testing.T) {
		state := studentStore()
		state.SetAssessment(backend.Assessment{
			ID:        42,
			Questions: []backend.Question{{ID: 5, Answer: "old"}, {ID: 6, Answer: "other"}},
		})
		state.SetCurrentAssessment(42)
		state.SetHasUnsavedChanges(true)

		remote := &fakeBackend{
			submitAnswer: func(questionID int64, answer any) error {
				if questionID != 5 || answer != "42" {
					t.Errorf("unexpected submission: %d %v", questionID, answer)
				}
				return nil
			},
		}
		s, notifier, _ := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.SubmitAnswer{QuestionID: 5, Answer: "42"})

		if !slices.Equal(notifier.successes, []string{"Saved!"}) {
			t.Errorf("unexpected successes: %v", notifier.successes)
		}
		assessment, _ := state.Assessment(42)
		if assessment.Questions[0].Answer != "42" {
			t.Errorf("answer not patched: %v", assessment.Questions[0].Answer)
		}
		if assessment.Questions[1].Answer != "other" {
			t.Errorf("unrelated question touched: %v", assessment.Questions[1].Answer)
		}
		if state.HasUnsavedChanges() {
			t.Error("unsaved-changes flag must be cleared")
		}
	})

	t.Run("staff cannot submit answers", func(t *testing.T) {
		called := false
		remote := &fakeBackend{
			submitAnswer: func(int64, any) error {
				called = true
				return nil
			},
		}
		s, notifier, _ := newTestSyncer(t, remote, staffStore())

		dispatch(t, s, syncer.SubmitAnswer{QuestionID: 5, Answer: "42"})

		if called {
			t.Error("no network call expected on precondition failure")
		}
		if !slices.Equal(notifier.warnings, []string{"Only students can submit answers."}) {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
	})

	t.Run("empty answer rejection", func(t *testing.T) {
		state := studentStore()
		state.SetAssessment(backend.Assessment{
			ID:        42,
			Questions: []backend.Question{{ID: 5, Answer: "old"}},
		})
		state.SetCurrentAssessment(42)

		remote := &fakeBackend{
			submitAnswer: func(int64, any) error {
				return &backend.APIError{StatusCode: http.StatusBadRequest}
			},
		}
		s, notifier, _ := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.SubmitAnswer{QuestionID: 5, Answer: ""})

		if !slices.Equal(notifier.warnings, []string{"Can't save an empty answer."}) {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
		assessment, _ := state.Assessment(42)
		if assessment.Questions[0].Answer != "old" {
			t.Errorf("answer must be unchanged on failure: %v", assessment.Questions[0].Answer)
		}
	})

	t.Run("network failure", func(t *testing.T) {
		remote := &fakeBackend{
			submitAnswer: func(int64, any) error {
				return errors.New("dial tcp: connection refused")
			},
		}
		s, notifier, _ := newTestSyncer(t, remote, studentStore())

		dispatch(t, s, syncer.SubmitAnswer{QuestionID: 5, Answer: "42"})

		if !slices.Equal(notifier.warnings, []string{"Couldn't reach our servers. Are you online?"}) {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
	})
}

func TestSubmitAssessment(t *testing.T) {
	t.Run("success moves the overview to submitted", func(t *testing.T) {
		state := studentStore()
		state.SetAssessmentOverviews([]backend.AssessmentOverview{
			{ID: 42, Status: backend.StatusAttempted},
			{ID: 43, Status: backend.StatusAttempted},
		})
		s, notifier, _ := newTestSyncer(t, &fakeBackend{}, state)

		dispatch(t, s, syncer.SubmitAssessment{ID: 42})

		if !slices.Equal(notifier.successes, []string{"Submitted!"}) {
			t.Errorf("unexpected successes: %v", notifier.successes)
		}
		overviews := state.AssessmentOverviews()
		if overviews[0].Status != backend.StatusSubmitted {
			t.Errorf("overview 42 not submitted: %q", overviews[0].Status)
		}
		if overviews[1].Status != backend.StatusAttempted {
			t.Errorf("overview 43 must be untouched: %q", overviews[1].Status)
		}
	})

	t.Run("failure warns generically", func(t *testing.T) {
		remote := &fakeBackend{
			submitAssessment: func(int64) error {
				return &backend.APIError{StatusCode: http.StatusBadRequest}
			},
		}
		s, notifier, _ := newTestSyncer(t, remote, studentStore())

		dispatch(t, s, syncer.SubmitAssessment{ID: 42})

		if !slices.Equal(notifier.warnings, []string{"Something went wrong. Please try again."}) {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
	})

	t.Run("staff cannot submit assessments", func(t *testing.T) {
		s, notifier, _ := newTestSyncer(t, &fakeBackend{}, staffStore())

		dispatch(t, s, syncer.SubmitAssessment{ID: 42})

		if !slices.Equal(notifier.warnings, []string{"Only students can submit assessments."}) {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
	})
}

func TestSubmitGrading(t *testing.T) {
	t.Run("patches the stored adjustments", func(t *testing.T) {
		state := staffStore()
		state.SetGrading(11, []backend.GradingQuestion{
			{
				Question: backend.Question{ID: 7},
				Grade:    backend.Grade{Grade: 10, XP: 50},
			},
		})
		s, notifier, _ := newTestSyncer(t, &fakeBackend{}, state)

		dispatch(t, s, syncer.SubmitGrading{
			SubmissionID:    11,
			QuestionID:      7,
			GradeAdjustment: -2,
			XPAdjustment:    10,
		})

		if !slices.Equal(notifier.successes, []string{"Saved!"}) {
			t.Errorf("unexpected successes: %v", notifier.successes)
		}
		questions, _ := state.Grading(11)
		grade := questions[0].Grade
		if grade.GradeAdjustment != -2 || grade.XPAdjustment != 10 {
			t.Errorf("adjustments not patched: %+v", grade)
		}
		if grade.Grade != 10 || grade.XP != 50 {
			t.Errorf("base values must be untouched: %+v", grade)
		}
	})

	t.Run("students cannot grade", func(t *testing.T) {
		called := false
		remote := &fakeBackend{
			submitGrading: func(int64, int64, int, int) error {
				called = true
				return nil
			},
		}
		s, notifier, _ := newTestSyncer(t, remote, studentStore())

		dispatch(t, s, syncer.SubmitGrading{SubmissionID: 11, QuestionID: 7})

		if called {
			t.Error("no network call expected on precondition failure")
		}
		if !slices.Equal(notifier.warnings, []string{"Only staff can submit answers."}) {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
	})

	t.Run("failure maps through status text", func(t *testing.T) {
		remote := &fakeBackend{
			submitGrading: func(int64, int64, int, int) error {
				return &backend.APIError{StatusCode: http.StatusForbidden}
			},
		}
		s, notifier, _ := newTestSyncer(t, remote, staffStore())

		dispatch(t, s, syncer.SubmitGrading{SubmissionID: 11, QuestionID: 7})

		if !slices.Equal(notifier.warnings, []string{"Error 403: Forbidden"}) {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
	})
}

func TestUnsubmit(t *testing.T) {
	t.Run("requires a submitted overview", func(t *testing.T) {
		state := staffStore()
		state.SetGradingOverviews([]backend.GradingOverview{
			{SubmissionID: 7, SubmissionStatus: backend.StatusAttempted},
		})
		called := false
		remote := &fakeBackend{
			unsubmit: func(int64) error {
				called = true
				return nil
			},
		}
		s, notifier, _ := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.Unsubmit{SubmissionID: 7})

		if called {
			t.Error("no network call expected on precondition failure")
		}
		if !slices.Equal(notifier.warnings, []string{"400: Bad Request"}) {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
		overviews := state.GradingOverviews()
		if overviews[0].SubmissionStatus != backend.StatusAttempted {
			t.Errorf("overview must be unchanged: %q", overviews[0].SubmissionStatus)
		}
	})

	t.Run("success reverts the overview to attempted", func(t *testing.T) {
		state := staffStore()
		state.SetGradingOverviews([]backend.GradingOverview{
			{SubmissionID: 7, SubmissionStatus: backend.StatusSubmitted},
		})
		s, notifier, _ := newTestSyncer(t, &fakeBackend{}, state)

		dispatch(t, s, syncer.Unsubmit{SubmissionID: 7})

		if !slices.Equal(notifier.successes, []string{"Unsubmit successful"}) {
			t.Errorf("unexpected successes: %v", notifier.successes)
		}
		overviews := state.GradingOverviews()
		if overviews[0].SubmissionStatus != backend.StatusAttempted {
			t.Errorf("overview not reverted: %q", overviews[0].SubmissionStatus)
		}
	})
}

func TestNotifications(t *testing.T) {
	t.Run("fetch replaces wholesale", func(t *testing.T) {
		state := store.NewMemory()
		state.SetNotifications([]backend.Notification{{ID: 99}})
		remote := &fakeBackend{
			fetchNotifications: func() ([]backend.Notification, error) {
				return []backend.Notification{{ID: 1}, {ID: 2}}, nil
			},
		}
		s, _, _ := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.FetchNotifications{})

		notifications := state.Notifications()
		if len(notifications) != 2 || notifications[0].ID != 1 {
			t.Errorf("unexpected notifications: %+v", notifications)
		}
	})

	t.Run("fetch failure empties the set", func(t *testing.T) {
		state := store.NewMemory()
		state.SetNotifications([]backend.Notification{{ID: 99}})
		remote := &fakeBackend{
			fetchNotifications: func() ([]backend.Notification, error) {
				return nil, &backend.APIError{StatusCode: http.StatusInternalServerError}
			},
		}
		s, _, _ := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.FetchNotifications{})

		if got := state.Notifications(); len(got) != 0 {
			t.Errorf("expected empty notification set, got %+v", got)
		}
	})

	t.Run("acknowledge with empty selection is a no-op", func(t *testing.T) {
		state := store.NewMemory()
		state.SetNotifications([]backend.Notification{{ID: 1}})
		called := false
		remote := &fakeBackend{
			acknowledgeNotifications: func([]int64) error {
				called = true
				return nil
			},
		}
		s, _, _ := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.AcknowledgeNotifications{
			Filter: func([]backend.Notification) []backend.Notification { return nil },
		})

		if called {
			t.Error("no network call expected for an empty selection")
		}
		if got := state.Notifications(); len(got) != 1 {
			t.Errorf("state must be unchanged, got %+v", got)
		}
	})

	t.Run("optimistic removal survives a failed round-trip", func(t *testing.T) {
		state := store.NewMemory()
		state.SetNotifications([]backend.Notification{{ID: 1}, {ID: 2}, {ID: 3}})
		remote := &fakeBackend{
			acknowledgeNotifications: func(ids []int64) error {
				if !slices.Equal(ids, []int64{1, 2}) {
					t.Errorf("unexpected ids: %v", ids)
				}
				return &backend.APIError{StatusCode: http.StatusInternalServerError}
			},
		}
		s, notifier, _ := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.AcknowledgeNotifications{
			Filter: func(notifications []backend.Notification) []backend.Notification {
				var selected []backend.Notification
				for _, notification := range notifications {
					if notification.ID <= 2 {
						selected = append(selected, notification)
					}
				}
				return selected
			},
		})

		notifications := state.Notifications()
		if len(notifications) != 1 || notifications[0].ID != 3 {
			t.Errorf("removal must not be reverted, got %+v", notifications)
		}
		if !slices.Equal(notifier.warnings, []string{"Something went wrong, couldn't acknowledge"}) {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
	})
}

func TestNotifyChat(t *testing.T) {
	t.Run("success is silent", func(t *testing.T) {
		var gotAssessment, gotSubmission int64
		remote := &fakeBackend{
			notifyChat: func(assessmentID, submissionID int64) error {
				gotAssessment, gotSubmission = assessmentID, submissionID
				return nil
			},
		}
		s, notifier, _ := newTestSyncer(t, remote, store.NewMemory())

		dispatch(t, s, syncer.NotifyChat{AssessmentID: 42, SubmissionID: 11})

		if gotAssessment != 42 || gotSubmission != 11 {
			t.Errorf("unexpected call: %d %d", gotAssessment, gotSubmission)
		}
		if len(notifier.successes) != 0 || len(notifier.warnings) != 0 {
			t.Errorf("unexpected notifications: %v %v", notifier.successes, notifier.warnings)
		}
	})

	t.Run("failure only logs", func(t *testing.T) {
		remote := &fakeBackend{
			notifyChat: func(int64, int64) error {
				return &backend.APIError{StatusCode: http.StatusInternalServerError}
			},
		}
		s, notifier, navigator := newTestSyncer(t, remote, store.NewMemory())

		dispatch(t, s, syncer.NotifyChat{AssessmentID: 42})

		if len(notifier.warnings) != 0 {
			t.Errorf("fire-and-forget must not warn, got %v", notifier.warnings)
		}
		if len(navigator.paths) != 0 {
			t.Errorf("unexpected navigation: %v", navigator.paths)
		}
	})
}

func TestSaveSourcecast(t *testing.T) {
	t.Run("students cannot save", func(t *testing.T) {
		s, notifier, _ := newTestSyncer(t, &fakeBackend{}, studentStore())

		dispatch(t, s, syncer.SaveSourcecast{})

		if !slices.Equal(notifier.warnings, []string{"Only staff can save sourcecast."}) {
			t.Errorf("unexpected warnings: %v", notifier.warnings)
		}
	})

	t.Run("success navigates to the sourcecast page", func(t *testing.T) {
		var uploaded backend.SourcecastUpload
		remote := &fakeBackend{
			uploadSourcecast: func(upload backend.SourcecastUpload) error {
				uploaded = upload
				return nil
			},
		}
		s, notifier, navigator := newTestSyncer(t, remote, staffStore())

		dispatch(t, s, syncer.SaveSourcecast{
			Upload: backend.SourcecastUpload{Title: "My recording"},
		})

		if uploaded.Title != "My recording" {
			t.Errorf("unexpected upload: %+v", uploaded)
		}
		if !slices.Equal(notifier.successes, []string{"Saved!"}) {
			t.Errorf("unexpected successes: %v", notifier.successes)
		}
		if !slices.Equal(navigator.paths, []string{"/sourcecast"}) {
			t.Errorf("unexpected navigation: %v", navigator.paths)
		}
	})
}

func TestFetchAndReplace(t *testing.T) {
	t.Run("assessment overviews", func(t *testing.T) {
		state := store.NewMemory()
		remote := &fakeBackend{
			fetchAssessmentOverviews: func() ([]backend.AssessmentOverview, error) {
				return []backend.AssessmentOverview{{ID: 1, Category: "Mission"}}, nil
			},
		}
		s, _, _ := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.FetchAssessmentOverviews{})

		if got := state.AssessmentOverviews(); len(got) != 1 || got[0].Category != "Mission" {
			t.Errorf("unexpected overviews: %+v", got)
		}
	})

	t.Run("fetch failure leaves state untouched", func(t *testing.T) {
		state := store.NewMemory()
		state.SetAssessmentOverviews([]backend.AssessmentOverview{{ID: 1}})
		remote := &fakeBackend{
			fetchAssessmentOverviews: func() ([]backend.AssessmentOverview, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		}
		s, _, _ := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.FetchAssessmentOverviews{})

		if got := state.AssessmentOverviews(); len(got) != 1 {
			t.Errorf("state must be unchanged on failure, got %+v", got)
		}
	})

	t.Run("grading detail", func(t *testing.T) {
		state := store.NewMemory()
		remote := &fakeBackend{
			fetchGrading: func(submissionID int64) ([]backend.GradingQuestion, error) {
				if submissionID != 11 {
					t.Errorf("unexpected submission id: %d", submissionID)
				}
				return []backend.GradingQuestion{{Question: backend.Question{ID: 7}}}, nil
			},
		}
		s, _, _ := newTestSyncer(t, remote, state)

		dispatch(t, s, syncer.FetchGrading{SubmissionID: 11})

		questions, ok := state.Grading(11)
		if !ok || len(questions) != 1 {
			t.Errorf("unexpected grading detail: %+v %v", questions, ok)
		}
	})
}
