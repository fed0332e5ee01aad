// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package backend

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/praxis-foundation/praxis/exprval"
	"github.com/praxis-foundation/praxis/library"
)

// Credentials is the access/refresh credential pair. Both fields are
// always present together; the logged-out state is represented by the
// absence of the pair, never by empty strings.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// Role is the principal type of the logged-in user.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// User is the profile returned by GET user.
type User struct {
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Grade int    `json:"grade"`
	Story Story  `json:"story"`
}

// Story is the user's current story progression.
type Story struct {
	Story     string `json:"story"`
	PlayStory bool   `json:"playStory"`
}

// AssessmentStatus is the submission state of an assessment overview.
// Transitions move only forward (not attempted → attempted → submitted)
// except for the explicit unsubmit operation, which reverts submitted
// back to attempted.
type AssessmentStatus string

const (
	StatusNotAttempted AssessmentStatus = "not_attempted"
	StatusAttempted    AssessmentStatus = "attempted"
	StatusSubmitted    AssessmentStatus = "submitted"
)

// QuestionType discriminates question payload shapes.
type QuestionType string

const (
	QuestionProgramming QuestionType = "programming"
	QuestionMCQ         QuestionType = "mcq"
)

// AssessmentOverview is the summary projection of an assessment used for
// listing, before the detail fetch.
type AssessmentOverview struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Category     string           `json:"category"`
	ShortSummary string           `json:"shortSummary"`
	OpenAt       string           `json:"openAt"`
	CloseAt      string           `json:"closeAt"`
	CoverImage   string           `json:"coverImage"`
	MaxGrade     int              `json:"maxGrade"`
	MaxXP        int              `json:"maxXp"`
	Status       AssessmentStatus `json:"status"`
	Story        string           `json:"story"`
}

// Assessment is the full detail payload: metadata plus the ordered
// question list. Question identity is immutable once fetched; only a
// question's answer (and, for programming questions, its grading-result
// fields) is locally mutable.
type Assessment struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	LongSummary string     `json:"longSummary"`
	MissionPDF  string     `json:"missionPDF"`
	Questions   []Question `json:"questions"`
}

// Question is one entry in an assessment or grading detail.
type Question struct {
	ID                 int64               `json:"id"`
	Type               QuestionType        `json:"type"`
	Content            string              `json:"content"`
	Answer             any                 `json:"answer"`
	RoomID             string              `json:"roomId"`
	Library            Library             `json:"library"`
	Prepend            string              `json:"prepend"`
	Postpend           string              `json:"postpend"`
	SolutionTemplate   string              `json:"solutionTemplate"`
	Solution           any                 `json:"solution"`
	Choices            []MCQChoice         `json:"choices"`
	Testcases          []Testcase          `json:"testcases"`
	AutogradingResults []AutogradingResult `json:"autogradingResults"`
	MaxGrade           int                 `json:"maxGrade"`
	MaxXP              int                 `json:"maxXp"`
}

// MCQChoice is one option of a multiple-choice question.
type MCQChoice struct {
	Content string `json:"content"`
	Hint    string `json:"hint"`
}

// Testcase is one autograding test case of a programming question.
type Testcase struct {
	Program string `json:"program"`
	Answer  string `json:"answer"`
	Score   int    `json:"score"`
}

// AutogradingResult is the stored outcome of one autograder run.
type AutogradingResult struct {
	ResultType string   `json:"resultType"`
	Expected   string   `json:"expected"`
	Actual     string   `json:"actual"`
	Errors     []string `json:"errors"`
}

// Library is the normalized external-library descriptor of a question:
// which symbol allowlist applies and which global bindings are in scope.
type Library struct {
	Chapter  int             `json:"chapter"`
	External ExternalLibrary `json:"external"`
	Globals  []Global        `json:"globals"`
}

// ExternalLibrary names the symbol allowlist. Name is always upper-cased
// during decode.
type ExternalLibrary struct {
	Name    string   `json:"name"`
	Symbols []string `json:"symbols"`
}

// Global is one evaluated global binding. Value holds the evaluated
// result, or the original source text when evaluation failed.
type Global struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// GradingOverview is one row per (student, assessment) submission pair.
// CurrentGrade and CurrentXP always equal initial + adjustment.
type GradingOverview struct {
	AssessmentID       int64            `json:"assessmentId"`
	AssessmentName     string           `json:"assessmentName"`
	AssessmentCategory string           `json:"assessmentCategory"`
	StudentID          int64            `json:"studentId"`
	StudentName        string           `json:"studentName"`
	SubmissionID       int64            `json:"submissionId"`
	SubmissionStatus   AssessmentStatus `json:"submissionStatus"`
	GroupName          string           `json:"groupName"`
	GradingStatus      string           `json:"gradingStatus"`
	QuestionCount      int              `json:"questionCount"`
	GradedCount        int              `json:"gradedCount"`

	InitialGrade    int `json:"initialGrade"`
	GradeAdjustment int `json:"gradeAdjustment"`
	CurrentGrade    int `json:"currentGrade"`
	MaxGrade        int `json:"maxGrade"`

	InitialXP    int `json:"initialXp"`
	XPAdjustment int `json:"xpAdjustment"`
	CurrentXP    int `json:"currentXp"`
	MaxXP        int `json:"maxXp"`
	XPBonus      int `json:"xpBonus"`
}

// Student identifies the submitter in a grading detail row.
type Student struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Grade is the grading record of one question in one submission. Grade
// and XP are server-authoritative base values; the adjustment fields are
// the only staff-mutable fields prior to a confirmed grade submission.
type Grade struct {
	Grade           int    `json:"grade"`
	XP              int    `json:"xp"`
	RoomID          string `json:"roomId"`
	GradeAdjustment int    `json:"gradeAdjustment"`
	XPAdjustment    int    `json:"xpAdjustment"`
}

// GradingQuestion pairs a question snapshot, the student, and the grade
// record for one entry of a grading detail.
type GradingQuestion struct {
	Question Question `json:"question"`
	Student  Student  `json:"student"`
	Grade    Grade    `json:"grade"`
}

// Notification is one server-created notification, optionally linked to
// an assessment or a submission. Zero-valued linkage fields mean the
// notification carries no such link.
type Notification struct {
	ID              int64  `json:"id"`
	Type            string `json:"type"`
	AssessmentID    int64  `json:"assessment_id,omitempty"`
	AssessmentType  string `json:"assessment_type,omitempty"`
	AssessmentTitle string `json:"assessment_title,omitempty"`
	SubmissionID    int64  `json:"submission_id,omitempty"`
}

// SourcecastEntry is one row of the sourcecast index.
type SourcecastEntry struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	URL          string  `json:"url"`
	PlaybackData string  `json:"playbackData"`
	Uploader     Student `json:"uploader"`
}

// SourcecastUpload is the input to POST sourcecast: recording metadata,
// the audio blob, and the already-serialized playback data.
type SourcecastUpload struct {
	Title        string
	Description  string
	Audio        []byte
	PlaybackData string
}

// capitalise upper-cases the first letter of a server-side enum value
// ("mission" → "Mission"), leaving the remainder unchanged.
func capitalise(text string) string {
	if text == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(first)) + text[size:]
}

// Wire shapes: what the server actually sends, before reshaping into the
// local data model.

type wireTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type wireOverview struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Type         string           `json:"type"`
	ShortSummary string           `json:"shortSummary"`
	OpenAt       string           `json:"openAt"`
	CloseAt      string           `json:"closeAt"`
	CoverImage   string           `json:"coverImage"`
	MaxGrade     int              `json:"maxGrade"`
	MaxXP        int              `json:"maxXp"`
	Status       AssessmentStatus `json:"status"`
	Story        string           `json:"story"`
}

func (w wireOverview) reshape() AssessmentOverview {
	return AssessmentOverview{
		ID:           w.ID,
		Title:        w.Title,
		Category:     capitalise(w.Type),
		ShortSummary: w.ShortSummary,
		OpenAt:       w.OpenAt,
		CloseAt:      w.CloseAt,
		CoverImage:   w.CoverImage,
		MaxGrade:     w.MaxGrade,
		MaxXP:        w.MaxXP,
		Status:       w.Status,
		Story:        w.Story,
	}
}

type wireAssessment struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Type        string         `json:"type"`
	LongSummary string         `json:"longSummary"`
	MissionPDF  string         `json:"missionPDF"`
	Questions   []wireQuestion `json:"questions"`
}

type wireQuestion struct {
	ID                 int64               `json:"id"`
	Type               QuestionType        `json:"type"`
	Content            string              `json:"content"`
	Answer             any                 `json:"answer"`
	Library            wireLibrary         `json:"library"`
	Prepend            string              `json:"prepend"`
	Postpend           string              `json:"postpend"`
	SolutionTemplate   string              `json:"solutionTemplate"`
	Solution           any                 `json:"solution"`
	Choices            []MCQChoice         `json:"choices"`
	Testcases          []Testcase          `json:"testcases"`
	AutogradingResults []AutogradingResult `json:"autogradingResults"`
	MaxGrade           int                 `json:"maxGrade"`
	MaxXP              int                 `json:"maxXp"`
}

type wireLibrary struct {
	Chapter  int               `json:"chapter"`
	External wireExternal      `json:"external"`
	Globals  map[string]string `json:"globals"`
}

type wireExternal struct {
	Name    string   `json:"name"`
	Symbols []string `json:"symbols"`
}

// reshape converts a server question into the local model. Programming
// questions get defaulted collections so downstream code never sees nil
// where the workspace expects an empty list.
func (w wireQuestion) reshape() Question {
	question := Question{
		ID:                 w.ID,
		Type:               w.Type,
		Content:            w.Content,
		Answer:             w.Answer,
		Library:            w.Library.reshape(),
		Prepend:            w.Prepend,
		Postpend:           w.Postpend,
		SolutionTemplate:   w.SolutionTemplate,
		Solution:           w.Solution,
		Choices:            w.Choices,
		Testcases:          w.Testcases,
		AutogradingResults: w.AutogradingResults,
		MaxGrade:           w.MaxGrade,
		MaxXP:              w.MaxXP,
	}
	if question.Type == QuestionProgramming {
		if question.Testcases == nil {
			question.Testcases = []Testcase{}
		}
		if question.AutogradingResults == nil {
			question.AutogradingResults = []AutogradingResult{}
		}
	}
	return question
}

// reshape normalizes a library descriptor: the external name is
// upper-cased and the globals mapping becomes an ordered sequence of
// (name, evaluated value) pairs. An expression that fails to evaluate
// keeps its source text as the value — the workspace treats such entries
// as opaque. Names are sorted so the sequence is deterministic.
func (w wireLibrary) reshape() Library {
	name := strings.ToUpper(w.External.Name)
	symbols := w.External.Symbols
	if len(symbols) == 0 {
		// Older deployments send only the allowlist name and rely on
		// the client-side manifest for the symbols.
		if known, ok := library.Symbols(name); ok {
			symbols = known
		}
	}
	lib := Library{
		Chapter: w.Chapter,
		External: ExternalLibrary{
			Name:    name,
			Symbols: symbols,
		},
	}

	names := make([]string, 0, len(w.Globals))
	for name := range w.Globals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		source := w.Globals[name]
		value, err := exprval.Evaluate(source)
		if err != nil {
			lib.Globals = append(lib.Globals, Global{Name: name, Value: source})
			continue
		}
		lib.Globals = append(lib.Globals, Global{Name: name, Value: value})
	}
	return lib
}

type wireGradingOverview struct {
	ID            int64            `json:"id"`
	Status        AssessmentStatus `json:"status"`
	GroupName     string           `json:"groupName"`
	GradingStatus string           `json:"gradingStatus"`
	QuestionCount int              `json:"questionCount"`
	GradedCount   int              `json:"gradedCount"`
	Grade         int              `json:"grade"`
	Adjustment    int              `json:"adjustment"`
	XP            int              `json:"xp"`
	XPAdjustment  int              `json:"xpAdjustment"`
	XPBonus       int              `json:"xpBonus"`
	Student       Student          `json:"student"`
	Assessment    struct {
		ID       int64  `json:"id"`
		Title    string `json:"title"`
		Type     string `json:"type"`
		MaxGrade int    `json:"maxGrade"`
		MaxXP    int    `json:"maxXp"`
	} `json:"assessment"`
}

func (w wireGradingOverview) reshape() GradingOverview {
	return GradingOverview{
		AssessmentID:       w.Assessment.ID,
		AssessmentName:     w.Assessment.Title,
		AssessmentCategory: capitalise(w.Assessment.Type),
		StudentID:          w.Student.ID,
		StudentName:        w.Student.Name,
		SubmissionID:       w.ID,
		SubmissionStatus:   w.Status,
		GroupName:          w.GroupName,
		GradingStatus:      w.GradingStatus,
		QuestionCount:      w.QuestionCount,
		GradedCount:        w.GradedCount,

		InitialGrade:    w.Grade,
		GradeAdjustment: w.Adjustment,
		CurrentGrade:    w.Grade + w.Adjustment,
		MaxGrade:        w.Assessment.MaxGrade,

		InitialXP:    w.XP,
		XPAdjustment: w.XPAdjustment,
		CurrentXP:    w.XP + w.XPAdjustment,
		MaxXP:        w.Assessment.MaxXP,
		XPBonus:      w.XPBonus,
	}
}

type wireGradingQuestion struct {
	Student  Student      `json:"student"`
	Question wireQuestion `json:"question"`
	Solution any          `json:"solution"`
	Grade    wireGrade    `json:"grade"`
}

type wireGrade struct {
	Grade        int    `json:"grade"`
	XP           int    `json:"xp"`
	RoomID       string `json:"roomId"`
	Adjustment   int    `json:"adjustment"`
	XPAdjustment int    `json:"xpAdjustment"`
}

func (w wireGradingQuestion) reshape() GradingQuestion {
	question := w.Question.reshape()
	// The grading endpoint may lift the solution out of the question;
	// prefer the outer value when present.
	if w.Solution != nil {
		question.Solution = w.Solution
	}
	return GradingQuestion{
		Question: question,
		Student:  w.Student,
		Grade: Grade{
			Grade:           w.Grade.Grade,
			XP:              w.Grade.XP,
			RoomID:          w.Grade.RoomID, // absent defaults to ""
			GradeAdjustment: w.Grade.Adjustment,
			XPAdjustment:    w.Grade.XPAdjustment,
		},
	}
}

type wireNotification struct {
	ID           int64  `json:"id"`
	Type         string `json:"type"`
	AssessmentID int64  `json:"assessment_id"`
	SubmissionID int64  `json:"submission_id"`
	Assessment   *struct {
		Type  string `json:"type"`
		Title string `json:"title"`
	} `json:"assessment"`
}

func (w wireNotification) reshape() Notification {
	notification := Notification{
		ID:           w.ID,
		Type:         w.Type,
		AssessmentID: w.AssessmentID,
		SubmissionID: w.SubmissionID,
	}
	if w.Assessment != nil {
		notification.AssessmentType = capitalise(w.Assessment.Type)
		notification.AssessmentTitle = w.Assessment.Title
	}
	return notification
}
