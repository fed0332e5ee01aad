// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

// praxis-sync drives the synchronization layer from the command line.
//
// Each invocation dispatches one synchronization intent against either a
// live backend (authenticating with --code) or the offline
// fixture-backed substitute, then prints the resulting local state. The
// domain state is carried across invocations through a snapshot file;
// credentials are not persisted, they live only for the process.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/praxis-foundation/praxis/backend"
	"github.com/praxis-foundation/praxis/lib/config"
	"github.com/praxis-foundation/praxis/offline"
	"github.com/praxis-foundation/praxis/store"
	"github.com/praxis-foundation/praxis/syncer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flagSet := pflag.NewFlagSet("praxis-sync", pflag.ContinueOnError)
	configPath := flagSet.String("config", "", "path to praxis.yaml (default: $PRAXIS_CONFIG)")
	code := flagSet.String("code", "", "login code to authenticate with before the verb runs")
	group := flagSet.Bool("group", false, "restrict grading rows to your own group")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel)
	state := store.NewMemory()
	if _, err := os.Stat(cfg.Snapshot); err == nil {
		if err := state.Load(cfg.Snapshot); err != nil {
			logger.Warn("discarding unreadable snapshot", "path", cfg.Snapshot, "error", err)
		}
	}

	notifier := &consoleNotifier{}
	navigator := &consoleNavigator{}

	remote, err := newBackend(cfg, notifier, navigator, logger)
	if err != nil {
		return err
	}

	s, err := syncer.New(syncer.Config{
		Backend:   remote,
		Store:     state,
		Notifier:  notifier,
		Navigator: navigator,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	args := flagSet.Args()
	if len(args) == 0 {
		printHelp(flagSet)
		return fmt.Errorf("a verb is required")
	}

	if *code != "" && args[0] != "login" {
		s.Dispatch(ctx, syncer.Login{Code: *code})
		s.Wait()
	}

	if err := runVerb(ctx, s, state, args, *group); err != nil {
		return err
	}
	s.Wait()

	if err := os.MkdirAll(filepath.Dir(cfg.Snapshot), 0o700); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}
	return state.Save(cfg.Snapshot)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func newLogger(level string) *slog.Logger {
	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levels[level],
	}))
}

func newBackend(cfg *config.Config, notifier backend.Notifier, navigator backend.Navigator, logger *slog.Logger) (syncer.Backend, error) {
	if cfg.Offline {
		fixtures := offline.DefaultFixtures()
		if cfg.Fixtures != "" {
			loaded, err := offline.LoadFixtures(cfg.Fixtures)
			if err != nil {
				return nil, err
			}
			fixtures = loaded
		}
		return offline.New(fixtures, logger), nil
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	client, err := backend.NewClient(backend.ClientConfig{
		BaseURL:    cfg.Backend,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	return client.NewSession(backend.SessionConfig{
		Notifier:  notifier,
		Navigator: navigator,
	})
}

func runVerb(ctx context.Context, s *syncer.Syncer, state *store.Memory, args []string, group bool) error {
	verb, rest := args[0], args[1:]
	switch verb {
	case "login":
		if len(rest) != 1 {
			return fmt.Errorf("usage: praxis-sync login <code>")
		}
		s.Dispatch(ctx, syncer.Login{Code: rest[0]})
		s.Wait()
		if user, ok := state.User(); ok {
			fmt.Printf("logged in as %s (%s)\n", user.Name, user.Role)
		}

	case "profile":
		s.Dispatch(ctx, syncer.FetchUser{})
		s.Wait()
		user, ok := state.User()
		if !ok {
			return fmt.Errorf("no profile available")
		}
		fmt.Printf("%s (%s), grade %d, story %s\n", user.Name, user.Role, user.Grade, user.Story.Story)

	case "assessments":
		s.Dispatch(ctx, syncer.FetchAssessmentOverviews{})
		s.Wait()
		for _, overview := range state.AssessmentOverviews() {
			fmt.Printf("%4d  %-10s %-10s %s\n", overview.ID, overview.Category, overview.Status, overview.Title)
		}

	case "assessment":
		id, err := parseID(rest, "assessment")
		if err != nil {
			return err
		}
		s.Dispatch(ctx, syncer.FetchAssessment{ID: id})
		s.Wait()
		assessment, ok := state.Assessment(id)
		if !ok {
			return fmt.Errorf("assessment %d not available", id)
		}
		state.SetCurrentAssessment(id)
		fmt.Printf("%s (%s)\n", assessment.Title, assessment.Category)
		for _, question := range assessment.Questions {
			fmt.Printf("  question %d [%s] max grade %d, max xp %d\n",
				question.ID, question.Type, question.MaxGrade, question.MaxXP)
		}

	case "answer":
		if len(rest) != 2 {
			return fmt.Errorf("usage: praxis-sync answer <questionId> <answer>")
		}
		questionID, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid question id %q", rest[0])
		}
		s.Dispatch(ctx, syncer.SubmitAnswer{QuestionID: questionID, Answer: rest[1]})

	case "submit":
		id, err := parseID(rest, "submit")
		if err != nil {
			return err
		}
		s.Dispatch(ctx, syncer.SubmitAssessment{ID: id})

	case "grading":
		s.Dispatch(ctx, syncer.FetchGradingOverviews{GroupOnly: group})
		s.Wait()
		for _, row := range state.GradingOverviews() {
			fmt.Printf("%4d  %-12s %-10s grade %d/%d, xp %d/%d\n",
				row.SubmissionID, row.StudentName, row.SubmissionStatus,
				row.CurrentGrade, row.MaxGrade, row.CurrentXP, row.MaxXP)
		}

	case "submission":
		id, err := parseID(rest, "submission")
		if err != nil {
			return err
		}
		s.Dispatch(ctx, syncer.FetchGrading{SubmissionID: id})
		s.Wait()
		questions, ok := state.Grading(id)
		if !ok {
			return fmt.Errorf("submission %d not available", id)
		}
		for _, entry := range questions {
			fmt.Printf("  question %d by %s: grade %d%+d, xp %d%+d\n",
				entry.Question.ID, entry.Student.Name,
				entry.Grade.Grade, entry.Grade.GradeAdjustment,
				entry.Grade.XP, entry.Grade.XPAdjustment)
		}

	case "unsubmit":
		id, err := parseID(rest, "unsubmit")
		if err != nil {
			return err
		}
		s.Dispatch(ctx, syncer.Unsubmit{SubmissionID: id})

	case "notifications":
		s.Dispatch(ctx, syncer.FetchNotifications{})
		s.Wait()
		for _, notification := range state.Notifications() {
			fmt.Printf("%4d  %-12s %s\n", notification.ID, notification.Type, notification.AssessmentTitle)
		}

	case "acknowledge":
		ids, err := parseIDs(rest)
		if err != nil {
			return err
		}
		s.Dispatch(ctx, syncer.FetchNotifications{})
		s.Wait()
		s.Dispatch(ctx, syncer.AcknowledgeNotifications{Filter: selectIDs(ids)})

	case "sourcecasts":
		s.Dispatch(ctx, syncer.FetchSourcecastIndex{})
		s.Wait()
		for _, entry := range state.SourcecastIndex() {
			fmt.Printf("%4d  %-20s by %s\n", entry.ID, entry.Title, entry.Uploader.Name)
		}

	default:
		return fmt.Errorf("unknown verb %q", verb)
	}
	return nil
}

// selectIDs builds a notification filter from an explicit id list. An
// empty list selects everything.
func selectIDs(ids []int64) func([]backend.Notification) []backend.Notification {
	if len(ids) == 0 {
		return nil
	}
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	return func(notifications []backend.Notification) []backend.Notification {
		var selected []backend.Notification
		for _, notification := range notifications {
			if wanted[notification.ID] {
				selected = append(selected, notification)
			}
		}
		return selected
	}
}

func parseID(args []string, verb string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: praxis-sync %s <id>", verb)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// consoleNotifier prints notifications the way the UI would toast them.
type consoleNotifier struct{}

func (consoleNotifier) ShowSuccess(message string, duration time.Duration) {
	fmt.Println(message)
}

func (consoleNotifier) ShowWarning(message string) {
	fmt.Fprintf(os.Stderr, "warning: %s\n", message)
}

// consoleNavigator reports route changes instead of rendering them.
type consoleNavigator struct{}

func (consoleNavigator) NavigateTo(path string) {
	fmt.Printf("-> %s\n", path)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Print(`praxis-sync - drive the assessment synchronization layer

Usage:
  praxis-sync [flags] <verb> [args]

Verbs:
  login <code>           authenticate and fetch the profile
  profile                fetch the user profile
  assessments            list assessment overviews
  assessment <id>        fetch one assessment and open it
  answer <qid> <answer>  save an answer (students)
  submit <id>            finalize an assessment submission (students)
  grading                list grading rows (staff; see --group)
  submission <id>        fetch one submission's grading detail (staff)
  unsubmit <id>          revert a submission to attempted (staff)
  notifications          list notifications
  acknowledge [id...]    acknowledge notifications (all when no ids given)
  sourcecasts            list sourcecast recordings

Flags:
`)
	flagSet.PrintDefaults()
}
