package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"MoodaGo/config"
	"MoodaGo/models"
	"MoodaGo/utils"
)

// RunMode selects the target day of a batch run.
type RunMode string

const (
	ModeYesterday RunMode = "yesterday"
	ModeToday     RunMode = "today" // manual/test runs only
)

// ParseRunMode maps a request string to a mode, defaulting to yesterday.
func ParseRunMode(s string) (RunMode, error) {
	switch s {
	case "", string(ModeYesterday):
		return ModeYesterday, nil
	case string(ModeToday):
		return ModeToday, nil
	default:
		return "", fmt.Errorf("unknown run mode %q", s)
	}
}

// Report aggregates one batch run.
type Report struct {
	Day       string
	Processed int
	Skipped   int
	Failed    int
}

// ErrRunInProgress is returned when another run holds the day's lock.
var ErrRunInProgress = errors.New("daily summary run already in progress")

// Collaborator interfaces, satisfied by the repository types and by fakes
// in tests.
type UserLister interface {
	ListAll() ([]models.User, error)
}

type ConversationSource interface {
	ForDay(userID, day string) ([]models.Message, error)
}

type EmotionLogSink interface {
	Upsert(userID, day string, emotion models.Emotion, summary, shortSummary, highlight string) (*models.EmotionLog, error)
}

type DayClassifier interface {
	Classify(ctx context.Context, messages []models.Message) DailyAnalysis
}

type RunLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// DailySummaryService walks every user once per run, turning the target
// day's transcript into an emotion log. One entry point serves both the
// scheduler and the manual trigger.
type DailySummaryService struct {
	users      UserLister
	messages   ConversationSource
	logs       EmotionLogSink
	classifier DayClassifier
	lock       RunLocker // optional
	targetDay  func(RunMode) string
}

func NewDailySummaryService(users UserLister, messages ConversationSource, logs EmotionLogSink, classifier DayClassifier, lock RunLocker) *DailySummaryService {
	return &DailySummaryService{
		users:      users,
		messages:   messages,
		logs:       logs,
		classifier: classifier,
		lock:       lock,
		targetDay:  defaultTargetDay,
	}
}

func defaultTargetDay(mode RunMode) string {
	now := time.Now()
	if mode == ModeToday {
		return utils.TodayKST(now)
	}
	return utils.YesterdayKST(now)
}

// Run executes one batch pass. Per-user failures are logged and counted
// without stopping the pass; only a failure to list users aborts the run.
func (s *DailySummaryService) Run(ctx context.Context, mode RunMode) (Report, error) {
	day := s.targetDay(mode)
	report := Report{Day: day}

	if s.lock != nil {
		ok, err := s.lock.Acquire(ctx, day, 30*time.Minute)
		if err != nil {
			// Lock store trouble is not worth skipping the batch for.
			config.Logger.Errorw("run lock unavailable, continuing without it", "error", err)
		} else if !ok {
			return report, ErrRunInProgress
		} else {
			defer func() {
				if err := s.lock.Release(ctx, day); err != nil {
					config.Logger.Errorw("run lock release failed", "error", err, "day", day)
				}
			}()
		}
	}

	users, err := s.users.ListAll()
	if err != nil {
		return report, fmt.Errorf("failed to list users: %w", err)
	}

	config.Logger.Infow("daily summary run started",
		"day", day,
		"mode", string(mode),
		"users", len(users),
	)

	for _, user := range users {
		if err := s.processUser(ctx, user.ID, day, &report); err != nil {
			report.Failed++
			config.Logger.Errorw("daily summary failed for user",
				"error", err,
				"userID", user.ID,
				"day", day,
			)
		}
	}

	config.Logger.Infow("daily summary run finished",
		"day", day,
		"processed", report.Processed,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)

	return report, nil
}

func (s *DailySummaryService) processUser(ctx context.Context, userID, day string, report *Report) error {
	messages, err := s.messages.ForDay(userID, day)
	if err != nil {
		return fmt.Errorf("conversation fetch failed: %w", err)
	}

	// No conversation that day: leave any existing log untouched.
	if len(messages) == 0 {
		report.Skipped++
		return nil
	}

	analysis := s.classifier.Classify(ctx, messages)

	if _, err := s.logs.Upsert(userID, day, analysis.Emotion, analysis.Summary, analysis.ShortSummary, analysis.Highlight); err != nil {
		return fmt.Errorf("emotion log upsert failed: %w", err)
	}

	report.Processed++
	return nil
}
