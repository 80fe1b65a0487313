package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"MoodaGo/models"
)

type fakeUsers struct {
	users []models.User
	err   error
}

func (f *fakeUsers) ListAll() ([]models.User, error) {
	return f.users, f.err
}

type fakeConversations struct {
	byUser  map[string][]models.Message
	failFor map[string]bool
}

func (f *fakeConversations) ForDay(userID, day string) ([]models.Message, error) {
	if f.failFor[userID] {
		return nil, errors.New("store unavailable")
	}
	return f.byUser[userID], nil
}

type fakeLogs struct {
	upserts map[string]int // "user/day" -> write count
	entries map[string]models.EmotionLog
	failFor map[string]bool
}

func newFakeLogs() *fakeLogs {
	return &fakeLogs{
		upserts: make(map[string]int),
		entries: make(map[string]models.EmotionLog),
		failFor: make(map[string]bool),
	}
}

func (f *fakeLogs) Upsert(userID, day string, emotion models.Emotion, summary, shortSummary, highlight string) (*models.EmotionLog, error) {
	if f.failFor[userID] {
		return nil, errors.New("write failed")
	}
	key := fmt.Sprintf("%s/%s", userID, day)
	f.upserts[key]++
	log, ok := f.entries[key]
	if !ok {
		log = models.EmotionLog{ID: fmt.Sprintf("id-%s", key), UserID: userID, Date: day}
	}
	log.Emotion = emotion
	log.Summary = summary
	log.ShortSummary = shortSummary
	log.Highlight = highlight
	f.entries[key] = log
	return &log, nil
}

type fakeLock struct {
	held bool
	err  error
}

func (f *fakeLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return !f.held, nil
}

func (f *fakeLock) Release(ctx context.Context, key string) error { return nil }

func newTestService(users UserLister, conv ConversationSource, logs EmotionLogSink, lock RunLocker) *DailySummaryService {
	s := NewDailySummaryService(users, conv, logs, NewEmotionClassifier(nil, time.Second), lock)
	s.targetDay = func(mode RunMode) string {
		if mode == ModeToday {
			return "2024-03-02"
		}
		return "2024-03-01"
	}
	return s
}

func TestRunProcessesAllUsers(t *testing.T) {
	users := &fakeUsers{users: []models.User{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}}
	conv := &fakeConversations{
		byUser: map[string][]models.Message{
			"u1": {userMsg("오늘 정말 좋았어")},
			"u2": {userMsg("너무 슬퍼")},
			// u3 has no messages
		},
	}
	logs := newFakeLogs()

	s := newTestService(users, conv, logs, nil)
	report, err := s.Run(context.Background(), ModeYesterday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Processed != 2 || report.Skipped != 1 || report.Failed != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Day != "2024-03-01" {
		t.Fatalf("yesterday mode should target 2024-03-01, got %s", report.Day)
	}
	if logs.entries["u1/2024-03-01"].Emotion != models.EmotionHappy {
		t.Fatalf("u1 emotion = %s, want Happy", logs.entries["u1/2024-03-01"].Emotion)
	}
	if logs.entries["u2/2024-03-01"].Emotion != models.EmotionSad {
		t.Fatalf("u2 emotion = %s, want Sad", logs.entries["u2/2024-03-01"].Emotion)
	}
	if _, ok := logs.entries["u3/2024-03-01"]; ok {
		t.Fatalf("empty day must not produce a log write")
	}
}

func TestRunTodayMode(t *testing.T) {
	users := &fakeUsers{users: []models.User{{ID: "u1"}}}
	conv := &fakeConversations{byUser: map[string][]models.Message{"u1": {userMsg("안녕")}}}
	logs := newFakeLogs()

	s := newTestService(users, conv, logs, nil)
	report, err := s.Run(context.Background(), ModeToday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Day != "2024-03-02" {
		t.Fatalf("today mode should target 2024-03-02, got %s", report.Day)
	}
	if _, ok := logs.entries["u1/2024-03-02"]; !ok {
		t.Fatalf("expected a log for today's date")
	}
}

func TestRunIdempotent(t *testing.T) {
	users := &fakeUsers{users: []models.User{{ID: "u1"}}}
	conv := &fakeConversations{byUser: map[string][]models.Message{"u1": {userMsg("오늘 정말 좋았어")}}}
	logs := newFakeLogs()

	s := newTestService(users, conv, logs, nil)
	for i := 0; i < 2; i++ {
		if _, err := s.Run(context.Background(), ModeYesterday); err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
	}

	if len(logs.entries) != 1 {
		t.Fatalf("two runs must leave exactly one log, got %d", len(logs.entries))
	}
	if logs.upserts["u1/2024-03-01"] != 2 {
		t.Fatalf("second run should overwrite, not skip: %d writes", logs.upserts["u1/2024-03-01"])
	}
}

func TestRunIsolatesUserFailures(t *testing.T) {
	users := &fakeUsers{users: []models.User{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}}
	conv := &fakeConversations{
		byUser: map[string][]models.Message{
			"u1": {userMsg("좋았어")},
			"u2": {userMsg("좋았어")},
			"u3": {userMsg("좋았어")},
		},
		failFor: map[string]bool{"u2": true},
	}
	logs := newFakeLogs()

	s := newTestService(users, conv, logs, nil)
	report, err := s.Run(context.Background(), ModeYesterday)
	if err != nil {
		t.Fatalf("per-user failure must not abort the run: %v", err)
	}

	if report.Processed != 2 || report.Failed != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	for _, u := range []string{"u1", "u3"} {
		if _, ok := logs.entries[u+"/2024-03-01"]; !ok {
			t.Fatalf("user %s should still have been processed", u)
		}
	}
}

func TestRunUpsertFailureCountsAsUserFailure(t *testing.T) {
	users := &fakeUsers{users: []models.User{{ID: "u1"}, {ID: "u2"}}}
	conv := &fakeConversations{byUser: map[string][]models.Message{
		"u1": {userMsg("좋았어")},
		"u2": {userMsg("좋았어")},
	}}
	logs := newFakeLogs()
	logs.failFor["u1"] = true

	s := newTestService(users, conv, logs, nil)
	report, err := s.Run(context.Background(), ModeYesterday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Processed != 1 || report.Failed != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestRunAbortsWhenUserListFails(t *testing.T) {
	users := &fakeUsers{err: errors.New("database down")}
	s := newTestService(users, &fakeConversations{}, newFakeLogs(), nil)

	if _, err := s.Run(context.Background(), ModeYesterday); err == nil {
		t.Fatalf("total user-list failure must abort the run")
	}
}

func TestRunLockPreventsOverlap(t *testing.T) {
	users := &fakeUsers{users: []models.User{{ID: "u1"}}}
	conv := &fakeConversations{byUser: map[string][]models.Message{"u1": {userMsg("좋았어")}}}
	logs := newFakeLogs()

	s := newTestService(users, conv, logs, &fakeLock{held: true})
	_, err := s.Run(context.Background(), ModeYesterday)
	if !errors.Is(err, ErrRunInProgress) {
		t.Fatalf("expected ErrRunInProgress, got %v", err)
	}
	if len(logs.entries) != 0 {
		t.Fatalf("locked run must not write logs")
	}
}

func TestRunContinuesWhenLockStoreFails(t *testing.T) {
	users := &fakeUsers{users: []models.User{{ID: "u1"}}}
	conv := &fakeConversations{byUser: map[string][]models.Message{"u1": {userMsg("좋았어")}}}
	logs := newFakeLogs()

	s := newTestService(users, conv, logs, &fakeLock{err: errors.New("redis down")})
	report, err := s.Run(context.Background(), ModeYesterday)
	if err != nil {
		t.Fatalf("lock store trouble must not abort the batch: %v", err)
	}
	if report.Processed != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestParseRunMode(t *testing.T) {
	if mode, err := ParseRunMode(""); err != nil || mode != ModeYesterday {
		t.Fatalf("empty mode should default to yesterday, got %v %v", mode, err)
	}
	if mode, err := ParseRunMode("today"); err != nil || mode != ModeToday {
		t.Fatalf("today mode not parsed: %v %v", mode, err)
	}
	if _, err := ParseRunMode("tomorrow"); err == nil {
		t.Fatalf("unknown mode must be rejected")
	}
}
