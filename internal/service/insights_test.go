package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/focusly/backend/internal/models"
)

// mockSessionRepository is a mock implementation of SessionRepository for testing
type mockSessionRepository struct {
	sessions   []models.FocusSession
	rangeCalls int
	allCalls   int
	lastStart  time.Time
	lastEnd    time.Time
	rangeErr   error
	historyErr error
}

func newMockSessionRepository(sessions ...models.FocusSession) *mockSessionRepository {
	return &mockSessionRepository{sessions: sessions}
}

func (m *mockSessionRepository) GetCompletedByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.FocusSession, error) {
	m.rangeCalls++
	m.lastStart = start
	m.lastEnd = end
	if m.rangeErr != nil {
		return nil, m.rangeErr
	}
	var result []models.FocusSession
	for _, s := range m.sessions {
		if s.UserID != userID {
			continue
		}
		if s.StartTime.Before(start) || s.StartTime.After(end) {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *mockSessionRepository) GetCompletedByUserID(ctx context.Context, userID string) ([]models.FocusSession, error) {
	m.allCalls++
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	var result []models.FocusSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	return result, nil
}

func completedSession(userID string, start time.Time, dur, quality int) models.FocusSession {
	end := start.Add(time.Duration(dur) * time.Minute)
	return models.FocusSession{
		ID:                   "ses-" + start.Format("20060102150405"),
		UserID:               userID,
		StartTime:            start,
		EndTime:              &end,
		DurationMinutes:      dur,
		SessionQualityRating: &quality,
	}
}

func TestGetInsightsDefaultWindow(t *testing.T) {
	repo := newMockSessionRepository()
	svc := NewInsightsService(repo)

	report, err := svc.GetInsights(context.Background(), "user-1", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("GetInsights returned error: %v", err)
	}

	if repo.rangeCalls != 1 || repo.allCalls != 1 {
		t.Errorf("expected one range call and one history call, got %d and %d", repo.rangeCalls, repo.allCalls)
	}

	gap := repo.lastEnd.Sub(repo.lastStart)
	want := time.Duration(DefaultWindowDays) * 24 * time.Hour
	if gap != want {
		t.Errorf("expected default window of %v, got %v", want, gap)
	}

	if !report.WindowStart.Equal(repo.lastStart) || !report.WindowEnd.Equal(repo.lastEnd) {
		t.Errorf("report window does not match queried window")
	}
}

func TestGetInsightsExplicitWindow(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	inside := completedSession("user-1", start.AddDate(0, 0, 5).Add(9*time.Hour), 30, 4)
	outside := completedSession("user-1", start.AddDate(0, 0, -10), 30, 5)

	repo := newMockSessionRepository(inside, outside)
	svc := NewInsightsService(repo)

	report, err := svc.GetInsights(context.Background(), "user-1", start, end)
	if err != nil {
		t.Fatalf("GetInsights returned error: %v", err)
	}

	if !repo.lastStart.Equal(start) || !repo.lastEnd.Equal(end) {
		t.Errorf("expected repo queried with [%v, %v], got [%v, %v]", start, end, repo.lastStart, repo.lastEnd)
	}

	// Only the in-window session feeds the hourly pass
	hour := inside.StartTime.UTC().Hour()
	stat, ok := report.HourlyPatterns[hour]
	if !ok {
		t.Fatalf("expected hourly stats for hour %d", hour)
	}
	if stat.SessionCount != 1 {
		t.Errorf("expected 1 session in hour %d, got %d", hour, stat.SessionCount)
	}
}

func TestGetInsightsInvertedWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -7)

	repo := newMockSessionRepository()
	svc := NewInsightsService(repo)

	_, err := svc.GetInsights(context.Background(), "user-1", start, end)
	if err == nil {
		t.Fatal("expected error for window end before start")
	}
	if repo.rangeCalls != 0 {
		t.Errorf("repository should not be queried on invalid window, got %d calls", repo.rangeCalls)
	}
}

func TestGetInsightsRepositoryErrors(t *testing.T) {
	repoErr := errors.New("postgrest unavailable")

	repo := newMockSessionRepository()
	repo.rangeErr = repoErr
	svc := NewInsightsService(repo)

	_, err := svc.GetInsights(context.Background(), "user-1", time.Time{}, time.Time{})
	if !errors.Is(err, repoErr) {
		t.Errorf("expected wrapped repository error, got %v", err)
	}

	repo = newMockSessionRepository()
	repo.historyErr = repoErr
	svc = NewInsightsService(repo)

	_, err = svc.GetInsights(context.Background(), "user-1", time.Time{}, time.Time{})
	if !errors.Is(err, repoErr) {
		t.Errorf("expected wrapped history error, got %v", err)
	}
}

func TestGetInsightsHistoryDrivesStreaks(t *testing.T) {
	now := time.Now().UTC()
	windowStart := now.AddDate(0, 0, -7)

	// Five consecutive days months before the reporting window
	old := now.AddDate(0, -3, 0)
	sessions := make([]models.FocusSession, 0, 5)
	for i := 0; i < 5; i++ {
		sessions = append(sessions, completedSession("user-1", old.AddDate(0, 0, i), 30, 4))
	}

	repo := newMockSessionRepository(sessions...)
	svc := NewInsightsService(repo)

	report, err := svc.GetInsights(context.Background(), "user-1", windowStart, now)
	if err != nil {
		t.Fatalf("GetInsights returned error: %v", err)
	}

	if report.Streaks.LongestStreak != 5 {
		t.Errorf("expected longest streak 5 from full history, got %d", report.Streaks.LongestStreak)
	}
}

func TestGetInsightsScopedToUser(t *testing.T) {
	now := time.Now().UTC()
	mine := completedSession("user-1", now.Add(-2*time.Hour), 30, 4)
	theirs := completedSession("user-2", now.Add(-3*time.Hour), 30, 5)

	repo := newMockSessionRepository(mine, theirs)
	svc := NewInsightsService(repo)

	report, err := svc.GetInsights(context.Background(), "user-1", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("GetInsights returned error: %v", err)
	}

	total := 0
	for _, stat := range report.HourlyPatterns {
		total += stat.SessionCount
	}
	if total != 1 {
		t.Errorf("expected exactly 1 session in report, got %d", total)
	}
}
