package service

import (
	"context"
	"fmt"
	"time"

	"github.com/focusly/backend/internal/analytics"
	"github.com/focusly/backend/internal/models"
	"github.com/focusly/backend/internal/repository"
)

// DefaultWindowDays is the reporting window used when the request does not
// supply explicit bounds
const DefaultWindowDays = 30

type insightsService struct {
	sessionRepo repository.SessionRepository
}

// NewInsightsService creates a new insights service
func NewInsightsService(sessionRepo repository.SessionRepository) InsightsService {
	return &insightsService{sessionRepo: sessionRepo}
}

// GetInsights loads one consistent snapshot of the user's sessions and runs
// the analytics engine over it. Nothing is cached: the engine is pure and
// recomputes every derived value per request.
func (s *insightsService) GetInsights(ctx context.Context, userID string, windowStart, windowEnd time.Time) (*models.InsightsReport, error) {
	now := time.Now().UTC()

	if windowEnd.IsZero() {
		windowEnd = now
	}
	if windowStart.IsZero() {
		windowStart = windowEnd.AddDate(0, 0, -DefaultWindowDays)
	}
	if windowEnd.Before(windowStart) {
		return nil, fmt.Errorf("window end %s precedes window start %s",
			windowEnd.Format(time.RFC3339), windowStart.Format(time.RFC3339))
	}

	window, err := s.sessionRepo.GetCompletedByUserIDAndDateRange(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get window sessions: %w", err)
	}

	// Streaks are calendar-wide facts, so they get the full history rather
	// than the reporting window.
	history, err := s.sessionRepo.GetCompletedByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session history: %w", err)
	}

	return analytics.ComputeInsights(window, history, windowStart, windowEnd, now), nil
}
