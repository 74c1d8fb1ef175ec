package repository

import (
	"context"
	"time"

	"github.com/focusly/backend/internal/models"
)

// SessionRepository is the read contract the analytics engine is fed from:
// given a user and an optional date range, return that user's completed focus
// sessions ordered by start time ascending, with distraction events and the
// linked task's category embedded.
type SessionRepository interface {
	// GetCompletedByUserIDAndDateRange returns completed sessions whose start
	// time falls inside [start, end].
	GetCompletedByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.FocusSession, error)

	// GetCompletedByUserID returns the user's entire completed-session
	// history. Streak computation needs the full calendar, not a window.
	GetCompletedByUserID(ctx context.Context, userID string) ([]models.FocusSession, error)
}
