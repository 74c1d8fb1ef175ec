package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/focusly/backend/internal/models"
	"github.com/focusly/backend/pkg/supabase"
)

// sessionSelect embeds the distraction events and the linked task's category
// alongside each session row.
const sessionSelect = "*,category_name:tasks(category),distractions(*)"

type sessionRepository struct {
	client *supabase.Client
}

// NewSessionRepository creates a new session repository backed by PostgREST
func NewSessionRepository(client *supabase.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) GetCompletedByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.FocusSession, error) {
	query := map[string]interface{}{
		"user_id":  fmt.Sprintf("eq.%s", userID),
		"end_time": "not.is.null",
		"and":      fmt.Sprintf("(start_time.gte.%s,start_time.lte.%s)", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		"select":   sessionSelect,
		"order":    "start_time.asc",
	}

	body, err := r.client.Query("focus_sessions", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	return unmarshalSessions(body)
}

func (r *sessionRepository) GetCompletedByUserID(ctx context.Context, userID string) ([]models.FocusSession, error) {
	query := map[string]interface{}{
		"user_id":  fmt.Sprintf("eq.%s", userID),
		"end_time": "not.is.null",
		"select":   sessionSelect,
		"order":    "start_time.asc",
	}

	body, err := r.client.Query("focus_sessions", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get session history: %w", err)
	}

	return unmarshalSessions(body)
}

// sessionRow matches the PostgREST response shape; the embedded task resource
// arrives as an object and is flattened onto the session.
type sessionRow struct {
	models.FocusSession
	Task *struct {
		Category *string `json:"category"`
	} `json:"category_name"`
}

func unmarshalSessions(body []byte) ([]models.FocusSession, error) {
	var rows []sessionRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	sessions := make([]models.FocusSession, 0, len(rows))
	for _, row := range rows {
		s := row.FocusSession
		s.CategoryName = nil
		if row.Task != nil {
			s.CategoryName = row.Task.Category
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
