package models

import "time"

// Distraction represents a single distraction event logged during a focus session
type Distraction struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Timestamp   time.Time `json:"timestamp"`
}

// FocusSession represents a timed work session with its self-reported quality
// and task-progress snapshots. Optional fields use pointers so that "absent"
// is distinguishable from a zero value.
type FocusSession struct {
	ID                         string        `json:"id"`
	UserID                     string        `json:"user_id"`
	TaskID                     *string       `json:"task_id,omitempty"`
	CategoryName               *string       `json:"category_name,omitempty"`
	StartTime                  time.Time     `json:"start_time"`
	EndTime                    *time.Time    `json:"end_time,omitempty"`
	DurationMinutes            int           `json:"duration_minutes"`
	SessionQualityRating       *int          `json:"session_quality_rating,omitempty"`
	TaskProgressBefore         *int          `json:"task_progress_before,omitempty"`
	TaskProgressAfter          *int          `json:"task_progress_after,omitempty"`
	TaskCompletedDuringSession bool          `json:"task_completed_during_session"`
	Distractions               []Distraction `json:"distractions,omitempty"`
	CreatedAt                  time.Time     `json:"created_at"`
	UpdatedAt                  time.Time     `json:"updated_at"`
}

// IsCompleted reports whether the session has ended. Only completed sessions
// participate in analytics.
func (s *FocusSession) IsCompleted() bool {
	return s.EndTime != nil
}

// IsRated reports whether the user left a quality rating when the session ended.
func (s *FocusSession) IsRated() bool {
	return s.SessionQualityRating != nil
}

// HasCategory reports whether the session's task carries a category name.
func (s *FocusSession) HasCategory() bool {
	return s.CategoryName != nil && *s.CategoryName != ""
}
