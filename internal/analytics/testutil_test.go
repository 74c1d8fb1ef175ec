package analytics

import (
	"fmt"
	"time"

	"github.com/focusly/backend/internal/models"
)

// sessionOpt mutates a session under construction
type sessionOpt func(*models.FocusSession)

// session builds a completed focus session starting at start and lasting
// dur minutes. Options layer ratings, categories, and distractions on top.
func session(start time.Time, dur int, opts ...sessionOpt) models.FocusSession {
	end := start.Add(time.Duration(dur) * time.Minute)
	s := models.FocusSession{
		ID:              fmt.Sprintf("ses-%d", start.UnixNano()),
		UserID:          "user-1",
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: dur,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func rated(quality int) sessionOpt {
	return func(s *models.FocusSession) {
		s.SessionQualityRating = &quality
	}
}

func inCategory(name string) sessionOpt {
	return func(s *models.FocusSession) {
		s.CategoryName = &name
	}
}

func taskCompleted() sessionOpt {
	return func(s *models.FocusSession) {
		s.TaskCompletedDuringSession = true
	}
}

func withProgress(before, after int) sessionOpt {
	return func(s *models.FocusSession) {
		s.TaskProgressBefore = &before
		s.TaskProgressAfter = &after
	}
}

func distracted(n int) sessionOpt {
	return func(s *models.FocusSession) {
		for i := 0; i < n; i++ {
			s.Distractions = append(s.Distractions, models.Distraction{
				ID:        fmt.Sprintf("%s-d%d", s.ID, i),
				SessionID: s.ID,
			})
		}
	}
}

func notEnded() sessionOpt {
	return func(s *models.FocusSession) {
		s.EndTime = nil
	}
}
