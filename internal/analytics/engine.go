// Package analytics computes focus-productivity insights from a user's
// completed session history. The engine is pure: it performs no I/O, holds no
// state between calls, and recomputes every derived value from the input on
// each invocation, so identical input always yields identical output.
package analytics

import (
	"time"

	"github.com/focusly/backend/internal/models"
)

const (
	// MinRatedForCorrelation is the minimum number of rated sessions in the
	// window before any correlation is computed
	MinRatedForCorrelation = 5

	// MinSessionsForImpact is the minimum window size before the productivity
	// impact heuristic is computed
	MinSessionsForImpact = 10

	// QualityStreakWindow bounds the quality streak scan to the most recent
	// sessions
	QualityStreakWindow = 30

	// QualityStreakThreshold is the minimum rating that keeps a quality
	// streak alive
	QualityStreakThreshold = 4

	// Cold-start placeholder hours used when no hourly data exists. These are
	// product-tuned defaults for recommendation copy, not computed values.
	DefaultBestHour  = 9
	DefaultWorstHour = 15
)

// ComputeInsights builds the full insights report for one user.
//
// window holds the completed sessions inside [windowStart, windowEnd] and
// feeds the hourly, correlation, category, and recommendation passes. history
// holds the user's entire completed-session history; streaks are calendar-wide
// facts and must not be clipped to the reporting window. now anchors "today"
// for the current-streak walk; callers pass time.Now().UTC().
//
// Sessions without an end time are dropped up front, so in-progress or paused
// sessions never leak into any aggregate.
func ComputeInsights(window, history []models.FocusSession, windowStart, windowEnd, now time.Time) *models.InsightsReport {
	window = completedOnly(window)
	history = completedOnly(history)

	hourly := ComputeHourlyPatterns(window)
	streaks := ComputeStreaks(history, window, now)
	correlations := ComputeCorrelations(window)
	categories := ComputeCategoryStats(window)
	recommendations := GenerateRecommendations(window, hourly, categories)

	return &models.InsightsReport{
		HourlyPatterns:         hourly.Stats,
		BestHour:               hourly.BestHour,
		BestHourQuality:        hourly.BestQuality,
		WorstHour:              hourly.WorstHour,
		WorstHourQuality:       hourly.WorstQuality,
		Streaks:                streaks,
		Correlations:           correlations,
		Categories:             categories.Stats,
		MostFocusedCategory:    categories.MostFocused,
		HighestQualityCategory: categories.HighestQuality,
		Recommendations:        recommendations,
		WindowStart:            windowStart,
		WindowEnd:              windowEnd,
		ComputedAt:             now,
	}
}

// completedOnly filters out sessions that have not ended. It also normalizes
// malformed records: a session whose end time precedes its start time is kept
// with a duration of 0 rather than poisoning downstream averages.
func completedOnly(sessions []models.FocusSession) []models.FocusSession {
	out := make([]models.FocusSession, 0, len(sessions))
	for _, s := range sessions {
		if !s.IsCompleted() {
			continue
		}
		if s.EndTime.Before(s.StartTime) || s.DurationMinutes < 0 {
			s.DurationMinutes = 0
		}
		out = append(out, s)
	}
	return out
}
