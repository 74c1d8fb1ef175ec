package analytics

import (
	"github.com/focusly/backend/internal/models"
)

// HourlySummary is the output of the hourly pattern pass: per-hour aggregates
// plus the best/worst hour selection.
type HourlySummary struct {
	Stats        map[int]models.HourlyStat
	BestHour     int
	BestQuality  float64
	WorstHour    int
	WorstQuality float64
	// HasRatedHours is true when at least one hour bucket contains a rated
	// session, i.e. best/worst are computed rather than cold-start defaults.
	HasRatedHours bool
}

// hourAccumulator collects raw sums for one hour bucket before averaging
type hourAccumulator struct {
	count       int
	ratedSum    int
	ratedCount  int
	durationSum int
	completed   int
}

// ComputeHourlyPatterns buckets sessions by UTC start hour and computes
// per-hour statistics. Unrated sessions are excluded from the quality average
// rather than coerced to zero; they still count toward session count, average
// duration, and completion rate.
//
// Best/worst hours are chosen among hours with at least one rated session, so
// an hour whose sessions were all unrated never masquerades as a zero-quality
// worst hour. Ties resolve to the lower hour. With no rated data at all the
// selection falls back to the fixed placeholder hours with quality 0.
func ComputeHourlyPatterns(sessions []models.FocusSession) HourlySummary {
	acc := make(map[int]*hourAccumulator)

	for _, s := range sessions {
		hour := s.StartTime.UTC().Hour()
		a, ok := acc[hour]
		if !ok {
			a = &hourAccumulator{}
			acc[hour] = a
		}
		a.count++
		a.durationSum += s.DurationMinutes
		if s.IsRated() {
			a.ratedSum += *s.SessionQualityRating
			a.ratedCount++
		}
		if s.TaskCompletedDuringSession {
			a.completed++
		}
	}

	summary := HourlySummary{
		Stats:        make(map[int]models.HourlyStat, len(acc)),
		BestHour:     DefaultBestHour,
		WorstHour:    DefaultWorstHour,
		BestQuality:  0,
		WorstQuality: 0,
	}

	// Ascending hour order keeps the tie-break deterministic: the first hour
	// reaching the extreme quality wins.
	for hour := 0; hour < 24; hour++ {
		a, ok := acc[hour]
		if !ok {
			continue
		}

		stat := models.HourlyStat{
			Hour:           hour,
			SessionCount:   a.count,
			AverageLength:  float64(a.durationSum) / float64(a.count),
			CompletionRate: float64(a.completed) / float64(a.count) * 100,
		}
		if a.ratedCount > 0 {
			stat.AverageQuality = float64(a.ratedSum) / float64(a.ratedCount)
		}
		summary.Stats[hour] = stat

		if a.ratedCount == 0 {
			continue
		}
		if !summary.HasRatedHours {
			summary.HasRatedHours = true
			summary.BestHour = hour
			summary.BestQuality = stat.AverageQuality
			summary.WorstHour = hour
			summary.WorstQuality = stat.AverageQuality
			continue
		}
		if stat.AverageQuality > summary.BestQuality {
			summary.BestHour = hour
			summary.BestQuality = stat.AverageQuality
		}
		if stat.AverageQuality < summary.WorstQuality {
			summary.WorstHour = hour
			summary.WorstQuality = stat.AverageQuality
		}
	}

	return summary
}
