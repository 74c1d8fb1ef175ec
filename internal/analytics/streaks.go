package analytics

import (
	"sort"
	"time"

	"github.com/focusly/backend/internal/models"
)

// Coefficients of the productivity impact heuristic. A 3/5-quality,
// 25-minute session is the neutral baseline; these are product-tuned
// constants, not a regression fit, and are preserved verbatim for
// behavioral compatibility.
const (
	impactBaselineQuality  = 3.0
	impactBaselineDuration = 25.0
	impactQualityWeight    = 10.0
	impactDurationWeight   = 0.5
)

// ComputeStreaks derives calendar-day streak state. history must be the
// user's full completed-session history: streaks are not window-bound facts.
// window feeds only the productivity impact heuristic, which is a
// reporting-window measure. now anchors "today" for the current-streak walk;
// day boundaries are UTC throughout.
func ComputeStreaks(history, window []models.FocusSession, now time.Time) models.StreakState {
	days := sessionDays(history)

	return models.StreakState{
		CurrentStreak:      currentStreak(days, now),
		LongestStreak:      longestStreak(days),
		QualityStreak:      qualityStreak(history),
		ProductivityImpact: productivityImpact(window),
	}
}

// sessionDays returns the distinct UTC calendar dates with at least one
// completed session, normalized to midnight.
func sessionDays(sessions []models.FocusSession) map[time.Time]bool {
	days := make(map[time.Time]bool, len(sessions))
	for _, s := range sessions {
		days[dayOf(s.StartTime)] = true
	}
	return days
}

func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// currentStreak walks backward from today counting consecutive days with a
// session. A day without a session breaks the walk immediately, so the streak
// is 0 whenever today itself is empty.
func currentStreak(days map[time.Time]bool, now time.Time) int {
	streak := 0
	for day := dayOf(now); days[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// longestStreak scans the distinct session dates in ascending order and
// tracks the longest run of consecutive calendar days.
func longestStreak(days map[time.Time]bool) int {
	if len(days) == 0 {
		return 0
	}

	dates := make([]time.Time, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// qualityStreak counts the most recent consecutive sessions rated at or above
// the quality threshold, scanning newest-first over at most the last
// QualityStreakWindow sessions. An unrated session breaks the streak the same
// as a low rating.
func qualityStreak(history []models.FocusSession) int {
	recent := make([]models.FocusSession, len(history))
	copy(recent, history)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].StartTime.Before(recent[j].StartTime)
	})
	if len(recent) > QualityStreakWindow {
		recent = recent[len(recent)-QualityStreakWindow:]
	}

	streak := 0
	for i := len(recent) - 1; i >= 0; i-- {
		s := recent[i]
		if !s.IsRated() || *s.SessionQualityRating < QualityStreakThreshold {
			break
		}
		streak++
	}
	return streak
}

// productivityImpact is a linear heuristic over the reporting window, only
// computed once the window holds enough sessions to be meaningful.
func productivityImpact(window []models.FocusSession) float64 {
	if len(window) < MinSessionsForImpact {
		return 0
	}

	var durationSum int
	var ratedSum, ratedCount int
	for _, s := range window {
		durationSum += s.DurationMinutes
		if s.IsRated() {
			ratedSum += *s.SessionQualityRating
			ratedCount++
		}
	}

	avgQuality := 0.0
	if ratedCount > 0 {
		avgQuality = float64(ratedSum) / float64(ratedCount)
	}
	avgDuration := float64(durationSum) / float64(len(window))

	return (avgQuality-impactBaselineQuality)*impactQualityWeight +
		(avgDuration-impactBaselineDuration)*impactDurationWeight
}
