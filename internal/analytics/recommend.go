package analytics

import (
	"fmt"
	"sort"

	"github.com/focusly/backend/internal/models"
)

// Thresholds for the recommendation rules. Durations are minutes, qualities
// on the 1-5 rating scale.
const (
	streakTargetDays    = 7
	shortSessionMinutes = 25.0
	longSessionMinutes  = 60.0
	extendQualityFloor  = 3.5
	lowQualityCeiling   = 3.0
	distractionLimit    = 3.0
)

// windowAggregates holds the window-level averages shared by the rules, so
// every recommendation embeds the same numbers the other aggregators saw.
type windowAggregates struct {
	sessionCount     int
	distinctDays     int
	avgDuration      float64
	avgQuality       float64 // over rated sessions only
	ratedCount       int
	avgDistractions  float64
	ratedCategorized bool
}

func aggregateWindow(sessions []models.FocusSession) windowAggregates {
	agg := windowAggregates{sessionCount: len(sessions)}
	if len(sessions) == 0 {
		return agg
	}

	days := sessionDays(sessions)
	agg.distinctDays = len(days)

	var durationSum, ratedSum, distractionSum int
	for _, s := range sessions {
		durationSum += s.DurationMinutes
		distractionSum += len(s.Distractions)
		if s.IsRated() {
			ratedSum += *s.SessionQualityRating
			agg.ratedCount++
			if s.HasCategory() {
				agg.ratedCategorized = true
			}
		}
	}

	agg.avgDuration = float64(durationSum) / float64(len(sessions))
	agg.avgDistractions = float64(distractionSum) / float64(len(sessions))
	if agg.ratedCount > 0 {
		agg.avgQuality = float64(ratedSum) / float64(agg.ratedCount)
	}
	return agg
}

// GenerateRecommendations evaluates every rule independently against the
// window aggregates and returns the matches sorted ascending by priority,
// stable with respect to generation order. An empty window yields the single
// getting-started recommendation instead.
//
// Recommendation IDs are stable rule slugs rather than random identifiers, so
// repeated computation over the same input is byte-identical.
func GenerateRecommendations(sessions []models.FocusSession, hourly HourlySummary, categories CategorySummary) []models.Recommendation {
	if len(sessions) == 0 {
		return []models.Recommendation{{
			ID:          "reco-getting-started",
			Title:       "Start Your Focus Journey",
			Description: "Complete your first focus session to begin building productivity insights.",
			Category:    models.RecommendationCategoryGettingStarted,
			Priority:    1,
		}}
	}

	agg := aggregateWindow(sessions)
	recos := make([]models.Recommendation, 0, 7)

	if hourly.HasRatedHours {
		recos = append(recos, models.Recommendation{
			ID:    "reco-best-time",
			Title: "Schedule Important Work at Your Peak Time",
			Description: fmt.Sprintf("Your focus quality peaks around %02d:00 (%.1f/5). Schedule demanding tasks in that window.",
				hourly.BestHour, hourly.BestQuality),
			Category: models.RecommendationCategoryTiming,
			Priority: 1,
			Data: map[string]any{
				"best_hour":    hourly.BestHour,
				"best_quality": hourly.BestQuality,
			},
		})
	}

	if agg.distinctDays < streakTargetDays {
		recos = append(recos, models.Recommendation{
			ID:    "reco-build-streak",
			Title: "Build a Daily Focus Habit",
			Description: fmt.Sprintf("You focused on %d of the last %d days. Aim for at least one session every day.",
				agg.distinctDays, streakTargetDays),
			Category: models.RecommendationCategoryHabit,
			Priority: 2,
			Data: map[string]any{
				"current_days": agg.distinctDays,
				"target_days":  streakTargetDays,
			},
		})
	}

	if agg.avgDuration < shortSessionMinutes && agg.avgQuality >= extendQualityFloor {
		recos = append(recos, models.Recommendation{
			ID:    "reco-extend-sessions",
			Title: "Try Longer Sessions",
			Description: fmt.Sprintf("Your quality stays high (%.1f/5) but sessions average only %.0f minutes. Longer blocks could deepen your focus.",
				agg.avgQuality, agg.avgDuration),
			Category: models.RecommendationCategorySessionLength,
			Priority: 2,
			Data: map[string]any{
				"avg_duration": agg.avgDuration,
				"avg_quality":  agg.avgQuality,
			},
		})
	}

	if agg.avgDuration > longSessionMinutes && agg.avgQuality < lowQualityCeiling {
		recos = append(recos, models.Recommendation{
			ID:    "reco-shorter-sessions",
			Title: "Try Shorter Sessions",
			Description: fmt.Sprintf("Long sessions (%.0f minutes on average) seem to drain your quality (%.1f/5). Breaks between shorter blocks may help.",
				agg.avgDuration, agg.avgQuality),
			Category: models.RecommendationCategorySessionLength,
			Priority: 2,
			Data: map[string]any{
				"avg_duration": agg.avgDuration,
				"avg_quality":  agg.avgQuality,
			},
		})
	}

	if agg.avgDistractions > distractionLimit {
		recos = append(recos, models.Recommendation{
			ID:    "reco-reduce-distractions",
			Title: "Reduce Distractions",
			Description: fmt.Sprintf("You log %.1f distractions per session on average. Silence notifications or change environment before starting.",
				agg.avgDistractions),
			Category: models.RecommendationCategoryEnvironment,
			Priority: 1,
			Data: map[string]any{
				"avg_distractions": agg.avgDistractions,
			},
		})
	}

	if agg.ratedCategorized && categories.HighestQuality != "" {
		best := categories.Stats[categories.HighestQuality]
		recos = append(recos, models.Recommendation{
			ID:    "reco-focus-category",
			Title: "Leverage Your Strengths",
			Description: fmt.Sprintf("You do your best work on %s tasks (%.1f/5). Tackle hard problems in that category.",
				best.Category, best.AverageQuality),
			Category: models.RecommendationCategoryStrategy,
			Priority: 3,
			Data: map[string]any{
				"category":    best.Category,
				"avg_quality": best.AverageQuality,
			},
		})
	}

	if agg.ratedCount > 0 && agg.avgQuality < lowQualityCeiling {
		recos = append(recos, models.Recommendation{
			ID:    "reco-improve-quality",
			Title: "Improve Session Quality",
			Description: fmt.Sprintf("Your average session quality is %.1f/5. Review what disrupts your focus and experiment with one change at a time.",
				agg.avgQuality),
			Category: models.RecommendationCategoryQuality,
			Priority: 1,
			Data: map[string]any{
				"avg_quality": agg.avgQuality,
			},
		})
	}

	sort.SliceStable(recos, func(i, j int) bool {
		return recos[i].Priority < recos[j].Priority
	})
	return recos
}
