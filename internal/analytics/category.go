package analytics

import (
	"sort"

	"github.com/focusly/backend/internal/models"
)

// CategorySummary is the output of the category effectiveness pass.
type CategorySummary struct {
	Stats map[string]models.CategoryStat
	// MostFocused is the category with the highest session count,
	// HighestQuality the one with the highest average quality. Both are empty
	// when no session carries a category.
	MostFocused    string
	HighestQuality string
}

type categoryAccumulator struct {
	count      int
	ratedSum   int
	ratedCount int
	minutes    int
	completed  int
}

// ComputeCategoryStats groups sessions by task category and computes
// per-category quality and effectiveness. Sessions without a category name
// are skipped. Effectiveness is completed tasks per hour of focus, 0 when the
// category has no recorded minutes.
func ComputeCategoryStats(sessions []models.FocusSession) CategorySummary {
	acc := make(map[string]*categoryAccumulator)

	for _, s := range sessions {
		if !s.HasCategory() {
			continue
		}
		name := *s.CategoryName
		a, ok := acc[name]
		if !ok {
			a = &categoryAccumulator{}
			acc[name] = a
		}
		a.count++
		a.minutes += s.DurationMinutes
		if s.IsRated() {
			a.ratedSum += *s.SessionQualityRating
			a.ratedCount++
		}
		if s.TaskCompletedDuringSession {
			a.completed++
		}
	}

	summary := CategorySummary{Stats: make(map[string]models.CategoryStat, len(acc))}

	// Sorted name order keeps most-focused / highest-quality selection
	// deterministic on ties.
	names := make([]string, 0, len(acc))
	for name := range acc {
		names = append(names, name)
	}
	sort.Strings(names)

	var bestCount int
	var bestQuality float64
	for _, name := range names {
		a := acc[name]
		stat := models.CategoryStat{
			Category:       name,
			SessionCount:   a.count,
			TotalMinutes:   a.minutes,
			CompletedTasks: a.completed,
		}
		if a.ratedCount > 0 {
			stat.AverageQuality = float64(a.ratedSum) / float64(a.ratedCount)
		}
		if a.minutes > 0 {
			stat.Effectiveness = float64(a.completed) * 60 / float64(a.minutes)
		}
		summary.Stats[name] = stat

		if stat.SessionCount > bestCount {
			bestCount = stat.SessionCount
			summary.MostFocused = name
		}
		if summary.HighestQuality == "" || stat.AverageQuality > bestQuality {
			bestQuality = stat.AverageQuality
			summary.HighestQuality = name
		}
	}

	return summary
}
