package models

import "time"

// RecommendationCategory tags a recommendation with the behavior it targets
type RecommendationCategory string

const (
	RecommendationCategoryTiming         RecommendationCategory = "timing"
	RecommendationCategoryHabit          RecommendationCategory = "habit"
	RecommendationCategorySessionLength  RecommendationCategory = "session_length"
	RecommendationCategoryEnvironment    RecommendationCategory = "environment"
	RecommendationCategoryStrategy       RecommendationCategory = "strategy"
	RecommendationCategoryQuality        RecommendationCategory = "quality"
	RecommendationCategoryGettingStarted RecommendationCategory = "getting_started"
)

// HourlyStat holds per-hour-of-day aggregates over the reporting window
type HourlyStat struct {
	Hour           int     `json:"hour"`
	SessionCount   int     `json:"session_count"`
	AverageQuality float64 `json:"average_quality"` // over rated sessions only; 0 when none rated
	AverageLength  float64 `json:"average_length"`  // minutes, over all sessions in the hour
	CompletionRate float64 `json:"completion_rate"` // percent of sessions that completed their task
}

// StreakState holds calendar-day streak facts computed over full history
type StreakState struct {
	CurrentStreak      int     `json:"current_streak"`
	LongestStreak      int     `json:"longest_streak"`
	QualityStreak      int     `json:"quality_streak"`
	ProductivityImpact float64 `json:"productivity_impact"`
}

// CorrelationSet holds Pearson coefficients between paired session metrics.
// Each value is in [-1, 1], or 0 when the window has insufficient data.
type CorrelationSet struct {
	LengthQuality      float64 `json:"length_quality"`
	DistractionQuality float64 `json:"distraction_quality"`
	ProgressQuality    float64 `json:"progress_quality"`
	CompletionQuality  float64 `json:"completion_quality"`
}

// CategoryStat holds per-task-category aggregates over the reporting window
type CategoryStat struct {
	Category       string  `json:"category"`
	SessionCount   int     `json:"session_count"`
	AverageQuality float64 `json:"average_quality"` // over rated sessions only; 0 when none rated
	TotalMinutes   int     `json:"total_minutes"`
	CompletedTasks int     `json:"completed_tasks"`
	Effectiveness  float64 `json:"effectiveness"` // completed tasks per hour of focus
}

// Recommendation is a single behavioral suggestion. Priority 1 is highest.
type Recommendation struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Category    RecommendationCategory `json:"category"`
	Priority    int                    `json:"priority"`
	Data        map[string]any         `json:"data,omitempty"`
}

// InsightsReport is the full analytics output for one user and window
type InsightsReport struct {
	HourlyPatterns         map[int]HourlyStat      `json:"hourly_patterns"`
	BestHour               int                     `json:"best_hour"`
	BestHourQuality        float64                 `json:"best_hour_quality"`
	WorstHour              int                     `json:"worst_hour"`
	WorstHourQuality       float64                 `json:"worst_hour_quality"`
	Streaks                StreakState             `json:"streaks"`
	Correlations           CorrelationSet          `json:"correlations"`
	Categories             map[string]CategoryStat `json:"categories"`
	MostFocusedCategory    string                  `json:"most_focused_category"`
	HighestQualityCategory string                  `json:"highest_quality_category"`
	Recommendations        []Recommendation        `json:"recommendations"`
	WindowStart            time.Time               `json:"window_start"`
	WindowEnd              time.Time               `json:"window_end"`
	ComputedAt             time.Time               `json:"computed_at"`
}
