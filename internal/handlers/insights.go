package handlers

import (
	"net/http"
	"time"

	"github.com/focusly/backend/internal/apierror"
	"github.com/focusly/backend/internal/logger"
	"github.com/focusly/backend/internal/models"
	"github.com/focusly/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// InsightsHandler handles insights-related HTTP requests
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetInsights returns the full insights report for the authenticated user
// GET /api/v1/insights?start=RFC3339&end=RFC3339
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	report, ok := h.computeReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetHourlyPatterns returns only the time-of-day portion of the report
// GET /api/v1/insights/hourly
func (h *InsightsHandler) GetHourlyPatterns(c *gin.Context) {
	report, ok := h.computeReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hourly_patterns":    report.HourlyPatterns,
		"best_hour":          report.BestHour,
		"best_hour_quality":  report.BestHourQuality,
		"worst_hour":         report.WorstHour,
		"worst_hour_quality": report.WorstHourQuality,
	})
}

// GetStreaks returns only the streak portion of the report
// GET /api/v1/insights/streaks
func (h *InsightsHandler) GetStreaks(c *gin.Context) {
	report, ok := h.computeReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"streaks": report.Streaks,
	})
}

// GetRecommendations returns only the recommendation list
// GET /api/v1/insights/recommendations
func (h *InsightsHandler) GetRecommendations(c *gin.Context) {
	report, ok := h.computeReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recommendations": report.Recommendations,
	})
}

// computeReport parses the window bounds, runs the analytics service, and
// writes the error response itself on failure.
func (h *InsightsHandler) computeReport(c *gin.Context) (*models.InsightsReport, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return nil, false
	}

	start, ok := parseTimeParam(c, "start")
	if !ok {
		return nil, false
	}
	end, ok := parseTimeParam(c, "end")
	if !ok {
		return nil, false
	}

	log := logger.Ctx(c.Request.Context())

	report, err := h.insightsService.GetInsights(c.Request.Context(), userID.(string), start, end)
	if err != nil {
		log.Error("failed to compute insights",
			logger.Err(err),
			logger.String("user_id", userID.(string)),
		)
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return nil, false
	}

	return report, true
}

// parseTimeParam reads an optional RFC 3339 query parameter. A missing
// parameter yields the zero time, which the service resolves to its default
// window.
func parseTimeParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: name, Message: "must be an RFC 3339 timestamp", Code: "invalid_timestamp"},
		}))
		return time.Time{}, false
	}
	return t.UTC(), true
}
