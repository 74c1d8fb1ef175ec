package service

import (
	"context"
	"time"

	"github.com/focusly/backend/internal/models"
)

// InsightsService defines the interface for focus productivity analytics
type InsightsService interface {
	// GetInsights computes the full insights report for a user. Zero-valued
	// window bounds fall back to the default reporting window.
	GetInsights(ctx context.Context, userID string, windowStart, windowEnd time.Time) (*models.InsightsReport, error)
}
