package analytics

import (
	"math"

	"github.com/focusly/backend/internal/models"
)

// ComputeCorrelations computes Pearson correlation coefficients between
// paired session metrics, over rated sessions only. Fewer than
// MinRatedForCorrelation rated sessions in the window leaves every
// coefficient at its zero default.
//
// The progress pair is restricted further to sessions carrying both progress
// snapshots; when none qualify that coefficient stays 0 rather than being
// computed over an empty set.
func ComputeCorrelations(sessions []models.FocusSession) models.CorrelationSet {
	rated := make([]models.FocusSession, 0, len(sessions))
	for _, s := range sessions {
		if s.IsRated() {
			rated = append(rated, s)
		}
	}

	var set models.CorrelationSet
	if len(rated) < MinRatedForCorrelation {
		return set
	}

	lengths := make([]float64, len(rated))
	distractions := make([]float64, len(rated))
	completions := make([]float64, len(rated))
	qualities := make([]float64, len(rated))
	var progressDeltas, progressQualities []float64

	for i, s := range rated {
		q := float64(*s.SessionQualityRating)
		qualities[i] = q
		lengths[i] = float64(s.DurationMinutes)
		distractions[i] = float64(len(s.Distractions))
		if s.TaskCompletedDuringSession {
			completions[i] = 1
		}
		if s.TaskProgressBefore != nil && s.TaskProgressAfter != nil {
			progressDeltas = append(progressDeltas, float64(*s.TaskProgressAfter-*s.TaskProgressBefore))
			progressQualities = append(progressQualities, q)
		}
	}

	set.LengthQuality = pearson(lengths, qualities)
	set.DistractionQuality = pearson(distractions, qualities)
	set.CompletionQuality = pearson(completions, qualities)
	if len(progressDeltas) > 0 {
		set.ProgressQuality = pearson(progressDeltas, progressQualities)
	}

	return set
}

// pearson computes the Pearson correlation coefficient between two
// equal-length sample vectors. It returns 0 for fewer than two samples or
// when either series has no variance, never NaN.
func pearson(x, y []float64) float64 {
	n := len(x)
	if n != len(y) || n < 2 {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var numerator, denomX, denomY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		numerator += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	if denomX <= 0 || denomY <= 0 {
		return 0
	}

	return numerator / (math.Sqrt(denomX) * math.Sqrt(denomY))
}
