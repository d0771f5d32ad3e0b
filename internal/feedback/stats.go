package feedback

import (
	"math"

	"github.com/feedback-collector/feedback-collector/internal/db/models"
)

// Stats aggregates a set of entries.
type Stats struct {
	Total         int
	AverageRating float64
	// Histogram maps every rating from 1 to 5 to its number of entries.
	Histogram map[int]int
}

// ComputeStats counts entries, averages their rating (two decimals, half away
// from zero) and builds the rating histogram. An empty set averages to 0.
func ComputeStats(entries []models.Feedback) Stats {
	stats := Stats{
		Total:     len(entries),
		Histogram: make(map[int]int, MaxRating),
	}

	for r := MinRating; r <= MaxRating; r++ {
		stats.Histogram[r] = 0
	}

	if stats.Total == 0 {
		return stats
	}

	sum := 0
	for _, e := range entries {
		sum += e.Rating
		stats.Histogram[e.Rating]++
	}

	stats.AverageRating = round2(float64(sum) / float64(stats.Total))

	return stats
}

// Ratings lists the histogram keys in ascending order for templates.
func (s Stats) Ratings() []int {
	out := make([]int, 0, MaxRating)
	for r := MinRating; r <= MaxRating; r++ {
		out = append(out, r)
	}

	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100 //nolint:mnd
}
