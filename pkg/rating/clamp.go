package rating

import "github.com/samber/lo"

// Clamp returns copies of ratings and deviations where negative ratings are raised to 0 and deviations are
// raised to floor. The input slices are never modified
func Clamp(ratings, deviations []float64, floor float64) (clampedRatings []float64, clampedDeviations []float64) {
	clampedRatings = lo.Map(ratings, func(rating float64, _ int) float64 {
		return max(rating, 0)
	})
	clampedDeviations = lo.Map(deviations, func(deviation float64, _ int) float64 {
		return max(deviation, floor)
	})
	return clampedRatings, clampedDeviations
}
