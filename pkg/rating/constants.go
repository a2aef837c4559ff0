package rating

const (
	// Beta is the system-wide rating volatility. The rating-update service must use the same value
	Beta float64 = 215

	// CSD converts a logistic distribution's standard deviation into its scale parameter
	// (https://en.wikipedia.org/wiki/Logistic_distribution)
	CSD float64 = 0.551328895

	// DeviationFloor is the smallest rating deviation accepted by the balancer
	DeviationFloor float64 = 60.25
)
