package model

import "github.com/sirupsen/logrus"

// DefaultMaxPartitions bounds the size of the supersets a balancer will enumerate
const DefaultMaxPartitions = 5_000_000

type Balancer interface {
	// Returns the most balanced game for the given ratings and deviations (one per player), game mode
	// (e.g. "4v4") and arranged-team constraints (e.g. "2+1+1+1+1+1+1")
	Balance(
		ratings []float64,
		deviations []float64,
		mode string,
		constraints string,
	) (Game, error)

	// Same as Balance, but only returns the 1-based team number of every player
	FindBestGame(
		ratings []float64,
		deviations []float64,
		mode string,
		constraints string,
	) ([]int, error)

	// Returns the partition superset of a mode, computing it if needed
	Superset(mode string) (*Superset, error)

	// Returns the canonical descriptors of the modes whose superset is already computed
	CachedModes() []string
}

func NewBalancer(maxPartitions int, logger logrus.FieldLogger) Balancer {
	return &exhaustiveBalancer{
		cache: NewSupersetCache(maxPartitions, logger),
	}
}
