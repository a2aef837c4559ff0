package model

import (
	"fmt"

	"github.com/samber/lo"
)

type exhaustiveBalancer struct {
	cache *SupersetCache
}

func (balancer *exhaustiveBalancer) Balance(ratings, deviations []float64, descriptor, constraints string) (Game, error) {
	//** Validate input
	mode, err := ParseMode(descriptor)
	if err != nil {
		return Game{}, err
	}

	groups, err := ParseConstraints(constraints, mode.Players())
	if err != nil {
		return Game{}, err
	}

	if len(ratings) != mode.Players() || len(deviations) != mode.Players() {
		return Game{}, fmt.Errorf("%w: %v needs %v players, got %v ratings and %v deviations", ErrDimensionMismatch, mode, mode.Players(), len(ratings), len(deviations))
	}

	// Fail before enumerating if a group cannot fit in any team
	if oversized, ok := lo.Find(groups, func(group Team) bool { return len(group) > mode.Size }); ok {
		return Game{}, fmt.Errorf("%w: arranged group of %v players does not fit in teams of %v", ErrNoFeasiblePartition, len(oversized), mode.Size)
	}

	//** Enumerate feasible partitions
	superset, err := balancer.cache.Get(mode)
	if err != nil {
		return Game{}, err
	}

	partitions := FilterPartitions(superset.Partitions, groups)
	if len(partitions) == 0 {
		return Game{}, fmt.Errorf("%w: constraints \"%v\" for %v", ErrNoFeasiblePartition, constraints, mode)
	}

	//** Select the most balanced partition
	// Partitions are in lexicographic order and only a strictly smaller score replaces the best one, so ties
	// always resolve to the lexicographically smallest partition
	best := scoreGame(partitions[0], ratings, deviations)
	for _, partition := range partitions[1:] {
		if game := scoreGame(partition, ratings, deviations); game.Fairness < best.Fairness {
			best = game
		}
	}

	best.Mode = mode
	return best, nil
}

func (balancer *exhaustiveBalancer) FindBestGame(ratings, deviations []float64, descriptor, constraints string) ([]int, error) {
	game, err := balancer.Balance(ratings, deviations, descriptor, constraints)
	if err != nil {
		return nil, err
	}
	return game.Labels(), nil
}

func (balancer *exhaustiveBalancer) Superset(descriptor string) (*Superset, error) {
	mode, err := ParseMode(descriptor)
	if err != nil {
		return nil, err
	}
	return balancer.cache.Get(mode)
}

func (balancer *exhaustiveBalancer) CachedModes() []string {
	return balancer.cache.Modes()
}
