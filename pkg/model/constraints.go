package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseConstraints turns a descriptor like "3+1+1+1+1+1" into arranged groups of contiguous players, starting at
// player 0. The sizes must add up to the number of players. An empty descriptor means that every player is on its own
func ParseConstraints(descriptor string, players int) ([]Team, error) {
	descriptor = strings.TrimSpace(descriptor)
	if descriptor == "" {
		return lo.Map(lo.Range(players), func(player int, _ int) Team { return Team{player} }), nil
	}

	groups := make([]Team, 0)
	next := 0
	for _, field := range strings.Split(descriptor, "+") {
		size, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("%w: \"%v\" is not a positive group size in \"%v\"", ErrInvalidConstraintSpec, field, descriptor)
		}
		groups = append(groups, lo.RangeFrom(next, size))
		next += size
	}

	if next != players {
		return nil, fmt.Errorf("%w: group sizes add up to %v players but the game has %v", ErrInvalidConstraintSpec, next, players)
	}
	return groups, nil
}

// FilterPartitions keeps the partitions where every arranged group is contained in a single team. The order of
// the partitions is preserved
func FilterPartitions(partitions []Partition, groups []Team) []Partition {
	// Groups of one player are always satisfied
	groups = lo.Filter(groups, func(group Team, _ int) bool { return len(group) > 1 })
	if len(groups) == 0 {
		return partitions
	}

	return lo.Filter(partitions, func(partition Partition, _ int) bool {
		labels := partition.Labels()
		return lo.EveryBy(groups, func(group Team) bool {
			return lo.EveryBy(group, func(player int) bool {
				return labels[player] == labels[group[0]]
			})
		})
	})
}
