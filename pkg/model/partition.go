package model

import (
	"slices"

	"github.com/samber/lo"
)

// Team is a sorted list of player indices
type Team []int

// Partition is a list of disjoint teams covering every player. Teams are sorted by their first player, which makes
// the representation canonical: two partitions describe the same split if and only if they're equal
type Partition []Team

// Players returns the players of the partition team by team
func (partition Partition) Players() []int {
	return lo.Flatten(lo.Map(partition, func(team Team, _ int) []int { return team }))
}

// Labels returns, for every player, the 1-based position of its team within the partition
func (partition Partition) Labels() []int {
	labels := make([]int, len(partition.Players()))
	for i, team := range partition {
		for _, player := range team {
			labels[player] = i + 1
		}
	}
	return labels
}

func comparePartitions(a, b Partition) int {
	return slices.CompareFunc(a, b, func(teamA, teamB Team) int {
		return slices.Compare(teamA, teamB)
	})
}
