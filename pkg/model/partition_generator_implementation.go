package model

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat/combin"
)

type partitionGeneratorImplementation struct{}

func (generator *partitionGeneratorImplementation) Partitions(mode Mode) []Partition {
	players := lo.Range(mode.Players())

	// Start from a single empty partial partition and add one team per round
	frontier := []Partition{{}}
	for round := range mode.Teams {
		// Every new team contains the lowest unassigned player (the anchor) plus size-1 of the remaining ones.
		// Anchoring prevents the same set of teams from being built in a different order
		unassigned := mode.Players() - round*mode.Size
		combinations := combin.Combinations(unassigned-1, mode.Size-1)

		next := make([]Partition, 0, len(frontier)*len(combinations))
		for _, partial := range frontier {
			remaining := lo.Without(players, partial.Players()...)
			anchor, rest := remaining[0], remaining[1:]

			for _, combination := range combinations {
				next = append(next, generator.extend(partial, anchor, rest, combination))
			}
		}
		frontier = next
	}

	return frontier
}

func (generator *partitionGeneratorImplementation) extend(partial Partition, anchor int, rest []int, combination []int) Partition {
	team := make(Team, 0, len(combination)+1)
	team = append(team, anchor)
	for _, i := range combination {
		team = append(team, rest[i])
	}

	extended := make(Partition, len(partial), len(partial)+1)
	copy(extended, partial)
	return append(extended, team)
}
