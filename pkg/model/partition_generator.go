package model

import (
	"math"
	"math/big"
)

type partitionGenerator interface {
	// Builds every distinct partition of the mode's players (0 .. mode.Players()-1) into mode.Teams teams of
	// mode.Size players. Partitions are canonical and returned in lexicographic order.
	//
	// Example:
	//
	//	generator := newPartitionGenerator()
	//
	//	partitions := generator.Partitions(Mode{Teams: 2, Size: 2})
	//	// [[[0 1] [2 3]] [[0 2] [1 3]] [[0 3] [1 2]]]
	Partitions(mode Mode) []Partition
}

func newPartitionGenerator() partitionGenerator {
	return &partitionGeneratorImplementation{}
}

// SupersetSize returns the number of distinct partitions of a mode, namely the product over every team of
// C(unassigned - 1, size - 1). It saturates at math.MaxInt
func SupersetSize(mode Mode) int {
	limit := big.NewInt(math.MaxInt)
	size := big.NewInt(1)
	for team := range mode.Teams {
		unassigned := mode.Players() - team*mode.Size
		size.Mul(size, new(big.Int).Binomial(int64(unassigned-1), int64(mode.Size-1)))
		if size.Cmp(limit) > 0 {
			return math.MaxInt
		}
	}
	return int(size.Int64())
}
