package model

import (
	"math"
	"math/rand"
	"testing"

	"github.com/limaJavier/teambalance/pkg/rating"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestGameOddsMatchesDirectFormula(t *testing.T) {
	//** Arrange
	partition := Partition{{0, 1, 6, 7}, {2, 3, 4, 5}}
	ratings := []float64{1900, 1500, 1400, 1400, 1400, 1400, 1300, 1100}
	deviations := lo.Times(8, func(_ int) float64 { return 90 })

	gameDeviation := math.Sqrt(8*90*90 + 8*rating.Beta*rating.Beta)
	ratingA := math.Pow(1900*1500*1300*1100, 0.25)
	ratingB := 1400.0
	strengthA := math.Exp(4 * ratingA / (rating.CSD * gameDeviation))
	strengthB := math.Exp(4 * ratingB / (rating.CSD * gameDeviation))

	//** Act
	probabilities := GameOdds(partition, ratings, deviations)

	//** Assert
	assert.InDelta(t, strengthA/(strengthA+strengthB), probabilities[0], 1e-12)
	assert.InDelta(t, strengthB/(strengthA+strengthB), probabilities[1], 1e-12)
	assert.Greater(t, probabilities[0], probabilities[1])
}

func TestGameOddsAreNormalized(t *testing.T) {
	partitions := newPartitionGenerator().Partitions(Mode{Teams: 4, Size: 3})

	for range 10 {
		//** Arrange
		ratings := lo.Times(12, func(_ int) float64 { return math.Max(0, math.Round(rand.NormFloat64()*300+1500)) })
		deviations := lo.Times(12, func(_ int) float64 { return 60.25 + rand.Float64()*200 })
		partition := partitions[rand.Intn(len(partitions))]

		//** Act
		probabilities := GameOdds(partition, ratings, deviations)
		fairness := Fairness(probabilities)

		//** Assert
		assert.Len(t, probabilities, 4)
		assert.InDelta(t, 1, lo.Sum(probabilities), 1e-9)
		assert.GreaterOrEqual(t, fairness, 0.0)
		assert.Less(t, fairness, 1.0)
	}
}

func TestGameOddsBalancedGame(t *testing.T) {
	partition := Partition{{0, 3}, {1, 2}}
	ratings := []float64{1200, 1600, 1200, 1600}
	deviations := []float64{80, 80, 80, 80}

	probabilities := GameOdds(partition, ratings, deviations)

	assert.InDelta(t, 0.5, probabilities[0], 1e-12)
	assert.InDelta(t, 0, Fairness(probabilities), 1e-12)
}

func TestGameOddsZeroRating(t *testing.T) {
	partition := Partition{{0, 1}, {2, 3}}
	ratings := []float64{0, 1500, 1500, 1500}
	deviations := []float64{90, 90, 90, 90}

	probabilities := GameOdds(partition, ratings, deviations)

	// A single zero rating zeroes the geometric mean, the team still takes part in the softmax
	assert.False(t, math.IsNaN(probabilities[0]))
	assert.Greater(t, probabilities[0], 0.0)
	assert.Less(t, probabilities[0], probabilities[1])
	assert.InDelta(t, 1, probabilities[0]+probabilities[1], 1e-12)
}

func TestGameOddsLargeRatings(t *testing.T) {
	scenarios := []struct {
		partition Partition
		ratings   []float64
	}{
		{Partition{{0}, {1}}, []float64{1e7, 1e7 + 1}},
		{Partition{{0}, {1}, {2}}, []float64{1e7, 1e7 + 1, 1e7 - 3}},
		{Partition{{0, 1}, {2, 3}}, []float64{5e6, 2e7, 1e7, 1e7 + 7}},
	}

	for _, scenario := range scenarios {
		deviations := lo.Times(len(scenario.ratings), func(_ int) float64 { return 60.25 })

		probabilities := GameOdds(scenario.partition, scenario.ratings, deviations)

		assert.False(t, lo.SomeBy(probabilities, math.IsNaN))
		assert.InDelta(t, 1, lo.Sum(probabilities), 1e-12, "%v", scenario.ratings)
		assert.GreaterOrEqual(t, floats.Min(probabilities), 0.0)
	}
}
