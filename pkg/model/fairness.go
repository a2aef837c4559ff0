package model

import (
	"math"

	"github.com/limaJavier/teambalance/pkg/rating"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
)

// Game is a scored partition of a mode
type Game struct {
	Mode          Mode
	Partition     Partition
	Probabilities []float64 // Win probability of each team, in the partition's team order
	Fairness      float64   // Max minus min win probability; 0 is a perfectly balanced game
}

// Labels returns the 1-based team number of every player
func (game Game) Labels() []int {
	return game.Partition.Labels()
}

// GameOdds returns the win probability of every team of the partition under a Bradley-Terry model: each team's
// strength is the geometric mean of its ratings scaled by the game's combined deviation, and the probabilities
// are the softmax of the strengths
func GameOdds(partition Partition, ratings, deviations []float64) []float64 {
	gameDeviation := math.Sqrt(floats.Dot(deviations, deviations) + float64(len(deviations))*rating.Beta*rating.Beta)

	strengths := lo.Map(partition, func(team Team, _ int) float64 {
		size := float64(len(team))
		teamRating := 1.0
		for _, player := range team {
			teamRating *= math.Pow(ratings[player], 1/size)
		}
		return size * teamRating / (rating.CSD * gameDeviation)
	})

	// Exponents are relative to the strongest team so none of them overflows
	strongest := floats.Max(strengths)
	weights := lo.Map(strengths, func(strength float64, _ int) float64 {
		return math.Exp(strength - strongest)
	})
	floats.Scale(1/floats.Sum(weights), weights)
	return weights
}

// Fairness returns the spread between the most and the least likely team to win
func Fairness(probabilities []float64) float64 {
	return floats.Max(probabilities) - floats.Min(probabilities)
}

func scoreGame(partition Partition, ratings, deviations []float64) Game {
	probabilities := GameOdds(partition, ratings, deviations)
	return Game{
		Partition:     partition,
		Probabilities: probabilities,
		Fairness:      Fairness(probabilities),
	}
}
