package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/limaJavier/teambalance/pkg/model"
	"github.com/limaJavier/teambalance/pkg/rating"
)

type Scenario struct {
	Mode        string
	Constraints string
}

type BenchmarkResult struct {
	Scenario   Scenario
	Partitions int   // Feasible partitions after applying the constraints
	Generation int64 // Superset computation (ms)
	Solve      int64 // Average solve time once the superset is cached (µs)
	Fairness   float64
}

func main() {
	outFilePtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	runsPtr := flag.Int("runs", 10, "Number of solves per scenario")
	seedPtr := flag.Int64("seed", 1, "Seed of the random ratings")
	flag.Parse()

	if *runsPtr <= 0 {
		log.Fatalf("runs must be positive: %v", *runsPtr)
	}

	random := rand.New(rand.NewSource(*seedPtr))
	results := make([]BenchmarkResult, 0)
	for _, scenario := range getScenarios() {
		fmt.Printf("Benchmarking mode \"%v\" with constraints \"%v\"\n", scenario.Mode, scenario.Constraints)
		results = append(results, measure(scenario, *runsPtr, random))
	}

	file, err := os.Create(*outFilePtr)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := toCsv(results, file); err != nil {
		log.Panicf("cannot write CSV file: %v", err)
	}
}

func getScenarios() []Scenario {
	return []Scenario{
		{Mode: "1v1", Constraints: ""},
		{Mode: "2v2", Constraints: ""},
		{Mode: "3v3", Constraints: ""},
		{Mode: "4v4", Constraints: ""},
		{Mode: "4v4", Constraints: "3+1+1+1+1+1"},
		{Mode: "5v5", Constraints: ""},
		{Mode: "2v2v2", Constraints: ""},
		{Mode: "2v2v2v2", Constraints: ""},
		{Mode: "3v3v3", Constraints: ""},
		{Mode: "3v3v3v3", Constraints: ""},
		{Mode: "3v3v3v3", Constraints: "2+2+2+1+1+1+1+1+1"},
		{Mode: "6v6", Constraints: ""},
	}
}

func measure(scenario Scenario, runs int, random *rand.Rand) BenchmarkResult {
	// Every scenario gets its own balancer so that generation is measured from an empty cache
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	balancer := model.NewBalancer(model.DefaultMaxPartitions, logger)

	start := time.Now()
	superset, err := balancer.Superset(scenario.Mode)
	if err != nil {
		log.Fatalf("an error occurred while generating the superset of \"%v\": %v", scenario.Mode, err)
	}
	generation := time.Since(start).Milliseconds()

	groups, err := model.ParseConstraints(scenario.Constraints, superset.Mode.Players())
	if err != nil {
		log.Fatalf("invalid constraints \"%v\": %v", scenario.Constraints, err)
	}

	var elapsed time.Duration
	var game model.Game
	for range runs {
		ratings := lo.Times(superset.Mode.Players(), func(_ int) float64 {
			return math.Max(0, math.Round(random.NormFloat64()*300+1500))
		})
		deviations := lo.Times(superset.Mode.Players(), func(_ int) float64 { return rating.DeviationFloor + random.Float64()*100 })

		start := time.Now()
		game, err = balancer.Balance(ratings, deviations, scenario.Mode, scenario.Constraints)
		elapsed += time.Since(start)
		if err != nil {
			log.Fatalf("an error occurred while balancing \"%v\": %v", scenario.Mode, err)
		}
	}

	return BenchmarkResult{
		Scenario:   scenario,
		Partitions: len(model.FilterPartitions(superset.Partitions, groups)),
		Generation: generation,
		Solve:      elapsed.Microseconds() / int64(runs),
		Fairness:   game.Fairness,
	}
}

func toCsv(results []BenchmarkResult, out io.Writer) error {
	writer := csv.NewWriter(out)

	header := []string{"Mode", "Constraints", "Partitions", "Generation(ms)", "Solve(µs)", "Last Fairness"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.Scenario.Mode,
			result.Scenario.Constraints,
			fmt.Sprintf("%d", result.Partitions),
			fmt.Sprintf("%d", result.Generation),
			fmt.Sprintf("%d", result.Solve),
			fmt.Sprintf("%.6f", result.Fairness),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
