package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/limaJavier/teambalance/pkg/model"
	"github.com/limaJavier/teambalance/pkg/rating"
)

var validFormats = []string{"json", "yaml"}

type balanceOutput struct {
	Mode          string    `json:"gamemode" yaml:"gamemode"`
	Teams         []int     `json:"teams" yaml:"teams"`
	Probabilities []float64 `json:"probabilities" yaml:"probabilities"`
	Fairness      float64   `json:"fairness" yaml:"fairness"`
}

type supersetOutput struct {
	Mode        string  `json:"gamemode" yaml:"gamemode"`
	Constraints string  `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Partitions  int     `json:"partitions" yaml:"partitions"`
	Teams       [][]int `json:"teams,omitempty" yaml:"teams,omitempty"`
}

type balanceOptions struct {
	file           string
	out            string
	format         string
	maxPartitions  int
	deviationFloor float64
	noClamp        bool
	verbose        bool
}

type supersetOptions struct {
	mode          string
	constraints   string
	format        string
	maxPartitions int
	list          bool
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "teambalance",
		Short: "Split players into teams with equal odds of winning",
	}

	var balanceOpts balanceOptions
	balanceCmd := &cobra.Command{
		Use:          "balance",
		Short:        "Find the most balanced teams for a JSON balancing request",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalance(balanceOpts, stdout)
		},
	}
	balanceCmd.Flags().StringVarP(&balanceOpts.file, "file", "f", "", "Path to the JSON request (ratings_list, rds_list, gamemode, constraints)")
	balanceCmd.Flags().StringVarP(&balanceOpts.out, "out", "o", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	balanceCmd.Flags().StringVar(&balanceOpts.format, "format", "json", "Output format: \"json\" or \"yaml\"")
	balanceCmd.Flags().IntVar(&balanceOpts.maxPartitions, "max-partitions", model.DefaultMaxPartitions, "Refuse modes with more partitions than this (0 means no limit)")
	balanceCmd.Flags().Float64Var(&balanceOpts.deviationFloor, "deviation-floor", rating.DeviationFloor, "Smallest rating deviation; lower deviations are raised to it")
	balanceCmd.Flags().BoolVar(&balanceOpts.noClamp, "no-clamp", false, "Use ratings and deviations as given")
	balanceCmd.Flags().BoolVarP(&balanceOpts.verbose, "verbose", "v", false, "Log superset computations to the Standard Error")
	_ = balanceCmd.MarkFlagRequired("file")

	var supersetOpts supersetOptions
	supersetCmd := &cobra.Command{
		Use:          "superset",
		Short:        "Count (or list) the distinct partitions of a game mode",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuperset(supersetOpts, stdout)
		},
	}
	supersetCmd.Flags().StringVarP(&supersetOpts.mode, "mode", "m", "", "Game mode, e.g. \"4v4\" or \"3v3v3v3\"")
	supersetCmd.Flags().StringVarP(&supersetOpts.constraints, "constraints", "c", "", "Arranged-team constraints, e.g. \"3+1+1+1+1+1\"")
	supersetCmd.Flags().StringVar(&supersetOpts.format, "format", "json", "Output format: \"json\" or \"yaml\"")
	supersetCmd.Flags().IntVar(&supersetOpts.maxPartitions, "max-partitions", model.DefaultMaxPartitions, "Refuse modes with more partitions than this (0 means no limit)")
	supersetCmd.Flags().BoolVar(&supersetOpts.list, "list", false, "Also print the players of every partition")
	_ = supersetCmd.MarkFlagRequired("mode")

	rootCmd.AddCommand(balanceCmd, supersetCmd)
	return rootCmd
}

func runBalance(opts balanceOptions, stdout io.Writer) error {
	// Validate arguments
	format := strings.ToLower(opts.format)
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("%v is not a valid format", opts.format)
	} else if opts.deviationFloor <= 0 {
		return fmt.Errorf("deviation-floor must be positive: %v", opts.deviationFloor)
	}

	// Extract input
	request, err := model.RequestFromJson(opts.file)
	if err != nil {
		return fmt.Errorf("cannot parse input file: %w", err)
	}

	ratings, deviations := request.Ratings, request.Deviations
	if !opts.noClamp {
		ratings, deviations = rating.Clamp(ratings, deviations, opts.deviationFloor)
	}

	// Balance
	balancer := model.NewBalancer(opts.maxPartitions, newLogger(opts.verbose))
	game, err := balancer.Balance(ratings, deviations, request.GameMode, request.Constraints)
	if err != nil {
		return fmt.Errorf("an error occurred while balancing teams: %w", err)
	}

	return write(balanceOutput{
		Mode:          game.Mode.String(),
		Teams:         game.Labels(),
		Probabilities: game.Probabilities,
		Fairness:      game.Fairness,
	}, format, opts.out, stdout)
}

func runSuperset(opts supersetOptions, stdout io.Writer) error {
	format := strings.ToLower(opts.format)
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("%v is not a valid format", opts.format)
	}

	balancer := model.NewBalancer(opts.maxPartitions, newLogger(false))
	superset, err := balancer.Superset(opts.mode)
	if err != nil {
		return err
	}

	partitions := superset.Partitions
	if opts.constraints != "" {
		groups, err := model.ParseConstraints(opts.constraints, superset.Mode.Players())
		if err != nil {
			return err
		}
		partitions = model.FilterPartitions(partitions, groups)
	}

	output := supersetOutput{
		Mode:        superset.Mode.String(),
		Constraints: opts.constraints,
		Partitions:  len(partitions),
	}
	if opts.list {
		output.Teams = lo.Map(partitions, func(partition model.Partition, _ int) []int { return partition.Labels() })
	}
	return write(output, format, "", stdout)
}

func write(output any, format, outFile string, stdout io.Writer) error {
	var bytes []byte
	var err error
	if format == "yaml" {
		bytes, err = yaml.Marshal(output)
	} else {
		bytes, err = json.Marshal(output)
		bytes = append(bytes, '\n')
	}
	if err != nil {
		return fmt.Errorf("an error occurred while building output: %w", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		_, err = stdout.Write(bytes)
		return err
	}
	if err := os.WriteFile(outFile, bytes, 0666); err != nil {
		return fmt.Errorf("an error occurred while writing to the output file: %w", err)
	}
	return nil
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
