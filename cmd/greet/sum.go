package main

import (
	"fmt"
	"strconv"

	"github.com/mark3labs/greet/internal/config"
	"github.com/mark3labs/greet/internal/dataproc"
	"github.com/mark3labs/greet/internal/greeting"
	"github.com/mark3labs/greet/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var sumCmd = &cobra.Command{
	Use:   "sum [N...]",
	Short: "Sum 0..v-1 for every positive element",
	Long: `Sum, for each positive integer argument v, the series 0+1+...+(v-1).
Non-positive arguments are skipped, not subtracted. With no arguments
the total is 0. Prints the accumulated total on one line.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSum,
}

func runSum(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger.Init("greet", cfg.LogLevel)

	data := make([]int64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		data = append(data, v)
	}

	total, rep := dataproc.Process(data)

	st := greeting.StatusActive()
	if rep.Skipped > 0 {
		st = greeting.StatusPending(uint32(rep.Skipped))
	}
	log.Debug().
		Int("counted", rep.Counted).
		Int("skipped", rep.Skipped).
		Stringer("status", st).
		Msg("sum computed")

	fmt.Fprintln(cmd.OutOrStdout(), total)
	return nil
}
