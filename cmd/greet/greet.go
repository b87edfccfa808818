package main

import (
	"fmt"

	"github.com/mark3labs/greet/internal/config"
	"github.com/mark3labs/greet/internal/greeting"
	"github.com/mark3labs/greet/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var greetFlags struct {
	prefix string
}

func init() {
	rootCmd.Flags().StringVarP(&greetFlags.prefix, "prefix", "p", "", "Greeting prefix (overrides config)")
}

func runGreet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger.Init("greet", cfg.LogLevel)

	prefix := cfg.Prefix
	if greetFlags.prefix != "" {
		prefix = greetFlags.prefix
	}
	name := cfg.Name
	if len(args) > 0 {
		name = args[0]
	}

	g := greeting.New(prefix)
	line := g.Greet(name)
	log.Debug().Str("prefix", prefix).Str("name", name).Msg("greeting rendered")

	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
