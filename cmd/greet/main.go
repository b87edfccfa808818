package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/greet/internal/theme"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ █▀█ █▀▀ █▀▀ ▀█▀"
	logoText2 = "█▄█ █▀▄ ██▄ ██▄  █ "
)

// Version set via ldflags during build
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		log.Error().Err(err).Msg("command execution failed")
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "greet [name]",
	Short: "Render a greeting, or sum an integer sequence",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGreet,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

greet renders "<prefix>, <name>!" greetings and sums integer sequences.
Prefix and name come from greet.yml (XDG global or project-local),
GREET_* environment variables, or flags, in ascending precedence.

With no arguments and no configuration it prints "Hello, World!".`

	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(setupCmd)
}
