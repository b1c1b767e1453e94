// brick-breaker is a Breakout-style game drawn through a small triangle
// rendering contract.
//
// Usage:
//
//	brick-breaker play        - Play in the terminal
//	brick-breaker trace       - Run headless for a number of ticks
//	brick-breaker renderers   - List render drivers
//	brick-breaker config      - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file, YAML or TOML (default: search order)
//	--fps <rate>        - Override the configured frame rate
//	--log-file <path>   - Write logs to a file ("-" for stderr)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/logging"

	// Import drivers to register them
	_ "github.com/vovakirdan/brick-breaker/internal/render/raster"
	_ "github.com/vovakirdan/brick-breaker/internal/render/record"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brick-breaker",
	Short: "Brick breaker - bounce a ball, clear the wall",
	Long: `Brick breaker is a Breakout-style game. A paddle at the bottom of a
650x650 playfield keeps a ball in play while it knocks out a grid of bricks.

Available commands:
  play       - Play in the terminal
  trace      - Run headless and report the final state
  renderers  - Show all render drivers
  config     - Print the default configuration

Examples:
  brick-breaker play
  brick-breaker play --config ./my-game.yaml --watch
  brick-breaker trace --ticks 2000 --input LLRR --renderer raster --png out.png
  brick-breaker config > configs/brick-breaker.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log destination ("-" = stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(renderersCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}
	return cfg, nil
}

// openLogger opens the logger for a command. fallback is used when
// --log-file is not set.
func openLogger(fallback string) (*log.Logger, func() error, error) {
	path := flagLogFile
	if path == "" {
		path = fallback
	}
	return logging.Open(path, logging.Options{
		Level:  flagLogLevel,
		Prefix: "brick-breaker",
	})
}
