package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The playfield is drawn with half-block
characters scaled to fit the window.

Controls:
  Left/H/A    - Move paddle left
  Right/L/D   - Move paddle right
  Enter       - Continue after a round ends
  Ctrl+S      - Save a PNG screenshot
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  brick-breaker play
  brick-breaker play --fps 30
  brick-breaker play --config ./my-game.toml --watch --log-file game.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the palette when the --config file changes")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagWatch && flagConfig == "" {
		return errors.New("--watch needs --config")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs only go to a file.
	logger, closeLog, err := openLogger("")
	if err != nil {
		return err
	}
	defer closeLog()

	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Loop.FPS

	opts := tui.Options{
		Runtime: runtime,
		Logger:  logger,
	}
	if flagWatch {
		opts.Watch = flagConfig
	}

	logger.Info("starting", "config", flagConfig, "fps", cfg.Loop.FPS)
	return tui.Run(cmd.Context(), cfg, opts)
}
