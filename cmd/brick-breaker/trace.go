package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/game"
	"github.com/vovakirdan/brick-breaker/internal/registry"
	"github.com/vovakirdan/brick-breaker/internal/render"
	"github.com/vovakirdan/brick-breaker/internal/render/raster"
	"github.com/vovakirdan/brick-breaker/internal/render/record"
)

var (
	flagTicks    int
	flagInput    string
	flagRenderer string
	flagPNG      string
	flagScale    int
	flagEvery    int
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run headless and report the final state",
	Long: `Runs the game without a display for a fixed number of ticks, feeding
one scripted command per tick. Round-over prompts are acknowledged
automatically. Prints the final state and its hash; equal inputs always give
equal hashes.

Input script:
  L   - move left
  R   - move right
  .   - no input (any other character too)
The script repeats until the tick count is reached.

Examples:
  brick-breaker trace --ticks 600
  brick-breaker trace --ticks 5000 --input LLLL....RRRR --every 1000
  brick-breaker trace --renderer raster --png frame.png --scale 2`,
	Args: cobra.NoArgs,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	traceCmd.Flags().StringVar(&flagInput, "input", "", "Command script, one character per tick")
	traceCmd.Flags().StringVar(&flagRenderer, "renderer", "record", "Render driver (see 'renderers')")
	traceCmd.Flags().StringVar(&flagPNG, "png", "", "Write the final frame to a PNG file (raster only)")
	traceCmd.Flags().IntVar(&flagScale, "scale", 1, "PNG scale factor")
	traceCmd.Flags().IntVar(&flagEvery, "every", 0, "Also print the state every N ticks")
}

func runTrace(cmd *cobra.Command, _ []string) error {
	if flagTicks < 0 {
		return errors.New("--ticks must not be negative")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("-")
	if err != nil {
		return err
	}
	defer closeLog()

	if !registry.Exists(flagRenderer) {
		return fmt.Errorf("unknown renderer %q, run 'brick-breaker renderers' to see them", flagRenderer)
	}
	backend, err := registry.Create(flagRenderer, int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	if err != nil {
		return err
	}
	rb, isRaster := backend.(*raster.Backend)
	if flagPNG != "" && !isRaster {
		return fmt.Errorf("--png needs the raster renderer, not %q", flagRenderer)
	}

	confirm := &game.AutoConfirmer{Logger: logger}
	loop, err := game.NewLoop(cfg, backend,
		game.WithConfirmer(confirm),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer loop.Close()

	out := cmd.OutOrStdout()
	script := game.ParseCommands(flagInput)
	ctx := cmd.Context()

	for i := range flagTicks {
		if len(script) > 0 {
			if c := script[i%len(script)]; c != game.CommandNone {
				loop.Send(c)
			}
		}
		if err := loop.Tick(ctx); err != nil {
			return err
		}
		if flagEvery > 0 && (i+1)%flagEvery == 0 {
			printSnapshot(out, loop.Snapshot())
		}
	}

	snap := loop.Snapshot()
	printSnapshot(out, snap)
	fmt.Fprintf(out, "rounds_over=%d hash=%016x\n", confirm.Count(), snap.Hash())
	printDriverStats(out, backend, logger)

	if flagPNG != "" {
		if err := raster.SavePNG(flagPNG, rb.Framebuffer(), flagScale); err != nil {
			return err
		}
		logger.Info("frame written", "path", flagPNG, "scale", flagScale)
	}
	return nil
}

func printSnapshot(w io.Writer, s game.Snapshot) {
	fmt.Fprintf(w, "tick=%d round=%d phase=%s paddle_x=%g ball=(%g,%g) speed=(%g,%g) bricks=%d\n",
		s.Tick, s.Round, s.Phase, s.PaddleX, s.BallX, s.BallY, s.SpeedX, s.SpeedY, s.BricksRemaining)
}

func printDriverStats(w io.Writer, backend render.Backend, logger *log.Logger) {
	switch b := backend.(type) {
	case *record.Backend:
		st := b.Stats()
		fmt.Fprintf(w, "frames=%d draws=%d buffers_created=%d buffers_deleted=%d live=%d\n",
			st.Frames, st.DrawCalls, st.BuffersCreated, st.BuffersDeleted, b.LiveBuffers())
		if f, ok := b.LastFrame(); ok {
			logger.Debug("last frame", "draws", len(f.Draws))
		}
	case *raster.Backend:
		w2, h2 := b.Size()
		fmt.Fprintf(w, "draws=%d live=%d framebuffer=%dx%d\n", b.DrawCalls, b.LiveBuffers(), w2, h2)
	}
}
