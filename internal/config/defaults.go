package config

import (
	_ "embed"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 650x650 playfield with a
// 5x10 grid of 60x20 bricks, a 100x20 paddle and a radius 10 ball.
func Default() Config {
	return Config{
		Playfield: Playfield{
			Width:  650,
			Height: 650,
		},
		Bricks: Bricks{
			Rows:    5,
			Cols:    10,
			Width:   60,
			Height:  20,
			Gap:     10,
			OriginX: 35,
			OriginY: 30,
		},
		Paddle: Paddle{
			Width:  100,
			Height: 20,
			Step:   10,
		},
		Ball: Ball{
			Radius:         10,
			SpeedX:         2,
			SpeedY:         -2,
			SegmentDegrees: 10,
		},
		Palette: Palette{
			Clear:  Color(core.RGBA(0.4343, 0.2422, 0.3343, 1)),
			Brick:  Color(core.RGBA(0.8, 0, 0, 1)),
			Paddle: Color(core.RGBA(0, 0, 0.8, 1)),
			Ball:   Color(core.RGBA(0, 1, 0, 1)),
		},
		Loop: Loop{
			FPS:         60,
			InputBuffer: 64,
		},
		Messages: Messages{
			RoundOver: "Game Over!",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
