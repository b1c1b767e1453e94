// Package config provides YAML and TOML configuration loading for the brick
// breaker, with an embedded default and palette hot reload.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all configuration for one game process.
type Config struct {
	Playfield Playfield `yaml:"playfield" toml:"playfield"`
	Bricks    Bricks    `yaml:"bricks" toml:"bricks"`
	Paddle    Paddle    `yaml:"paddle" toml:"paddle"`
	Ball      Ball      `yaml:"ball" toml:"ball"`
	Palette   Palette   `yaml:"palette" toml:"palette"`
	Loop      Loop      `yaml:"loop" toml:"loop"`
	Messages  Messages  `yaml:"messages" toml:"messages"`
}

// Playfield defines the fixed simulation and render area.
type Playfield struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Bricks defines the brick grid laid out at every reset.
type Bricks struct {
	Rows    int     `yaml:"rows" toml:"rows"`
	Cols    int     `yaml:"cols" toml:"cols"`
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	Gap     float64 `yaml:"gap" toml:"gap"`
	OriginX float64 `yaml:"origin_x" toml:"origin_x"`
	OriginY float64 `yaml:"origin_y" toml:"origin_y"`
}

// Paddle defines the player's paddle.
type Paddle struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Step   float64 `yaml:"step" toml:"step"` // Displacement per key press
}

// Ball defines the ball and its speed at the start of every round.
type Ball struct {
	Radius         float64 `yaml:"radius" toml:"radius"`
	SpeedX         float64 `yaml:"speed_x" toml:"speed_x"`
	SpeedY         float64 `yaml:"speed_y" toml:"speed_y"`
	SegmentDegrees int     `yaml:"segment_degrees" toml:"segment_degrees"`
}

// Palette holds the draw colors.
type Palette struct {
	Clear  Color `yaml:"clear" toml:"clear"`
	Brick  Color `yaml:"brick" toml:"brick"`
	Paddle Color `yaml:"paddle" toml:"paddle"`
	Ball   Color `yaml:"ball" toml:"ball"`
}

// Loop defines frame cadence for ticker-driven hosts.
type Loop struct {
	FPS         int `yaml:"fps" toml:"fps"`
	InputBuffer int `yaml:"input_buffer" toml:"input_buffer"` // Queued key presses before drops
}

// Messages holds user-facing text.
type Messages struct {
	RoundOver string `yaml:"round_over" toml:"round_over"`
}

// Color is a core.Color that reads and writes as text: either "r, g, b, a"
// with components in [0, 1] or a "#rrggbb" / "#rrggbbaa" hex string.
type Color core.Color

// Core returns the color as a core.Color.
func (c Color) Core() core.Color {
	return core.Color(c)
}

// MarshalText writes the component form.
func (c Color) MarshalText() ([]byte, error) {
	f := func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
	return []byte(f(c.R) + ", " + f(c.G) + ", " + f(c.B) + ", " + f(c.A)), nil
}

// UnmarshalText parses either accepted form.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if strings.HasPrefix(s, "#") {
		return c.parseHex(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("config: color %q: want 3 or 4 components", s)
	}
	var v [4]float32
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("config: color %q: %w", s, err)
		}
		if f < 0 || f > 1 {
			return fmt.Errorf("config: color %q: component %d out of [0, 1]", s, i)
		}
		v[i] = float32(f)
	}
	*c = Color{R: v[0], G: v[1], B: v[2], A: v[3]}
	return nil
}

func (c *Color) parseHex(s string) error {
	alpha := 1.0
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return fmt.Errorf("config: color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	default:
		return fmt.Errorf("config: color %q: want #rrggbb or #rrggbbaa", s)
	}
	rgb, err := colorful.Hex(s)
	if err != nil {
		return fmt.Errorf("config: color %q: %w", s, err)
	}
	*c = Color{R: float32(rgb.R), G: float32(rgb.G), B: float32(rgb.B), A: float32(alpha)}
	return nil
}

// Validate checks the configuration for values the game cannot run with.
func (cfg Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}

	pf := cfg.Playfield
	if pf.Width <= 0 || pf.Height <= 0 {
		return invalid("playfield size %vx%v must be positive", pf.Width, pf.Height)
	}

	b := cfg.Bricks
	if b.Rows < 0 || b.Cols < 0 {
		return invalid("brick grid %dx%d must not be negative", b.Rows, b.Cols)
	}
	if b.Rows > 0 && b.Cols > 0 {
		if b.Width <= 0 || b.Height <= 0 {
			return invalid("brick size %vx%v must be positive", b.Width, b.Height)
		}
		if b.Gap < 0 {
			return invalid("brick gap %v must not be negative", b.Gap)
		}
		// The grid may run past the right or bottom edge and be clipped; the
		// default layout does. Its first brick must start inside.
		if b.OriginX < 0 || b.OriginY < 0 || b.OriginX >= pf.Width || b.OriginY >= pf.Height {
			return invalid("brick grid origin (%v, %v) is outside the playfield", b.OriginX, b.OriginY)
		}
	}

	p := cfg.Paddle
	if p.Width <= 0 || p.Height <= 0 {
		return invalid("paddle size %vx%v must be positive", p.Width, p.Height)
	}
	if p.Width > pf.Width || p.Height > pf.Height {
		return invalid("paddle %vx%v is larger than the playfield", p.Width, p.Height)
	}
	if p.Step <= 0 {
		return invalid("paddle step %v must be positive", p.Step)
	}

	ball := cfg.Ball
	if ball.Radius <= 0 {
		return invalid("ball radius %v must be positive", ball.Radius)
	}
	if ball.SpeedX == 0 || ball.SpeedY == 0 {
		return invalid("ball speed (%v, %v) must be nonzero on both axes", ball.SpeedX, ball.SpeedY)
	}
	if ball.SegmentDegrees <= 0 || 360%ball.SegmentDegrees != 0 {
		return invalid("ball segment_degrees %d must divide 360", ball.SegmentDegrees)
	}

	if cfg.Loop.FPS <= 0 {
		return invalid("loop fps %d must be positive", cfg.Loop.FPS)
	}
	if cfg.Loop.InputBuffer < 0 {
		return invalid("loop input_buffer %d must not be negative", cfg.Loop.InputBuffer)
	}
	return nil
}
