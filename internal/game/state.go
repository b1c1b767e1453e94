// Package game holds the brick breaker simulation: the entity set, the
// per-tick collision rules, paddle input and the frame loop that draws it
// all through a render.Backend.
package game

import (
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/render"
)

// Playfield is the fixed simulation area in pixels, origin top-left.
type Playfield struct {
	Width  float64
	Height float64
}

// Brick is one destructible block. Row and Col record where it was laid out;
// its identity during play is its index in State.Bricks.
type Brick struct {
	Bounds core.Rect
	Row    int
	Col    int
	Buffer render.Buffer
}

// Paddle is the player's bar. Its top edge sits Height above the bottom of
// the playfield.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
	Buffer render.Buffer

	dirty bool // Buffer no longer matches X
}

// Bounds returns the paddle rectangle inside pf.
func (p *Paddle) Bounds(pf Playfield) core.Rect {
	return core.NewRect(p.X, pf.Height-p.Height, p.Width, p.Height)
}

// Dirty reports whether the paddle buffer needs rebuilding.
func (p *Paddle) Dirty() bool {
	return p.dirty
}

// MarkDirty flags the paddle buffer for rebuilding before the next draw.
func (p *Paddle) MarkDirty() {
	p.dirty = true
}

// Ball is the moving circle. X, Y is its center.
type Ball struct {
	X, Y           float64
	Radius         float64
	SpeedX, SpeedY float64 // Pixels per tick
	Buffer         render.Buffer
}

// Palette holds the four draw colors.
type Palette struct {
	Clear  core.Color
	Brick  core.Color
	Paddle core.Color
	Ball   core.Color
}

// PaletteFromConfig converts the configured palette.
func PaletteFromConfig(p config.Palette) Palette {
	return Palette{
		Clear:  p.Clear.Core(),
		Brick:  p.Brick.Core(),
		Paddle: p.Paddle.Core(),
		Ball:   p.Ball.Core(),
	}
}

// Phase is the round lifecycle state.
type Phase int

const (
	PhasePlaying   Phase = iota // Ball in play
	PhaseRoundOver              // Ball left the bottom, waiting for acknowledgment
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// State is the complete game state. Only the goroutine running the loop
// may touch it.
type State struct {
	Playfield Playfield
	Bricks    []Brick
	Paddle    Paddle
	Ball      Ball
	Palette   Palette
	Phase     Phase
	Tick      uint64
	Round     int // Rounds started, counting the first
}

// NewState builds a state for cfg with entities placed for the first round.
// No buffers are allocated; see EntityStore.Build.
func NewState(cfg config.Config) *State {
	s := &State{
		Playfield: Playfield{Width: cfg.Playfield.Width, Height: cfg.Playfield.Height},
		Palette:   PaletteFromConfig(cfg.Palette),
	}
	s.place(cfg)
	return s
}

// place puts the paddle and ball at their round start positions.
func (s *State) place(cfg config.Config) {
	pf := s.Playfield

	s.Paddle.Width = cfg.Paddle.Width
	s.Paddle.Height = cfg.Paddle.Height
	s.Paddle.X = (pf.Width - cfg.Paddle.Width) / 2
	s.Paddle.MarkDirty()

	s.Ball.Radius = cfg.Ball.Radius
	s.Ball.X = pf.Width / 2
	s.Ball.Y = pf.Height - cfg.Paddle.Height - cfg.Ball.Radius
	s.Ball.SpeedX = cfg.Ball.SpeedX
	s.Ball.SpeedY = cfg.Ball.SpeedY

	s.Phase = PhasePlaying
	s.Round++
}

// BrickLayout returns the bounds of every brick of a full grid in row-major
// order, top row first.
func BrickLayout(grid config.Bricks) []core.Rect {
	rects := make([]core.Rect, 0, grid.Rows*grid.Cols)
	for row := range grid.Rows {
		for col := range grid.Cols {
			x := float64(col)*(grid.Width+grid.Gap) + grid.OriginX
			y := float64(row)*(grid.Height+grid.Gap) + grid.OriginY
			rects = append(rects, core.NewRect(x, y, grid.Width, grid.Height))
		}
	}
	return rects
}
