package game

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/render"
)

// FrameFunc is called on the loop goroutine after every draw.
type FrameFunc func(state *State)

// Option configures a Loop.
type Option func(*Loop)

// WithScheduler sets the frame pacing. The default is ImmediateScheduler.
func WithScheduler(s Scheduler) Option {
	return func(l *Loop) { l.scheduler = s }
}

// WithConfirmer sets who acknowledges the end of a round. The default
// acknowledges immediately.
func WithConfirmer(c Confirmer) Option {
	return func(l *Loop) { l.confirmer = c }
}

// WithLogger sets the logger. The default discards.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// WithFrameFunc registers a callback run after each drawn frame.
func WithFrameFunc(f FrameFunc) Option {
	return func(l *Loop) { l.onFrame = f }
}

// Loop owns the game state and drives it one tick per scheduled frame:
// queued commands move the paddle, the collision system advances the ball,
// changed buffers are rebuilt and the scene is drawn.
type Loop struct {
	cfg      config.Config
	state    *State
	store    *EntityStore
	collide  *CollisionSystem
	input    InputController
	pipeline *render.Pipeline

	scheduler Scheduler
	confirmer Confirmer
	logger    *log.Logger
	onFrame   FrameFunc

	commands chan Command
	palettes chan Palette
	dropped  atomic.Uint64
}

// NewLoop sets up the render pipeline on backend and places the first
// round. Shader compile and link failures are returned as is, wrapped.
func NewLoop(cfg config.Config, backend render.Backend, opts ...Option) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pipeline, err := render.NewPipeline(backend, cfg.Playfield.Width, cfg.Playfield.Height)
	if err != nil {
		return nil, err
	}

	store := NewEntityStore(backend, cfg.Ball.SegmentDegrees)
	l := &Loop{
		cfg:       cfg,
		state:     NewState(cfg),
		store:     store,
		collide:   NewCollisionSystem(store),
		input:     NewInputController(cfg.Paddle.Step),
		pipeline:  pipeline,
		scheduler: ImmediateScheduler{},
		confirmer: &AutoConfirmer{},
		logger:    log.New(io.Discard),
		commands:  make(chan Command, cfg.Loop.InputBuffer),
		palettes:  make(chan Palette, 1),
	}
	for _, opt := range opts {
		opt(l)
	}

	store.Build(l.state, cfg.Bricks)
	l.logger.Info("pipeline ready",
		"program", pipeline.Program(),
		"playfield", fmt.Sprintf("%vx%v", cfg.Playfield.Width, cfg.Playfield.Height),
		"bricks", len(l.state.Bricks),
	)
	return l, nil
}

// Send queues a command for the next tick. It never blocks; when the queue
// is full the command is dropped and Send returns false. Safe for concurrent
// use.
func (l *Loop) Send(cmd Command) bool {
	select {
	case l.commands <- cmd:
		return true
	default:
		l.dropped.Add(1)
		return false
	}
}

// Dropped returns how many commands Send has discarded.
func (l *Loop) Dropped() uint64 {
	return l.dropped.Load()
}

// SetPalette replaces the draw colors from the next tick on. Only the latest
// pending palette is kept. Safe for concurrent use by one sender.
func (l *Loop) SetPalette(p Palette) {
	for {
		select {
		case l.palettes <- p:
			return
		default:
		}
		select {
		case <-l.palettes:
		default:
		}
	}
}

// State returns the live state. It must not be used while Run is active
// except from a FrameFunc.
func (l *Loop) State() *State {
	return l.state
}

// Run ticks once per scheduled frame until ctx is done or the confirmer
// fails.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.scheduler.WaitFrame(ctx); err != nil {
			return err
		}
		if err := l.Tick(ctx); err != nil {
			return err
		}
	}
}

// Tick runs one iteration: drain input, step the simulation, resolve the
// end of a round, draw.
func (l *Loop) Tick(ctx context.Context) error {
	l.drain()

	l.state.Tick++
	res := l.collide.Step(l.state)
	if res.BrickIndex >= 0 {
		l.logger.Debug("brick destroyed", "index", res.BrickIndex, "remaining", len(l.state.Bricks), "tick", l.state.Tick)
	}

	if res.Outcome == OutcomeRoundOver {
		if err := l.roundOver(ctx); err != nil {
			return err
		}
	}

	l.Draw()
	return nil
}

// Apply applies a command directly, bypassing the queue. Loop goroutine only.
func (l *Loop) Apply(cmd Command) bool {
	return l.input.Apply(l.state, cmd)
}

func (l *Loop) drain() {
	for {
		select {
		case cmd := <-l.commands:
			l.input.Apply(l.state, cmd)
		case p := <-l.palettes:
			l.state.Palette = p
			l.logger.Debug("palette updated")
		default:
			return
		}
	}
}

func (l *Loop) roundOver(ctx context.Context) error {
	l.state.Phase = PhaseRoundOver
	l.logger.Info("round over",
		"round", l.state.Round,
		"tick", l.state.Tick,
		"bricks_left", len(l.state.Bricks),
	)

	if err := l.confirmer.Acknowledge(ctx, l.cfg.Messages.RoundOver); err != nil {
		return fmt.Errorf("game: acknowledge round over: %w", err)
	}

	l.store.Reset(l.state, l.cfg)
	l.logger.Info("round started", "round", l.state.Round)
	return nil
}

// Draw clears the frame and submits bricks, paddle and ball in that order.
// Drawing an unchanged state submits identical calls.
func (l *Loop) Draw() {
	l.store.SyncPaddle(l.state)

	s := l.state
	l.pipeline.Clear(s.Palette.Clear)
	for i := range s.Bricks {
		l.pipeline.Draw(s.Bricks[i].Buffer, s.Palette.Brick, 6)
	}
	l.pipeline.Draw(s.Paddle.Buffer, s.Palette.Paddle, 6)
	l.pipeline.Draw(s.Ball.Buffer, s.Palette.Ball, l.store.BallVertexCount())

	if l.onFrame != nil {
		l.onFrame(s)
	}
}

// Close releases every entity buffer.
func (l *Loop) Close() {
	l.store.Release(l.state)
}
