package game

import (
	"slices"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/geometry"
	"github.com/vovakirdan/brick-breaker/internal/render"
)

// EntityStore builds and releases the vertex buffers behind every entity.
// Each rebuild deletes the handle it replaces.
type EntityStore struct {
	buffers        render.BufferFactory
	segmentDegrees int
}

// NewEntityStore returns a store allocating from buffers. segmentDegrees is
// the ball tessellation step.
func NewEntityStore(buffers render.BufferFactory, segmentDegrees int) *EntityStore {
	if segmentDegrees <= 0 {
		segmentDegrees = geometry.DefaultSegmentDegrees
	}
	return &EntityStore{buffers: buffers, segmentDegrees: segmentDegrees}
}

// BallVertexCount is the vertex count of every ball buffer.
func (s *EntityStore) BallVertexCount() int {
	return geometry.CircleVertexCount(s.segmentDegrees)
}

// InitBricks lays out a full grid and uploads one buffer per brick.
func (s *EntityStore) InitBricks(grid config.Bricks) []Brick {
	layout := BrickLayout(grid)
	bricks := make([]Brick, len(layout))
	for i, r := range layout {
		bricks[i] = Brick{
			Bounds: r,
			Row:    i / grid.Cols,
			Col:    i % grid.Cols,
			Buffer: s.buffers.CreateVertexBuffer(geometry.RectangleOf(r)),
		}
	}
	return bricks
}

// RebuildBallBuffer regenerates the circle at the ball's current center.
func (s *EntityStore) RebuildBallBuffer(b *Ball) {
	old := b.Buffer
	b.Buffer = s.buffers.CreateVertexBuffer(geometry.Circle(b.X, b.Y, b.Radius, s.segmentDegrees))
	s.buffers.DeleteBuffer(old)
}

// RebuildPaddleBuffer regenerates the paddle rectangle and clears its dirty
// flag.
func (s *EntityStore) RebuildPaddleBuffer(p *Paddle, pf Playfield) {
	old := p.Buffer
	p.Buffer = s.buffers.CreateVertexBuffer(geometry.RectangleOf(p.Bounds(pf)))
	s.buffers.DeleteBuffer(old)
	p.dirty = false
}

// SyncPaddle rebuilds the paddle buffer only if it is dirty.
func (s *EntityStore) SyncPaddle(state *State) bool {
	if !state.Paddle.dirty {
		return false
	}
	s.RebuildPaddleBuffer(&state.Paddle, state.Playfield)
	return true
}

// RemoveBrick deletes the brick at index, keeping the order of the rest.
// Out of range indexes are ignored.
func (s *EntityStore) RemoveBrick(state *State, index int) bool {
	if index < 0 || index >= len(state.Bricks) {
		return false
	}
	s.buffers.DeleteBuffer(state.Bricks[index].Buffer)
	state.Bricks = slices.Delete(state.Bricks, index, index+1)
	return true
}

// Reset starts a new round: the paddle is centered, the ball placed above it
// with the configured speed and the full brick grid regenerated. Every
// buffer is rebuilt.
func (s *EntityStore) Reset(state *State, cfg config.Config) {
	s.Release(state)
	state.place(cfg)
	s.Build(state, cfg.Bricks)
}

// Build allocates every buffer for a freshly placed state: the full brick
// grid, the paddle and the ball.
func (s *EntityStore) Build(state *State, grid config.Bricks) {
	state.Bricks = s.InitBricks(grid)
	s.RebuildPaddleBuffer(&state.Paddle, state.Playfield)
	s.RebuildBallBuffer(&state.Ball)
}

// Release deletes every buffer the state holds.
func (s *EntityStore) Release(state *State) {
	for i := range state.Bricks {
		s.buffers.DeleteBuffer(state.Bricks[i].Buffer)
	}
	state.Bricks = nil
	s.buffers.DeleteBuffer(state.Paddle.Buffer)
	state.Paddle.Buffer = 0
	s.buffers.DeleteBuffer(state.Ball.Buffer)
	state.Ball.Buffer = 0
}
