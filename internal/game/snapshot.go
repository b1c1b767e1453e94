package game

import "math"

// Snapshot is a copy of the game state in primitive types, used for
// determinism checks and trace output.
type Snapshot struct {
	Tick  uint64
	Round int
	Phase string

	PaddleX float64
	BallX   float64
	BallY   float64
	SpeedX  float64
	SpeedY  float64

	BricksRemaining int

	// Surviving bricks by grid position: row*cols + col
	BrickCells []int
}

// Snapshot returns the current state as a Snapshot. cols is the grid width
// used to flatten brick positions.
func (s *State) Snapshot(cols int) Snapshot {
	cells := make([]int, len(s.Bricks))
	for i, b := range s.Bricks {
		cells[i] = b.Row*cols + b.Col
	}

	return Snapshot{
		Tick:            s.Tick,
		Round:           s.Round,
		Phase:           s.Phase.String(),
		PaddleX:         s.Paddle.X,
		BallX:           s.Ball.X,
		BallY:           s.Ball.Y,
		SpeedX:          s.Ball.SpeedX,
		SpeedY:          s.Ball.SpeedY,
		BricksRemaining: len(s.Bricks),
		BrickCells:      cells,
	}
}

// Snapshot returns the loop's current state as a Snapshot.
func (l *Loop) Snapshot() Snapshot {
	return l.state.Snapshot(l.cfg.Bricks.Cols)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Round) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.SpeedX)
	h = h*31 + math.Float64bits(snap.SpeedY)
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, v := range snap.BrickCells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
