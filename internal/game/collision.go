package game

// Outcome is what a collision step ended with.
type Outcome int

const (
	OutcomeContinue  Outcome = iota // Ball still in play
	OutcomeRoundOver                // Ball passed the bottom edge
)

// StepResult reports which rules fired during one step. BrickIndex is the
// index the destroyed brick had before removal, or -1.
type StepResult struct {
	Outcome    Outcome
	WallX      bool
	WallTop    bool
	Paddle     bool
	BrickIndex int
}

// CollisionSystem advances the ball one tick and resolves its contacts.
type CollisionSystem struct {
	store *EntityStore
}

// NewCollisionSystem returns a collision system that removes bricks and
// rebuilds the ball buffer through store.
func NewCollisionSystem(store *EntityStore) *CollisionSystem {
	return &CollisionSystem{store: store}
}

// Step runs the rules below in order. The wall, paddle and brick checks are
// independent, so several may fire in one tick. Bounces only negate speed;
// the ball is never pushed back inside.
//
//  1. move by speed
//  2. left or right wall: negate SpeedX
//  3. top wall: negate SpeedY
//  4. inside the paddle band and strictly between its edges: negate SpeedY
//  5. first brick strictly containing the center: negate SpeedY, remove it
//  6. below the bottom edge: round over, return
//  7. rebuild the ball buffer
func (c *CollisionSystem) Step(state *State) StepResult {
	res := StepResult{BrickIndex: -1}
	b := &state.Ball
	pf := state.Playfield
	p := &state.Paddle

	b.X += b.SpeedX
	b.Y += b.SpeedY

	if b.X < b.Radius || b.X > pf.Width-b.Radius {
		b.SpeedX = -b.SpeedX
		res.WallX = true
	}
	if b.Y < b.Radius {
		b.SpeedY = -b.SpeedY
		res.WallTop = true
	}

	if b.Y > pf.Height-p.Height-b.Radius && b.X > p.X && b.X < p.X+p.Width {
		b.SpeedY = -b.SpeedY
		res.Paddle = true
	}

	for i := range state.Bricks {
		if state.Bricks[i].Bounds.Contains(b.X, b.Y) {
			b.SpeedY = -b.SpeedY
			c.store.RemoveBrick(state, i)
			res.BrickIndex = i
			break
		}
	}

	if b.Y > pf.Height {
		res.Outcome = OutcomeRoundOver
		return res
	}

	c.store.RebuildBallBuffer(b)
	return res
}
