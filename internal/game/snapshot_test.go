package game

import (
	"context"
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

func TestGameDeterminism(t *testing.T) {
	// Same inputs must produce identical results, across round resets.
	script := ParseCommands("LLLL....RRRRRRRR..LR.LLLLLLLLLLLLRRRR......")

	run := func() Snapshot {
		l, _ := newTestLoop(t, config.Default())
		for i := range 6000 {
			l.Send(script[i%len(script)])
			if err := l.Tick(context.Background()); err != nil {
				t.Fatal(err)
			}
		}
		return l.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != 6000 || snap2.Tick != 6000 {
		t.Errorf("tick counts = %d, %d, want 6000", snap1.Tick, snap2.Tick)
	}
	if snap1.PaddleX != snap2.PaddleX || snap1.BallX != snap2.BallX || snap1.BallY != snap2.BallY {
		t.Errorf("Determinism failed: positions differ")
	}
}

func TestSnapshotBrickCells(t *testing.T) {
	l, _ := newTestLoop(t, config.Default())
	s := l.State()
	l.store.RemoveBrick(s, 0)
	l.store.RemoveBrick(s, 10) // originally index 11: row 1, col 1

	snap := l.Snapshot()
	if snap.BricksRemaining != 48 {
		t.Errorf("BricksRemaining = %d, want 48", snap.BricksRemaining)
	}
	if snap.BrickCells[0] != 1 || snap.BrickCells[9] != 10 || snap.BrickCells[10] != 12 {
		t.Errorf("BrickCells = %v", snap.BrickCells[:12])
	}

	before := snap.Hash()
	s.Ball.X++
	after := l.Snapshot()
	if after.Hash() == before {
		t.Error("hash ignores ball position")
	}
}
