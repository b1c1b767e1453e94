package game

import (
	"context"
	"time"
)

// Scheduler paces the loop. WaitFrame blocks until the next frame should be
// produced or ctx is done.
type Scheduler interface {
	WaitFrame(ctx context.Context) error
}

// TickerScheduler fires at a fixed rate. Frames missed while a tick was
// running are dropped, not queued.
type TickerScheduler struct {
	ticker *time.Ticker
}

// NewTickerScheduler returns a scheduler firing fps times a second.
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// WaitFrame waits for the next tick.
func (s *TickerScheduler) WaitFrame(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (s *TickerScheduler) Stop() {
	s.ticker.Stop()
}

// ImmediateScheduler never waits. Used for headless runs.
type ImmediateScheduler struct{}

// WaitFrame returns at once unless ctx is done.
func (ImmediateScheduler) WaitFrame(ctx context.Context) error {
	return ctx.Err()
}
