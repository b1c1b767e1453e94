// Package tui runs the brick breaker in a terminal with Bubble Tea. The game
// loop draws into a software framebuffer on its own goroutine; frames,
// acknowledgment prompts and screenshots reach the model as messages.
package tui

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-breaker/internal/game"
	"github.com/vovakirdan/brick-breaker/internal/render/raster"
)

// FrameMsg carries one presented frame, already scaled to the terminal.
type FrameMsg struct {
	Image *image.RGBA
	Round int
	Left  int // Bricks remaining
}

// ConfirmMsg asks the model to show a modal until the user acknowledges it.
type ConfirmMsg struct {
	Message string
	ack     chan struct{}
}

// ScreenshotMsg reports a saved screenshot.
type ScreenshotMsg struct {
	Path string
	Err  error
}

// Presenter hands frames from the loop goroutine to the Bubble Tea program.
type Presenter struct {
	backend *raster.Backend
	send    func(tea.Msg)
	dir     string // Screenshot directory

	cols, rows atomic.Int64
	shot       atomic.Bool
}

// NewPresenter returns a presenter reading frames from backend. Screenshots
// are written to dir.
func NewPresenter(backend *raster.Backend, dir string) *Presenter {
	return &Presenter{backend: backend, dir: dir, send: func(tea.Msg) {}}
}

// SetCells sets the terminal area frames are scaled to.
func (p *Presenter) SetCells(cols, rows int) {
	p.cols.Store(int64(cols))
	p.rows.Store(int64(rows))
}

// RequestScreenshot saves the next presented frame at full resolution.
func (p *Presenter) RequestScreenshot() {
	p.shot.Store(true)
}

// Present is a game.FrameFunc. It runs on the loop goroutine, the only place
// the framebuffer may be read.
func (p *Presenter) Present(state *game.State) {
	fb := p.backend.Framebuffer()

	if p.shot.CompareAndSwap(true, false) {
		// Generate filename with timestamp
		timestamp := time.Now().Format("20060102_150405")
		path := filepath.Join(p.dir, fmt.Sprintf("brick-breaker_%s.png", timestamp))
		err := raster.SavePNG(path, fb, 1)
		p.send(ScreenshotMsg{Path: path, Err: err})
	}

	b := fb.Bounds()
	w, h := FitPixels(b.Dx(), b.Dy(), int(p.cols.Load()), int(p.rows.Load()))
	if w == 0 {
		return
	}
	p.send(FrameMsg{
		Image: Downscale(fb, w, h),
		Round: state.Round,
		Left:  len(state.Bricks),
	})
}

// Confirmer shows round-over messages as a modal and blocks the loop until
// the user dismisses it.
type Confirmer struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// Acknowledge implements game.Confirmer.
func (c *Confirmer) Acknowledge(ctx context.Context, message string) error {
	c.mu.Lock()
	send := c.send
	c.mu.Unlock()
	if send == nil {
		return nil
	}

	ack := make(chan struct{})
	send(ConfirmMsg{Message: message, ack: ack})
	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Confirmer) attach(send func(tea.Msg)) {
	c.mu.Lock()
	c.send = send
	c.mu.Unlock()
}

// ScreenshotDir returns the default screenshot directory.
func ScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".brick-breaker", "screenshots")
}

func (p *Presenter) attach(send func(tea.Msg)) {
	p.send = send
}
