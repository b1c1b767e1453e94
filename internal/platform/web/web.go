//go:build js && wasm

package web

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/game"
	"github.com/vovakirdan/brick-breaker/internal/render/webgl"
)

// AnimationFrameScheduler paces the loop with requestAnimationFrame.
type AnimationFrameScheduler struct {
	frames chan struct{}
	cb     js.Func
}

// NewAnimationFrameScheduler registers the frame callback.
func NewAnimationFrameScheduler() *AnimationFrameScheduler {
	s := &AnimationFrameScheduler{frames: make(chan struct{}, 1)}
	s.cb = js.FuncOf(func(_ js.Value, _ []js.Value) any {
		select {
		case s.frames <- struct{}{}:
		default:
			// Frame already pending
		}
		return nil
	})
	return s
}

// WaitFrame requests an animation frame and waits for it.
func (s *AnimationFrameScheduler) WaitFrame(ctx context.Context) error {
	js.Global().Call("requestAnimationFrame", s.cb)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.frames:
		return nil
	}
}

// Release frees the callback.
func (s *AnimationFrameScheduler) Release() {
	s.cb.Release()
}

// AlertConfirmer shows the message with window.alert, which blocks the page
// until dismissed.
type AlertConfirmer struct{}

// Acknowledge implements game.Confirmer.
func (AlertConfirmer) Acknowledge(ctx context.Context, message string) error {
	js.Global().Call("alert", message)
	return ctx.Err()
}

// Run plays on the canvas with the given element id until ctx is done.
func Run(ctx context.Context, cfg config.Config, canvasID string, logger *log.Logger) error {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", canvasID)
	if canvas.IsNull() {
		return fmt.Errorf("web: no element #%s", canvasID)
	}

	backend, err := webgl.New(canvas, int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	if err != nil {
		return err
	}

	scheduler := NewAnimationFrameScheduler()
	defer scheduler.Release()

	loop, err := game.NewLoop(cfg, backend,
		game.WithScheduler(scheduler),
		game.WithConfirmer(AlertConfirmer{}),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer loop.Close()

	onKey := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		if cmd := KeyCommand(args[0].Get("key").String()); cmd != game.CommandNone {
			if !loop.Send(cmd) {
				logger.Debug("input dropped", "command", cmd)
			}
		}
		return nil
	})
	doc.Call("addEventListener", "keydown", onKey)
	defer func() {
		doc.Call("removeEventListener", "keydown", onKey)
		onKey.Release()
	}()

	return loop.Run(ctx)
}
