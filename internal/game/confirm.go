package game

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Confirmer shows a message and blocks until the user acknowledges it.
type Confirmer interface {
	Acknowledge(ctx context.Context, message string) error
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, message string) error

// Acknowledge calls f.
func (f ConfirmFunc) Acknowledge(ctx context.Context, message string) error {
	return f(ctx, message)
}

// AutoConfirmer acknowledges immediately. It counts and optionally logs each
// message.
type AutoConfirmer struct {
	Logger *log.Logger

	count atomic.Int64
}

// Acknowledge records the message and returns.
func (a *AutoConfirmer) Acknowledge(ctx context.Context, message string) error {
	a.count.Add(1)
	if a.Logger != nil {
		a.Logger.Info("acknowledged", "message", message)
	}
	return ctx.Err()
}

// Count returns how many messages were acknowledged.
func (a *AutoConfirmer) Count() int {
	return int(a.count.Load())
}
