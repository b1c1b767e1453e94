// Package web runs the brick breaker on an HTML canvas with WebGL rendering
// and requestAnimationFrame pacing. Round-over messages use window.alert,
// which blocks the page until dismissed.
package web

import "github.com/vovakirdan/brick-breaker/internal/game"

// DefaultCanvasID is the element the page provides for drawing.
const DefaultCanvasID = "canvas"

// KeyCommand maps a KeyboardEvent.key value to a paddle command.
func KeyCommand(key string) game.Command {
	switch key {
	case "ArrowLeft":
		return game.CommandMoveLeft
	case "ArrowRight":
		return game.CommandMoveRight
	default:
		return game.CommandNone
	}
}
