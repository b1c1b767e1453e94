package web

import (
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/game"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  string
		want game.Command
	}{
		{"ArrowLeft", game.CommandMoveLeft},
		{"ArrowRight", game.CommandMoveRight},
		{"ArrowUp", game.CommandNone},
		{"a", game.CommandNone},
		{"", game.CommandNone},
	}

	for _, tt := range tests {
		if got := KeyCommand(tt.key); got != tt.want {
			t.Errorf("KeyCommand(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
