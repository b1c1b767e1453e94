package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-breaker/internal/game"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Ack        key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Ack, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Ack: key.NewBinding(
			key.WithKeys("enter", " ", "esc"),
			key.WithHelp("enter", "continue"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to paddle commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper over keys.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to a command.
// Returns the command (may be CommandNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (cmd game.Command, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return game.CommandNone, true
	case key.Matches(msg, km.keys.Left):
		return game.CommandMoveLeft, false
	case key.Matches(msg, km.keys.Right):
		return game.CommandMoveRight, false
	}
	return game.CommandNone, false
}
