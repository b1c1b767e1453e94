package game

import "github.com/vovakirdan/brick-breaker/internal/core"

// Command is a discrete paddle input.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMoveLeft:
		return "left"
	case CommandMoveRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseCommands converts a script such as "LLR.R" into commands: L and R
// move, anything else is CommandNone.
func ParseCommands(script string) []Command {
	cmds := make([]Command, 0, len(script))
	for _, r := range script {
		switch r {
		case 'L', 'l':
			cmds = append(cmds, CommandMoveLeft)
		case 'R', 'r':
			cmds = append(cmds, CommandMoveRight)
		default:
			cmds = append(cmds, CommandNone)
		}
	}
	return cmds
}

// InputController moves the paddle by a fixed step per command.
type InputController struct {
	step float64
}

// NewInputController returns a controller moving step pixels per command.
func NewInputController(step float64) InputController {
	return InputController{step: step}
}

// Apply moves the paddle for cmd and clamps it inside the playfield.
// CommandNone and unknown commands are ignored. It reports whether cmd was
// a move.
func (c InputController) Apply(state *State, cmd Command) bool {
	p := &state.Paddle
	switch cmd {
	case CommandMoveLeft:
		p.X -= c.step
	case CommandMoveRight:
		p.X += c.step
	default:
		return false
	}
	p.X = core.Clamp(p.X, 0, state.Playfield.Width-p.Width)
	p.MarkDirty()
	return true
}
