package core

// RuntimeConfig contains platform settings passed to the game loop at start.
// The playfield itself comes from the game config and never changes; these
// values only describe the host presenting it.
type RuntimeConfig struct {
	ScreenW  int // Host surface width (terminal columns or canvas pixels)
	ScreenH  int // Host surface height (terminal rows or canvas pixels)
	TickRate int // Frames per second for ticker-driven hosts (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
