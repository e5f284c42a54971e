package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the platform (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level      string // ID of the loaded level
	Ticks      int64  // Frames simulated so far
	FixedTicks int64  // Fixed steps consumed so far
	FPS        int64  // Last measured frame rate
	Paused     bool
	Closed     bool // The game asked the platform to close it
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
