package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-visible state of a game, returned by
// Game.State() after each tick.
type GameState struct {
	Score    int  // Current run score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
	InMenu   bool // Whether the start menu is showing
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
