package core

// RuntimeConfig is handed to a game whenever a scene instance is built.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the externally visible status of a running scene.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the scene reached its terminal state
	RunID    string // Identifier of the current scene instance
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Restarted bool // A fresh scene instance replaced the previous one this tick
}
