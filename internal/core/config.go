package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports back to the platform each step.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool

	// Session details reported once GameOver is set.
	Won       bool
	Collected int
	Goal      int
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
