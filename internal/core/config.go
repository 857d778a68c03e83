package core

// RuntimeConfig describes the terminal the game is shown on and who plays it.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	PlayerName string // Display-only, shown in the HUD
	Rows       int    // Requested brick rows, clamped by the game
}

// DefaultPlayerName is used when no player name is given.
const DefaultPlayerName = "Sammy the Spartan"

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		PlayerName: DefaultPlayerName,
		Rows:       4,
	}
}
