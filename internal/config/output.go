package config

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// ASCII uses piece letters (upper case White) instead of chess symbols.
	ASCII bool

	// Colour shades squares with ANSI background colours.
	Colour bool

	// Flip draws the board from Black's side.
	Flip bool

	// Coordinates prints rank numbers and file letters around the board.
	Coordinates bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Coordinates: true,
	}
}

// SetupConfig holds the starting position of a new game.
type SetupConfig struct {
	// FEN is a piece placement to start from instead of the standard position.
	FEN string

	// BlackFirst gives Black the first move of a FEN setup.
	BlackFirst bool
}

// NewSetupConfig creates a SetupConfig for the standard starting position.
func NewSetupConfig() *SetupConfig {
	return &SetupConfig{}
}
