// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Log file (default: stderr)")
	verbosity  = flag.Int("v", config.Summary, "Log verbosity: 0 silent, 1 game summary, 2 every move")
	quiet      = flag.Bool("s", false, "Silent mode (same as -v 0)")
	jsonOutput = flag.Bool("J", false, "Write the finished game as JSON")

	// Display options
	asciiBoard  = flag.Bool("ascii", false, "Draw pieces as letters instead of chess symbols")
	colourBoard = flag.Bool("colour", false, "Shade squares with ANSI colours")
	flipBoard   = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoords    = flag.Bool("nocoords", false, "Don't print rank and file labels")

	// Setup options
	fenSetup   = flag.String("fen", "", "Start from this FEN piece placement")
	blackFirst = flag.Bool("black", false, "Black moves first (requires -fen)")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count legal move tree leaves to depth N and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies command-line flag values onto cfg.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)
	applySetupFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
	cfg.PerftDepth = *perftDepth
	cfg.Divide = *divide
	cfg.JSONFormat = *jsonOutput
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.ASCII = *asciiBoard
	cfg.Display.Colour = *colourBoard
	cfg.Display.Flip = *flipBoard
	cfg.Display.Coordinates = !*noCoords
}

// applySetupFlags configures the starting position.
func applySetupFlags(cfg *config.Config) {
	cfg.Setup.FEN = *fenSetup
	cfg.Setup.BlackFirst = *blackFirst
}
