// Package config provides configuration for the chess command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Silent     = 0 // nothing
	Summary    = 1 // one line per finished game
	Commentary = 2 // every accepted and rejected move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // see Silent, Summary and Commentary

	// Display settings for the board renderer.
	Display *DisplayConfig

	// Starting position settings.
	Setup *SetupConfig

	// PerftDepth runs a perft count of this depth instead of a game when > 0.
	PerftDepth int

	// Divide prints per-move perft counts.
	Divide bool

	// JSONFormat writes each finished game as JSON to OutputFile.
	JSONFormat bool

	// File handling
	OutputFilename string
	LogFilename    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Display:    NewDisplayConfig(),
		Setup:      NewSetupConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	if c.Verbosity < Silent {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.PerftDepth < 0 {
		return fmt.Errorf("perft depth %d: %w", c.PerftDepth, errors.ErrInvalidConfig)
	}
	if c.Divide && c.PerftDepth == 0 {
		return fmt.Errorf("divide needs a perft depth: %w", errors.ErrInvalidConfig)
	}
	if c.Setup != nil && c.Setup.BlackFirst && c.Setup.FEN == "" {
		return fmt.Errorf("black to move needs a FEN placement: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile if Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
