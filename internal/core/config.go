package core

import "time"

// DefaultMovePause is the settle delay after a move that changed the board.
const DefaultMovePause = 50 * time.Millisecond

// RuntimeConfig contains configuration passed to a game session at start.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	Seed      int64         // RNG seed; 0 means the platform picks one from the clock
	MovePause time.Duration // Presentation delay after an accepted move
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		Seed:      0,
		MovePause: DefaultMovePause,
	}
}

// ResolveSeed returns the configured seed, or a clock-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
