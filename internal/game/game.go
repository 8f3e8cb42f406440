package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tilemerge/internal/board"
	"github.com/vovakirdan/tilemerge/internal/core"
)

// Board size limits accepted from user input.
const (
	MinSide = 1
	MaxSide = 16
)

// Game is one play session: a board, its random source and a move counter.
// A Game has a single owner; it is not safe for concurrent use.
type Game struct {
	grid   *board.Grid
	rng    *rand.Rand
	width  int
	height int
	moves  int

	last     board.MoveResult
	settling bool // a changed move is waiting for its settle delay

	// Screen dimensions used by Render
	screenW int
	screenH int
}

// New creates a game with a freshly seeded width x height board.
func New(width, height int, seed int64) (*Game, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}

	g := &Game{
		rng:     rand.New(rand.NewSource(seed)),
		width:   width,
		height:  height,
		screenW: 80,
		screenH: 24,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFromConfig creates a game sized width x height using the runtime
// config's seed and screen size.
func NewFromConfig(width, height int, cfg core.RuntimeConfig) (*Game, error) {
	g, err := New(width, height, cfg.ResolveSeed())
	if err != nil {
		return nil, err
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return g, nil
}

// ValidateSize checks user-supplied board dimensions.
func ValidateSize(width, height int) error {
	if width < MinSide || width > MaxSide || height < MinSide || height > MaxSide {
		return fmt.Errorf("game: board %dx%d outside %d..%d: %w", width, height, MinSide, MaxSide, board.ErrInvalidDimensions)
	}
	if width*height < 2 {
		return fmt.Errorf("game: board %dx%d has no room for two tiles: %w", width, height, board.ErrInvalidDimensions)
	}
	return nil
}

// Reset replaces the board with a new one of the same size.
// The random source carries on, so consecutive resets differ.
func (g *Game) Reset() error {
	grid, err := board.New(g.height, g.width, g.rng)
	if err != nil {
		return fmt.Errorf("game: reset: %w", err)
	}

	g.grid = grid
	g.moves = 0
	g.last = board.MoveResult{}
	g.settling = false
	return nil
}

// Move resolves one move. Moves that do not change the board are not
// counted and spawn nothing.
func (g *Game) Move(dir board.Direction) board.MoveResult {
	res := board.Resolve(g.grid, dir, g.rng)
	if res.Changed {
		g.moves++
		g.last = res
		g.settling = true
	}
	return res
}

// Resize records the screen size used for rendering.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Width returns the board width.
func (g *Game) Width() int { return g.width }

// Height returns the board height.
func (g *Game) Height() int { return g.height }

// Moves returns the number of accepted moves since the last reset.
func (g *Game) Moves() int { return g.moves }

// Cells returns the board contents in row-major order.
func (g *Game) Cells() []board.Tile { return g.grid.Cells() }

// MaxTile returns the largest tile on the board.
func (g *Game) MaxTile() board.Tile { return g.grid.MaxTile() }

// Stuck reports that no direction would change the board.
// It is informational only; the session keeps accepting input.
func (g *Game) Stuck() bool { return !board.CanMove(g.grid) }

