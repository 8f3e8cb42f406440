package board

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid cannot be built with the
	// requested width and height (either is below 1, or there is no room for
	// the two starting tiles).
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrInvalidTile is returned when a cell value is neither empty nor a
	// power of two >= 2.
	ErrInvalidTile = errors.New("invalid tile value")

	// ErrNoEmptyCell is returned when a spawn is requested on a full grid.
	// On the move path this is an invariant violation.
	ErrNoEmptyCell = errors.New("no empty cell for spawn")
)
