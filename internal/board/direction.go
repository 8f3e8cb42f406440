package board

import "strings"

// Direction is the edge a move pushes tiles toward.
// DirNone stands for any input that is not a move; resolving it is a no-op.
type Direction int

const (
	DirNone  Direction = iota
	DirLeft            // toward column 0
	DirRight           // toward the last column
	DirUp              // toward row 0
	DirDown            // toward the last row
)

// Directions lists the four move directions.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// Horizontal reports whether d moves tiles along rows.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// ParseDirection decodes a direction name. Arrow names, WASD and vim keys
// are accepted; anything else maps to DirNone.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "a", "h":
		return DirLeft
	case "right", "d", "l":
		return DirRight
	case "up", "w", "k":
		return DirUp
	case "down", "s", "j":
		return DirDown
	default:
		return DirNone
	}
}
