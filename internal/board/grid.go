// Package board implements the merge-puzzle engine: a fixed-size grid of
// power-of-two tiles, the directional collapse/merge passes that resolve a
// move, and the random spawn rule that follows every move that changed the
// board. It has no UI dependencies; hosts feed it validated dimensions and a
// decoded Direction and read back the cells.
package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Tile is a cell value. Zero means the cell is empty; otherwise the value is
// a power of two no smaller than 2.
type Tile int

// Empty is the value of an unoccupied cell.
const Empty Tile = 0

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// Valid reports whether t is empty or a power of two >= 2.
func (t Tile) Valid() bool {
	if t == Empty {
		return true
	}
	return t >= 2 && t&(t-1) == 0
}

// Grid is a rectangular board stored in row-major order.
// Width and height are fixed for the lifetime of the grid.
type Grid struct {
	width  int
	height int
	cells  []Tile
}

// newEmpty allocates a grid with every cell empty.
func newEmpty(height, width int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
	}
}

// FromCells builds a grid from explicit row-major values.
func FromCells(width, height int, cells []Tile) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board: %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("board: %d cells for %dx%d grid: %w", len(cells), width, height, ErrInvalidDimensions)
	}

	g := newEmpty(height, width)
	for i, t := range cells {
		if !t.Valid() {
			return nil, fmt.Errorf("board: cell %d has value %d: %w", i, t, ErrInvalidTile)
		}
		g.cells[i] = t
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index maps (row, col) to the flattened cell index.
func (g *Grid) Index(row, col int) int {
	return col + row*g.width
}

// At returns the tile at (row, col).
func (g *Grid) At(row, col int) Tile {
	return g.cells[g.Index(row, col)]
}

// Cells returns a row-major copy of all cell values.
func (g *Grid) Cells() []Tile {
	out := make([]Tile, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  g.Cells(),
	}
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyIndices returns the flattened indices of all empty cells in ascending order.
func (g *Grid) EmptyIndices() []int {
	var ids []int
	for i, t := range g.cells {
		if t.IsEmpty() {
			ids = append(ids, i)
		}
	}
	return ids
}

// MaxTile returns the largest tile on the board, or Empty for an empty board.
func (g *Grid) MaxTile() Tile {
	maxVal := Empty
	for _, t := range g.cells {
		if t > maxVal {
			maxVal = t
		}
	}
	return maxVal
}

// String renders the grid one row per line, with '.' for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := range g.height {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.width {
			if col > 0 {
				sb.WriteByte(' ')
			}
			t := g.At(row, col)
			if t.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.Itoa(int(t)))
		}
	}
	return sb.String()
}
