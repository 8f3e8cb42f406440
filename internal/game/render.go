package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tilemerge/internal/board"
	"github.com/vovakirdan/tilemerge/internal/core"
)

const (
	minCellWidth = 6 // Width of each cell including its left border
	cellHeight   = 2 // Height of each cell including its top border
	hudHeight    = 3
)

// TileColor maps a tile value to its display color.
func TileColor(t board.Tile) core.Color {
	switch {
	case t.IsEmpty():
		return core.ColorDefault
	case t <= 4:
		return core.ColorBeige
	case t <= 16:
		return core.ColorOrange
	case t <= 64:
		return core.ColorRed
	case t <= 512:
		return core.ColorYellow
	case t <= 2048:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightMagenta
	}
}

// cellWidth grows with the widest tile so large values never overlap borders.
func (g *Game) cellWidth() int {
	digits := len(strconv.Itoa(int(g.grid.MaxTile())))
	return core.Max(minCellWidth, digits+2)
}

// layout returns the board's outer size on screen.
func (g *Game) layout() (boardW, boardH int) {
	return g.width*g.cellWidth() + 1, g.height*cellHeight + 1
}

// TooSmall reports whether the board does not fit on the current screen.
func (g *Game) TooSmall() bool {
	boardW, boardH := g.layout()
	return g.screenW < boardW || g.screenH < hudHeight+1+boardH+1
}

// Render draws the HUD and the board into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.TooSmall() {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.layout()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	if g.Stuck() {
		centerX := boardX + boardW/2
		centerY := boardY + boardH/2
		g.drawOverlay(dst, centerX, centerY, "NO MOVES LEFT", "Press R for a new board")
	}
}

// renderTooSmall shows a short resize hint that fits narrow terminals.
func (g *Game) renderTooSmall(dst *core.Screen) {
	boardW, boardH := g.layout()
	y := g.screenH / 2

	dst.DrawTextCentered(y, "Too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", boardW, hudHeight+boardH+2))
}

// renderHUD draws the title, board size and counters.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxStr := fmt.Sprintf("Max: %d", g.grid.MaxTile())
	dst.DrawText(core.Max(boardX, boardX+boardW-len(maxStr)), 1, maxStr)

	sizeStr := fmt.Sprintf("%dx%d", g.width, g.height)
	dst.DrawTextColor(boardX+(boardW-len(sizeStr))/2, 2, sizeStr, core.ColorGray)
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	cw := g.cellWidth()

	for y := range g.height + 1 {
		for x := range g.width + 1 {
			px := boardX + x*cw
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == g.width:
				corner = '┐'
			case y == g.height && x == 0:
				corner = '└'
			case y == g.height && x == g.width:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == g.height:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == g.width:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetWithColor(px, py, corner, core.ColorGray)

			if x < g.width {
				for i := 1; i < cw; i++ {
					dst.SetWithColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < g.height {
				for i := 1; i < cellHeight; i++ {
					dst.SetWithColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for row := range g.height {
		for col := range g.width {
			t := g.grid.At(row, col)
			if t.IsEmpty() {
				continue
			}

			valStr := strconv.Itoa(int(t))
			padLeft := core.Max(0, (cw-1-len(valStr))/2)
			cellX := boardX + col*cw + 1 + padLeft
			cellY := boardY + row*cellHeight + 1

			color := TileColor(t)
			if g.highlighted(g.grid.Index(row, col)) {
				color = core.ColorBrightWhite
			}
			dst.DrawTextColor(cellX, cellY, valStr, color)
		}
	}
}

// drawOverlay draws a centered boxed message over the board.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
