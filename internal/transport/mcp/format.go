package mcp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tilemerge/internal/board"
	"github.com/vovakirdan/tilemerge/internal/session"
)

func formatState(st session.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Size: %dx%d  Moves: %d  Max: %d\n", st.Width, st.Height, st.Moves, st.MaxTile)
	b.WriteString(formatGrid(st.Width, st.Height, st.Cells))
	if st.Stuck {
		b.WriteString("No moves left. Use reset for a new board.\n")
	}
	return b.String()
}

func formatMove(res board.MoveResult) string {
	if !res.Changed {
		return fmt.Sprintf("Move %s: no change", res.Direction)
	}
	return fmt.Sprintf("Move %s: %d merge(s), new %d at cell %d",
		res.Direction, res.Merges, res.SpawnTile, res.SpawnAt)
}

// formatGrid draws row-major cells as an ASCII table.
func formatGrid(width, height int, cells []int) string {
	cw := 1
	for _, c := range cells {
		if n := len(strconv.Itoa(c)); n > cw {
			cw = n
		}
	}

	sep := "+" + strings.Repeat(strings.Repeat("-", cw+2)+"+", width) + "\n"

	var b strings.Builder
	b.WriteString(sep)
	for row := 0; row < height; row++ {
		b.WriteString("|")
		for col := 0; col < width; col++ {
			text := "."
			if v := cells[col+row*width]; v != 0 {
				text = strconv.Itoa(v)
			}
			fmt.Fprintf(&b, " %*s |", cw, text)
		}
		b.WriteString("\n")
		b.WriteString(sep)
	}
	return b.String()
}
