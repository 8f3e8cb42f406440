package board

// collapse slides the non-empty tiles of one line toward its anchor,
// keeping their relative order, and clears the remaining cells.
func collapse(g *Grid, line []int) {
	values := make([]Tile, len(line))
	for i, id := range line {
		values[i] = g.cells[id]
	}
	if isPacked(values) {
		return
	}

	for i, t := range CollapseLine(values) {
		g.cells[line[i]] = t
	}
}

// CollapseLine returns values with the gaps removed: non-empty tiles first,
// in their original order, followed by empty cells. The input is not modified.
func CollapseLine(values []Tile) []Tile {
	out := make([]Tile, len(values))
	n := 0
	for _, t := range values {
		if t.IsEmpty() {
			continue
		}
		out[n] = t
		n++
	}
	return out
}

// isPacked reports whether every non-empty value precedes every empty one.
func isPacked(values []Tile) bool {
	seenEmpty := false
	for _, t := range values {
		if t.IsEmpty() {
			seenEmpty = true
			continue
		}
		if seenEmpty {
			return false
		}
	}
	return true
}
