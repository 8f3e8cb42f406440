package board

// merge combines adjacent equal tiles of one line in a single pass from the
// anchor outward and writes the result back. Returns the number of merges.
func merge(g *Grid, line []int) int {
	if len(line) == 0 {
		return 0
	}

	values := make([]Tile, len(line))
	for i, id := range line {
		values[i] = g.cells[id]
	}

	merged, n := mergeValues(values)
	for i, t := range merged {
		g.cells[line[i]] = t
	}
	return n
}

// MergeLine applies a single merge pass to a copy of values, anchor first.
// It does not collapse; gaps left by merges stay in place.
func MergeLine(values []Tile) []Tile {
	out, _ := mergeValues(values)
	return out
}

// mergeValues keeps a cursor on the previous cell. When it matches the
// current cell the previous one doubles and the current one is cleared; the
// cursor then moves onto the cleared cell, so a merged tile is never merged
// again in the same pass.
func mergeValues(values []Tile) ([]Tile, int) {
	out := make([]Tile, len(values))
	copy(out, values)

	merges := 0
	for i := 1; i < len(out); i++ {
		if !out[i-1].IsEmpty() && out[i-1] == out[i] {
			out[i-1] *= 2
			out[i] = Empty
			merges++
		}
	}
	return out, merges
}
