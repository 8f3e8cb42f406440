package board

// MoveResult describes the outcome of resolving one move.
type MoveResult struct {
	Direction Direction
	Changed   bool // the passes altered the grid; a tile was spawned
	Merges    int  // pairs combined during the merge pass
	Spawned   bool
	SpawnAt   int  // flattened index of the new tile, valid when Spawned
	SpawnTile Tile // value of the new tile, valid when Spawned
}

// Slide runs collapse, merge and collapse again over every line for dir,
// mutating g in place. It never spawns. Returns the merge count and whether
// the grid differs from its state before the call.
func Slide(g *Grid, dir Direction) (merges int, changed bool) {
	if !dir.Valid() {
		return 0, false
	}

	before := g.Clone()
	lines := Lines(dir, g.height, g.width)

	for _, line := range lines {
		collapse(g, line)
	}
	for _, line := range lines {
		merges += merge(g, line)
	}
	for _, line := range lines {
		collapse(g, line)
	}

	return merges, !g.Equal(before)
}

// Resolve applies a move to g. If the grid changed, exactly one tile is
// spawned in a cell left empty by the passes; otherwise nothing else happens.
// Directions other than the four moves are ignored.
func Resolve(g *Grid, dir Direction, rng Rand) MoveResult {
	res := MoveResult{Direction: dir}

	res.Merges, res.Changed = Slide(g, dir)
	if !res.Changed {
		return res
	}

	id, value, err := Spawn(g, rng)
	if err != nil {
		// A changed grid always has a free cell: either a merge cleared one
		// or a tile moved off one.
		panic("board: " + err.Error() + " after a changed move")
	}
	res.Spawned = true
	res.SpawnAt = id
	res.SpawnTile = value
	return res
}

// CanMove reports whether any direction would change the grid.
// It does not modify g.
func CanMove(g *Grid) bool {
	for _, dir := range Directions {
		if _, changed := Slide(g.Clone(), dir); changed {
			return true
		}
	}
	return false
}
