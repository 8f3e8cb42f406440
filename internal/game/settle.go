package game

// A move that changes the board starts a short settle phase. The board is
// already final; the phase only marks the spawned tile for highlighting and
// lets the host pace input. The host ends it with Settle once its delay
// fires, from its own event loop.

// Settling reports whether the last changed move has not settled yet.
func (g *Game) Settling() bool {
	return g.settling
}

// Settle ends the settle phase.
func (g *Game) Settle() {
	g.settling = false
}

// highlighted reports whether the cell at index should be drawn as freshly
// spawned.
func (g *Game) highlighted(index int) bool {
	return g.settling && g.last.Spawned && g.last.SpawnAt == index
}
