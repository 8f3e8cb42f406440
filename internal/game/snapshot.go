package game

// Snapshot captures the observable game state for transports and
// determinism tests. Cells are row-major; 0 marks an empty cell.
type Snapshot struct {
	Width    int   `json:"width"`
	Height   int   `json:"height"`
	Cells    []int `json:"cells"`
	Moves    int   `json:"moves"`
	MaxTile  int   `json:"max_tile"`
	Stuck    bool  `json:"stuck"`
	Settling bool  `json:"settling,omitempty"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	tiles := g.grid.Cells()
	cells := make([]int, len(tiles))
	for i, t := range tiles {
		cells[i] = int(t)
	}

	return Snapshot{
		Width:    g.width,
		Height:   g.height,
		Cells:    cells,
		Moves:    g.moves,
		MaxTile:  int(g.grid.MaxTile()),
		Stuck:    g.Stuck(),
		Settling: g.settling,
	}
}
