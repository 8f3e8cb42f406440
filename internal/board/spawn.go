package board

import "fmt"

// Rand is the randomness the engine needs. *math/rand.Rand satisfies it;
// tests can pass a scripted source.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// spawnTable holds ten equally likely outcomes: nine 2s and one 4.
var spawnTable = [10]Tile{2, 2, 2, 2, 2, 2, 2, 2, 2, 4}

// SpawnValue draws a new tile value: 2 with probability 0.9, 4 with 0.1.
func SpawnValue(rng Rand) Tile {
	return spawnTable[rng.Intn(len(spawnTable))]
}

// Spawn places one new tile in a uniformly chosen empty cell.
// Returns the chosen index and value, or ErrNoEmptyCell on a full grid.
func Spawn(g *Grid, rng Rand) (int, Tile, error) {
	empty := g.EmptyIndices()
	if len(empty) == 0 {
		return 0, Empty, ErrNoEmptyCell
	}

	id := empty[rng.Intn(len(empty))]
	value := SpawnValue(rng)
	g.cells[id] = value
	return id, value, nil
}

// New creates a height x width grid with two starting tiles placed in
// distinct, uniformly chosen cells.
func New(height, width int, rng Rand) (*Grid, error) {
	if height < 1 || width < 1 || height*width < 2 {
		return nil, fmt.Errorf("board: %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	g := newEmpty(height, width)

	ids := make([]int, len(g.cells))
	for i := range ids {
		ids[i] = i
	}
	rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	for _, id := range ids[:2] {
		g.cells[id] = SpawnValue(rng)
	}
	return g, nil
}
