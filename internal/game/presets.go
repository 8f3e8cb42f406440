// Package game hosts a merge-puzzle session on top of the board engine:
// board lifecycle, move counting, settle pacing, rendering into a
// core.Screen and the built-in board size presets.
package game

import "github.com/vovakirdan/tilemerge/internal/registry"

// DefaultPreset is used when no size is configured.
const DefaultPreset = "classic"

// builtinPresets are the sizes offered on the setup screen.
var builtinPresets = []registry.Preset{
	{ID: "strip", Title: "Strip 4x1", Width: 4, Height: 1},
	{ID: "small", Title: "Small 3x3", Width: 3, Height: 3},
	{ID: "classic", Title: "Classic 4x4", Width: 4, Height: 4},
	{ID: "wide", Title: "Wide 6x4", Width: 6, Height: 4},
	{ID: "large", Title: "Large 5x5", Width: 5, Height: 5},
	{ID: "huge", Title: "Huge 6x6", Width: 6, Height: 6},
}

func init() {
	for _, p := range builtinPresets {
		registry.Register(p)
	}
}

// FromPreset creates a game sized by the named preset.
func FromPreset(id string, seed int64) (*Game, error) {
	p, err := registry.Lookup(id)
	if err != nil {
		return nil, err
	}
	return New(p.Width, p.Height, seed)
}
