package main

import (
	"fmt"

	"github.com/spf13/cobra"

	// Import game to register the built-in presets
	_ "github.com/vovakirdan/tilemerge/internal/game"
	"github.com/vovakirdan/tilemerge/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board size presets",
	Long:  `Shows the board size presets accepted by 'tilemerge play --preset'.`,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Board presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "-----")

	for _, p := range presets {
		size := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, p.ID, size, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tilemerge play --preset <id>' to play one.")
}
