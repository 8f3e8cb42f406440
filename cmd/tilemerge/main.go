// tilemerge is a sliding tile merge puzzle for the terminal.
//
// Usage:
//
//	tilemerge play            - Play locally (setup screen, or --width/--height/--preset)
//	tilemerge presets         - List board size presets
//	tilemerge serve           - Start SSH server for remote play
//	tilemerge ws              - Start WebSocket server
//	tilemerge mcp             - Serve MCP tools over stdio
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--config <path>      - Config file (default search: ~/.tilemerge, ./configs)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a rotated file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/config"
)

var version = "dev"

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "tilemerge",
	Short:   "tilemerge - slide and merge tiles in your terminal",
	Version: version,
	Long: `tilemerge is a 2048-style sliding tile puzzle on a board of any size
from 1x2 up to 16x16.

Available commands:
  play     - Play in this terminal
  presets  - Show board size presets
  serve    - Start SSH server for remote play
  ws       - Start WebSocket server
  mcp      - Serve MCP tools over stdio

Examples:
  tilemerge play
  tilemerge play --preset large
  tilemerge play --width 6 --height 3 --seed 42
  tilemerge serve --ssh :2222
  tilemerge ws --addr :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log to this file with rotation")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wsCmd)
	rootCmd.AddCommand(mcpCmd)
}

// loadConfig loads the config and applies the global flag overrides.
// It exits on error like the other command helpers.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
