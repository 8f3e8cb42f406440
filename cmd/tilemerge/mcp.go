package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/logging"
	"github.com/vovakirdan/tilemerge/internal/session"
	"github.com/vovakirdan/tilemerge/internal/transport/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve MCP tools over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout.

Tools:
  new_game    - Start a board (width, height, seed)
  move        - Slide a board (session_id, direction)
  board       - Show a board (session_id)
  reset       - Fresh board of the same size (session_id)
  list_games  - List live boards

Logs go to stderr or --log-file, never stdout.`,
	Args: cobra.NoArgs,
	Run:  runMCP,
}

func runMCP(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, err := logging.Stderr(cfg.Log, "tilemerge-mcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	ctx, stop := signalContext()
	defer stop()

	sessions := session.NewManager()
	if idle := cfg.Sessions.Idle(); idle > 0 {
		go sessions.Run(ctx, sweepPeriod, idle)
	}

	size := configSize(cfg)
	server := mcp.NewServer(sessions, logger.Logger, mcp.Options{
		Version:       version,
		DefaultWidth:  size.Width,
		DefaultHeight: size.Height,
	})

	if err := server.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
