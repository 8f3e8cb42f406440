package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/logging"
	"github.com/vovakirdan/tilemerge/internal/session"
	"github.com/vovakirdan/tilemerge/internal/transport/ws"
)

var flagWSAddr string

// sweepPeriod is how often idle remote sessions are evicted.
const sweepPeriod = time.Minute

var wsCmd = &cobra.Command{
	Use:   "ws",
	Short: "Start the WebSocket server",
	Long: `Start an HTTP server that plays one board per WebSocket connection.

Endpoints:
  GET /ws?width=4&height=4  - Upgrade and start a board
  GET /healthz              - Liveness probe

Client messages:
  {"type":"move","direction":"left"}
  {"type":"reset"}
  {"type":"new","width":5,"height":5}

Every message is answered with the full board state.

Examples:
  tilemerge ws
  tilemerge ws --addr :9000`,
	Args: cobra.NoArgs,
	Run:  runWS,
}

func init() {
	wsCmd.Flags().StringVar(&flagWSAddr, "addr", "", "Listen address (host:port), overrides config")
}

func runWS(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagWSAddr != "" {
		cfg.WS.Address = flagWSAddr
	}

	logger, err := logging.Stderr(cfg.Log, "tilemerge-ws")
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
	server := ws.NewServer(sessions, logger.Logger, ws.Options{
		DefaultWidth:  size.Width,
		DefaultHeight: size.Height,
	})

	fmt.Printf("Starting tilemerge WebSocket server on %s\n", cfg.WS.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx, cfg.WS.Address); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
